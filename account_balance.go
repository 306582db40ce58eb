package mpesa

import (
	"context"
	"net/http"
)

type AccountBalanceRequest struct {
	Initiator          string         `json:"Initiator"`
	SecurityCredential string         `json:"SecurityCredential"`
	CommandID          CommandID      `json:"CommandID"`
	PartyA             string         `json:"PartyA"`
	IdentifierType     IdentifierType `json:"IdentifierType"`
	Remarks            string         `json:"Remarks"`
	QueueTimeOutURL    string         `json:"QueueTimeOutURL"`
	ResultURL          string         `json:"ResultURL"`
}

type AccountBalanceResponse = B2CResponse

type AccountBalanceBuilder struct {
	builder
	initiatorName   string
	partyA          string
	identifierType  IdentifierType
	remarks         string
	queueTimeoutURL string
	resultURL       string
}

func (c *Client) AccountBalance(initiatorName string) *AccountBalanceBuilder {
	return &AccountBalanceBuilder{
		builder:       builder{client: c},
		initiatorName: initiatorName,
	}
}

func (b *AccountBalanceBuilder) PartyA(partyA string) *AccountBalanceBuilder {
	b.partyA = partyA
	return b
}

func (b *AccountBalanceBuilder) IdentifierType(t IdentifierType) *AccountBalanceBuilder {
	b.identifierType = t
	return b
}

func (b *AccountBalanceBuilder) Remarks(remarks string) *AccountBalanceBuilder {
	b.remarks = remarks
	return b
}

func (b *AccountBalanceBuilder) TimeoutURL(timeoutURL string) *AccountBalanceBuilder {
	b.checkURL("timeout_url", timeoutURL)
	b.queueTimeoutURL = timeoutURL
	return b
}

func (b *AccountBalanceBuilder) ResultURL(resultURL string) *AccountBalanceBuilder {
	b.checkURL("result_url", resultURL)
	b.resultURL = resultURL
	return b
}

func (b *AccountBalanceBuilder) Build() (*AccountBalanceRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &AccountBalanceRequest{
		Initiator:       f.required("initiator_name", b.initiatorName),
		CommandID:       AccountBalanceCommand,
		PartyA:          f.required("party_a", b.partyA),
		IdentifierType:  orDefault(b.identifierType, ShortCode),
		Remarks:         orDefault(b.remarks, defaultText),
		QueueTimeOutURL: f.required("timeout_url", b.queueTimeoutURL),
		ResultURL:       f.required("result_url", b.resultURL),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	credential, err := b.client.securityCredential()
	if err != nil {
		return nil, err
	}
	req.SecurityCredential = credential

	return req, nil
}

func (b *AccountBalanceBuilder) Send(ctx context.Context) (*AccountBalanceResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[AccountBalanceRequest, AccountBalanceResponse](ctx, b.client, http.MethodPost, accountBalancePath, req)
}
