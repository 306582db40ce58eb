package mpesa

import (
	"context"
	"net/http"
)

// B2BRequest moves funds between two business accounts.
// RecieverIdentifierType keeps the misspelling Daraja expects.
type B2BRequest struct {
	Initiator              string         `json:"Initiator"`
	SecurityCredential     string         `json:"SecurityCredential"`
	CommandID              CommandID      `json:"CommandID"`
	Amount                 float64        `json:"Amount"`
	PartyA                 string         `json:"PartyA"`
	SenderIdentifierType   IdentifierType `json:"SenderIdentifierType"`
	PartyB                 string         `json:"PartyB"`
	RecieverIdentifierType IdentifierType `json:"RecieverIdentifierType"`
	Remarks                string         `json:"Remarks"`
	QueueTimeOutURL        string         `json:"QueueTimeOutURL"`
	ResultURL              string         `json:"ResultURL"`
	AccountReference       string         `json:"AccountReference,omitempty"`
}

type B2BResponse = B2CResponse

type B2BBuilder struct {
	builder
	initiatorName          string
	commandID              CommandID
	amount                 *float64
	partyA                 string
	senderIdentifierType   IdentifierType
	partyB                 string
	receiverIdentifierType IdentifierType
	remarks                string
	queueTimeoutURL        string
	resultURL              string
	accountReference       string
}

func (c *Client) B2B(initiatorName string) *B2BBuilder {
	return &B2BBuilder{
		builder:       builder{client: c},
		initiatorName: initiatorName,
	}
}

func (b *B2BBuilder) CommandID(commandID CommandID) *B2BBuilder {
	b.commandID = commandID
	return b
}

func (b *B2BBuilder) Amount(amount float64) *B2BBuilder {
	b.amount = &amount
	return b
}

func (b *B2BBuilder) PartyA(partyA string) *B2BBuilder {
	b.partyA = partyA
	return b
}

func (b *B2BBuilder) SenderIdentifierType(t IdentifierType) *B2BBuilder {
	b.senderIdentifierType = t
	return b
}

func (b *B2BBuilder) PartyB(partyB string) *B2BBuilder {
	b.partyB = partyB
	return b
}

func (b *B2BBuilder) ReceiverIdentifierType(t IdentifierType) *B2BBuilder {
	b.receiverIdentifierType = t
	return b
}

func (b *B2BBuilder) Remarks(remarks string) *B2BBuilder {
	b.remarks = remarks
	return b
}

func (b *B2BBuilder) TimeoutURL(timeoutURL string) *B2BBuilder {
	b.checkURL("timeout_url", timeoutURL)
	b.queueTimeoutURL = timeoutURL
	return b
}

func (b *B2BBuilder) ResultURL(resultURL string) *B2BBuilder {
	b.checkURL("result_url", resultURL)
	b.resultURL = resultURL
	return b
}

func (b *B2BBuilder) AccountReference(accountReference string) *B2BBuilder {
	b.accountReference = accountReference
	return b
}

func (b *B2BBuilder) Build() (*B2BRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &B2BRequest{
		Initiator:              f.required("initiator_name", b.initiatorName),
		CommandID:              orDefault(b.commandID, BusinessToBusinessTransfer),
		Amount:                 f.requiredAmount("amount", b.amount),
		PartyA:                 f.required("party_a", b.partyA),
		SenderIdentifierType:   orDefault(b.senderIdentifierType, ShortCode),
		PartyB:                 f.required("party_b", b.partyB),
		RecieverIdentifierType: orDefault(b.receiverIdentifierType, ShortCode),
		Remarks:                orDefault(b.remarks, defaultText),
		QueueTimeOutURL:        f.required("timeout_url", b.queueTimeoutURL),
		ResultURL:              f.required("result_url", b.resultURL),
		AccountReference:       b.accountReference,
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

func (b *B2BBuilder) Send(ctx context.Context) (*B2BResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[B2BRequest, B2BResponse](ctx, b.client, http.MethodPost, b2bPath, req)
}
