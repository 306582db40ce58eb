package mpesa

import (
	"context"
	"net/http"
)

type TransactionStatusRequest struct {
	Initiator          string         `json:"Initiator"`
	SecurityCredential string         `json:"SecurityCredential"`
	CommandID          CommandID      `json:"CommandID"`
	TransactionID      string         `json:"TransactionID"`
	PartyA             string         `json:"PartyA"`
	IdentifierType     IdentifierType `json:"IdentifierType"`
	ResultURL          string         `json:"ResultURL"`
	QueueTimeOutURL    string         `json:"QueueTimeOutURL"`
	Remarks            string         `json:"Remarks"`
	Occasion           string         `json:"Occasion"`
}

type TransactionStatusResponse = TransactionReversalResponse

type TransactionStatusBuilder struct {
	builder
	initiator       string
	commandID       CommandID
	transactionID   string
	partyA          string
	identifierType  IdentifierType
	resultURL       string
	queueTimeoutURL string
	remarks         string
	occasion        string
}

func (c *Client) TransactionStatus(initiator string) *TransactionStatusBuilder {
	return &TransactionStatusBuilder{
		builder:   builder{client: c},
		initiator: initiator,
	}
}

func (b *TransactionStatusBuilder) CommandID(commandID CommandID) *TransactionStatusBuilder {
	b.commandID = commandID
	return b
}

func (b *TransactionStatusBuilder) TransactionID(transactionID string) *TransactionStatusBuilder {
	b.transactionID = transactionID
	return b
}

func (b *TransactionStatusBuilder) PartyA(partyA string) *TransactionStatusBuilder {
	b.partyA = partyA
	return b
}

func (b *TransactionStatusBuilder) IdentifierType(t IdentifierType) *TransactionStatusBuilder {
	b.identifierType = t
	return b
}

func (b *TransactionStatusBuilder) ResultURL(resultURL string) *TransactionStatusBuilder {
	b.checkURL("result_url", resultURL)
	b.resultURL = resultURL
	return b
}

func (b *TransactionStatusBuilder) TimeoutURL(timeoutURL string) *TransactionStatusBuilder {
	b.checkURL("timeout_url", timeoutURL)
	b.queueTimeoutURL = timeoutURL
	return b
}

func (b *TransactionStatusBuilder) Remarks(remarks string) *TransactionStatusBuilder {
	b.remarks = remarks
	return b
}

func (b *TransactionStatusBuilder) Occasion(occasion string) *TransactionStatusBuilder {
	b.occasion = occasion
	return b
}

func (b *TransactionStatusBuilder) Build() (*TransactionStatusRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &TransactionStatusRequest{
		Initiator:       f.required("initiator", b.initiator),
		CommandID:       orDefault(b.commandID, TransactionStatusQuery),
		TransactionID:   f.required("transaction_id", b.transactionID),
		PartyA:          f.required("party_a", b.partyA),
		IdentifierType:  orDefault(b.identifierType, ShortCode),
		ResultURL:       f.required("result_url", b.resultURL),
		QueueTimeOutURL: f.required("timeout_url", b.queueTimeoutURL),
		Remarks:         orDefault(b.remarks, defaultText),
		Occasion:        orDefault(b.occasion, defaultText),
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

func (b *TransactionStatusBuilder) Send(ctx context.Context) (*TransactionStatusResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[TransactionStatusRequest, TransactionStatusResponse](ctx, b.client, http.MethodPost, transactionStatusPath, req)
}
