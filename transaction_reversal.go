package mpesa

import (
	"context"
	"net/http"
)

type TransactionReversalRequest struct {
	Initiator              string         `json:"Initiator"`
	SecurityCredential     string         `json:"SecurityCredential"`
	CommandID              CommandID      `json:"CommandID"`
	TransactionID          string         `json:"TransactionID"`
	ReceiverParty          string         `json:"ReceiverParty"`
	RecieverIdentifierType IdentifierType `json:"RecieverIdentifierType"`
	ResultURL              string         `json:"ResultURL"`
	QueueTimeOutURL        string         `json:"QueueTimeOutURL"`
	Remarks                string         `json:"Remarks"`
	Occasion               string         `json:"Occasion"`
	Amount                 float64        `json:"Amount"`
}

// TransactionReversalResponse is also returned by transaction status queries.
type TransactionReversalResponse struct {
	ConversationID           string `json:"ConversationID"`
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

type TransactionReversalBuilder struct {
	builder
	initiator              string
	commandID              CommandID
	transactionID          string
	receiverParty          string
	receiverIdentifierType IdentifierType
	resultURL              string
	queueTimeoutURL        string
	remarks                string
	occasion               string
	amount                 *float64
}

func (c *Client) TransactionReversal(initiator string) *TransactionReversalBuilder {
	return &TransactionReversalBuilder{
		builder:   builder{client: c},
		initiator: initiator,
	}
}

func (b *TransactionReversalBuilder) CommandID(commandID CommandID) *TransactionReversalBuilder {
	b.commandID = commandID
	return b
}

func (b *TransactionReversalBuilder) TransactionID(transactionID string) *TransactionReversalBuilder {
	b.transactionID = transactionID
	return b
}

func (b *TransactionReversalBuilder) ReceiverParty(receiverParty string) *TransactionReversalBuilder {
	b.receiverParty = receiverParty
	return b
}

// ReceiverIdentifierType defaults to ShortCode.
func (b *TransactionReversalBuilder) ReceiverIdentifierType(t IdentifierType) *TransactionReversalBuilder {
	b.receiverIdentifierType = t
	return b
}

func (b *TransactionReversalBuilder) ResultURL(resultURL string) *TransactionReversalBuilder {
	b.checkURL("result_url", resultURL)
	b.resultURL = resultURL
	return b
}

func (b *TransactionReversalBuilder) TimeoutURL(timeoutURL string) *TransactionReversalBuilder {
	b.checkURL("timeout_url", timeoutURL)
	b.queueTimeoutURL = timeoutURL
	return b
}

func (b *TransactionReversalBuilder) Remarks(remarks string) *TransactionReversalBuilder {
	b.remarks = remarks
	return b
}

func (b *TransactionReversalBuilder) Occasion(occasion string) *TransactionReversalBuilder {
	b.occasion = occasion
	return b
}

func (b *TransactionReversalBuilder) Amount(amount float64) *TransactionReversalBuilder {
	b.amount = &amount
	return b
}

func (b *TransactionReversalBuilder) Build() (*TransactionReversalRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &TransactionReversalRequest{
		Initiator:              f.required("initiator", b.initiator),
		CommandID:              orDefault(b.commandID, TransactionReversal),
		TransactionID:          f.required("transaction_id", b.transactionID),
		ReceiverParty:          f.required("receiver_party", b.receiverParty),
		RecieverIdentifierType: orDefault(b.receiverIdentifierType, ShortCode),
		ResultURL:              f.required("result_url", b.resultURL),
		QueueTimeOutURL:        f.required("timeout_url", b.queueTimeoutURL),
		Remarks:                orDefault(b.remarks, defaultText),
		Occasion:               orDefault(b.occasion, defaultText),
		Amount:                 f.requiredAmount("amount", b.amount),
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

func (b *TransactionReversalBuilder) Send(ctx context.Context) (*TransactionReversalResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[TransactionReversalRequest, TransactionReversalResponse](ctx, b.client, http.MethodPost, transactionReversalPath, req)
}
