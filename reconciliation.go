package mpesa

import (
	"context"
	"net/http"
	"time"
)

// ReconciliationRequest records a payment made outside Bill Manager against an invoice.
type ReconciliationRequest struct {
	AccountReference string    `json:"accountReference"`
	DateCreated      time.Time `json:"dateCreated"`
	Msisdn           string    `json:"msisdn"`
	PaidAmount       float64   `json:"paidAmount"`
	ShortCode        string    `json:"shortCode"`
	TransactionID    string    `json:"transactionId"`
}

type ReconciliationResponse struct {
	ResponseCode    string `json:"rescode"`
	ResponseMessage string `json:"resmsg"`
}

type ReconciliationBuilder struct {
	builder
	accountReference string
	dateCreated      time.Time
	msisdn           string
	paidAmount       *float64
	shortCode        string
	transactionID    string
}

func (c *Client) Reconciliation() *ReconciliationBuilder {
	return &ReconciliationBuilder{builder: builder{client: c}}
}

func (b *ReconciliationBuilder) AccountReference(accountReference string) *ReconciliationBuilder {
	b.accountReference = accountReference
	return b
}

func (b *ReconciliationBuilder) DateCreated(dateCreated time.Time) *ReconciliationBuilder {
	b.dateCreated = dateCreated
	return b
}

func (b *ReconciliationBuilder) Msisdn(msisdn string) *ReconciliationBuilder {
	b.msisdn = msisdn
	return b
}

func (b *ReconciliationBuilder) PaidAmount(paidAmount float64) *ReconciliationBuilder {
	b.paidAmount = &paidAmount
	return b
}

func (b *ReconciliationBuilder) ShortCode(shortCode string) *ReconciliationBuilder {
	b.shortCode = shortCode
	return b
}

// TransactionID is the M-Pesa generated receipt number.
func (b *ReconciliationBuilder) TransactionID(transactionID string) *ReconciliationBuilder {
	b.transactionID = transactionID
	return b
}

func (b *ReconciliationBuilder) Build() (*ReconciliationRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &ReconciliationRequest{
		AccountReference: f.required("account_reference", b.accountReference),
		DateCreated:      f.requiredTime("date_created", b.dateCreated),
		Msisdn:           f.required("msisdn", b.msisdn),
		PaidAmount:       f.requiredAmount("paid_amount", b.paidAmount),
		ShortCode:        f.required("short_code", b.shortCode),
		TransactionID:    f.required("transaction_id", b.transactionID),
	}
	if err := f.err(); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *ReconciliationBuilder) Send(ctx context.Context) (*ReconciliationResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[ReconciliationRequest, ReconciliationResponse](ctx, b.client, http.MethodPost, reconciliationPath, req)
}
