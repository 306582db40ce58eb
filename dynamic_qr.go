package mpesa

import (
	"context"
	"net/http"
)

type DynamicQRRequest struct {
	MerchantName string          `json:"MerchantName"`
	RefNo        string          `json:"RefNo"`
	Amount       float64         `json:"Amount"`
	TrxCode      TransactionType `json:"TrxCode"`
	CPI          string          `json:"CPI"`
	Size         string          `json:"Size"`
}

type DynamicQRResponse struct {
	QRCode              string `json:"QRCode"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
}

type DynamicQRBuilder struct {
	builder
	merchantName          string
	refNo                 string
	amount                *float64
	transactionType       TransactionType
	creditPartyIdentifier string
	size                  string
}

func (c *Client) DynamicQR() *DynamicQRBuilder {
	return &DynamicQRBuilder{builder: builder{client: c}}
}

func (b *DynamicQRBuilder) MerchantName(merchantName string) *DynamicQRBuilder {
	b.merchantName = merchantName
	return b
}

func (b *DynamicQRBuilder) RefNo(refNo string) *DynamicQRBuilder {
	b.refNo = refNo
	return b
}

func (b *DynamicQRBuilder) Amount(amount float64) *DynamicQRBuilder {
	b.amount = &amount
	return b
}

func (b *DynamicQRBuilder) TransactionType(t TransactionType) *DynamicQRBuilder {
	b.transactionType = t
	return b
}

// CreditPartyIdentifier is the phone number, till, paybill or business number being paid.
func (b *DynamicQRBuilder) CreditPartyIdentifier(cpi string) *DynamicQRBuilder {
	b.creditPartyIdentifier = cpi
	return b
}

// Size is the edge length of the square QR image in pixels.
func (b *DynamicQRBuilder) Size(size string) *DynamicQRBuilder {
	b.size = size
	return b
}

func (b *DynamicQRBuilder) Build() (*DynamicQRRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &DynamicQRRequest{
		MerchantName: f.required("merchant_name", b.merchantName),
		RefNo:        f.required("ref_no", b.refNo),
		Amount:       f.requiredAmount("amount", b.amount),
		TrxCode:      TransactionType(f.required("transaction_type", string(b.transactionType))),
		CPI:          f.required("credit_party_identifier", b.creditPartyIdentifier),
		Size:         f.required("size", b.size),
	}
	if err := f.err(); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *DynamicQRBuilder) Send(ctx context.Context) (*DynamicQRResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[DynamicQRRequest, DynamicQRResponse](ctx, b.client, http.MethodPost, dynamicQRPath, req)
}
