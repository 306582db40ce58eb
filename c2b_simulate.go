package mpesa

import (
	"context"
	"net/http"
)

// C2BSimulateRequest imitates a customer payment. Only available in the sandbox.
type C2BSimulateRequest struct {
	CommandID     CommandID `json:"CommandID"`
	Amount        float64   `json:"Amount"`
	Msisdn        string    `json:"Msisdn"`
	BillRefNumber string    `json:"BillRefNumber"`
	ShortCode     string    `json:"ShortCode"`
}

type C2BSimulateResponse = C2BResponse

type C2BSimulateBuilder struct {
	builder
	commandID     CommandID
	amount        *float64
	msisdn        string
	billRefNumber string
	shortCode     string
}

func (c *Client) C2BSimulate() *C2BSimulateBuilder {
	return &C2BSimulateBuilder{builder: builder{client: c}}
}

// CommandID defaults to CustomerPayBillOnline.
func (b *C2BSimulateBuilder) CommandID(commandID CommandID) *C2BSimulateBuilder {
	b.commandID = commandID
	return b
}

func (b *C2BSimulateBuilder) Amount(amount float64) *C2BSimulateBuilder {
	b.amount = &amount
	return b
}

func (b *C2BSimulateBuilder) Msisdn(msisdn string) *C2BSimulateBuilder {
	b.checkPhone(msisdn)
	b.msisdn = msisdn
	return b
}

func (b *C2BSimulateBuilder) BillRefNumber(billRefNumber string) *C2BSimulateBuilder {
	b.billRefNumber = billRefNumber
	return b
}

func (b *C2BSimulateBuilder) ShortCode(shortCode string) *C2BSimulateBuilder {
	b.shortCode = shortCode
	return b
}

func (b *C2BSimulateBuilder) Build() (*C2BSimulateRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &C2BSimulateRequest{
		CommandID:     orDefault(b.commandID, CustomerPayBillOnline),
		Amount:        f.requiredAmount("amount", b.amount),
		Msisdn:        f.required("msisdn", b.msisdn),
		BillRefNumber: orDefault(b.billRefNumber, defaultText),
		ShortCode:     f.required("short_code", b.shortCode),
	}
	if err := f.err(); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *C2BSimulateBuilder) Send(ctx context.Context) (*C2BSimulateResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[C2BSimulateRequest, C2BSimulateResponse](ctx, b.client, http.MethodPost, c2bSimulatePath, req)
}
