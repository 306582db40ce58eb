package mpesa

import (
	"context"
	"encoding/json"
	"net/http"
)

// ExpressQueryRequest polls the status of an earlier STK-Push.
type ExpressQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type ExpressQueryResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
}

// UnmarshalJSON accepts ResponseCode and ResultCode as JSON strings or bare numbers.
func (r *ExpressQueryResponse) UnmarshalJSON(data []byte) error {
	type plain ExpressQueryResponse
	var aux struct {
		plain
		ResponseCode json.RawMessage `json:"ResponseCode"`
		ResultCode   json.RawMessage `json:"ResultCode"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = ExpressQueryResponse(aux.plain)
	var err error
	if r.ResponseCode, err = decodeCode(aux.ResponseCode); err != nil {
		return err
	}
	r.ResultCode, err = decodeCode(aux.ResultCode)
	return err
}

func decodeCode(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

type ExpressQueryBuilder struct {
	builder
	businessShortCode string
	passKey           string
	checkoutRequestID string
}

func (c *Client) ExpressQuery(businessShortCode string) *ExpressQueryBuilder {
	return &ExpressQueryBuilder{
		builder:           builder{client: c},
		businessShortCode: businessShortCode,
	}
}

func (b *ExpressQueryBuilder) PassKey(passKey string) *ExpressQueryBuilder {
	b.passKey = passKey
	return b
}

func (b *ExpressQueryBuilder) CheckoutRequestID(checkoutRequestID string) *ExpressQueryBuilder {
	b.checkoutRequestID = checkoutRequestID
	return b
}

func (b *ExpressQueryBuilder) Build() (*ExpressQueryRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &ExpressQueryRequest{
		BusinessShortCode: f.required("business_short_code", b.businessShortCode),
		CheckoutRequestID: f.required("checkout_request_id", b.checkoutRequestID),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	req.Password, req.Timestamp = stkPassword(req.BusinessShortCode, orDefault(b.passKey, b.client.passKey), b.client.now())
	return req, nil
}

func (b *ExpressQueryBuilder) Send(ctx context.Context) (*ExpressQueryResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[ExpressQueryRequest, ExpressQueryResponse](ctx, b.client, http.MethodPost, expressQueryPath, req)
}
