package mpesa

import (
	"context"
	"net/http"
)

// ExpressPushRequest prompts a customer's handset to authorize a payment (STK-Push).
type ExpressPushRequest struct {
	BusinessShortCode string    `json:"BusinessShortCode"`
	Password          string    `json:"Password"`
	Timestamp         string    `json:"Timestamp"`
	TransactionType   CommandID `json:"TransactionType"`
	Amount            float64   `json:"Amount"`
	PartyA            string    `json:"PartyA"`
	PartyB            string    `json:"PartyB"`
	PhoneNumber       string    `json:"PhoneNumber"`
	CallBackURL       string    `json:"CallBackURL"`
	AccountReference  string    `json:"AccountReference"`
	TransactionDesc   string    `json:"TransactionDesc"`
}

type ExpressPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type ExpressRequestBuilder struct {
	builder
	businessShortCode string
	passKey           string
	transactionType   CommandID
	amount            *float64
	partyA            string
	partyB            string
	phoneNumber       string
	callbackURL       string
	accountReference  string
	transactionDesc   string
}

// ExpressRequest starts an STK-Push for the given paybill or till shortcode.
func (c *Client) ExpressRequest(businessShortCode string) *ExpressRequestBuilder {
	return &ExpressRequestBuilder{
		builder:           builder{client: c},
		businessShortCode: businessShortCode,
	}
}

// PassKey overrides the client pass key, which is the sandbox key unless WithPassKey was used.
func (b *ExpressRequestBuilder) PassKey(passKey string) *ExpressRequestBuilder {
	b.passKey = passKey
	return b
}

// TransactionType must be CustomerPayBillOnline (the default) or BusinessBuyGoods.
func (b *ExpressRequestBuilder) TransactionType(transactionType CommandID) *ExpressRequestBuilder {
	b.transactionType = transactionType
	return b
}

func (b *ExpressRequestBuilder) Amount(amount float64) *ExpressRequestBuilder {
	b.amount = &amount
	return b
}

// PartyA is the phone number sending the money.
func (b *ExpressRequestBuilder) PartyA(partyA string) *ExpressRequestBuilder {
	b.checkPhone(partyA)
	b.partyA = partyA
	return b
}

// PartyB is the organization receiving the funds.
func (b *ExpressRequestBuilder) PartyB(partyB string) *ExpressRequestBuilder {
	b.partyB = partyB
	return b
}

func (b *ExpressRequestBuilder) PhoneNumber(phoneNumber string) *ExpressRequestBuilder {
	b.checkPhone(phoneNumber)
	b.phoneNumber = phoneNumber
	return b
}

func (b *ExpressRequestBuilder) CallbackURL(callbackURL string) *ExpressRequestBuilder {
	b.checkURL("callback_url", callbackURL)
	b.callbackURL = callbackURL
	return b
}

func (b *ExpressRequestBuilder) AccountReference(accountReference string) *ExpressRequestBuilder {
	b.accountReference = accountReference
	return b
}

func (b *ExpressRequestBuilder) TransactionDesc(transactionDesc string) *ExpressRequestBuilder {
	b.transactionDesc = transactionDesc
	return b
}

func (b *ExpressRequestBuilder) Build() (*ExpressPushRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	transactionType := orDefault(b.transactionType, CustomerPayBillOnline)
	if transactionType != CustomerPayBillOnline && transactionType != BusinessBuyGoods {
		return nil, newValidationError("Invalid transaction type. Expected BusinessBuyGoods or CustomerPayBillOnline")
	}

	var f fields
	req := &ExpressPushRequest{
		BusinessShortCode: f.required("business_short_code", b.businessShortCode),
		TransactionType:   transactionType,
		Amount:            f.requiredAmount("amount", b.amount),
		PartyA:            f.required("party_a", b.partyA),
		PartyB:            f.required("party_b", b.partyB),
		PhoneNumber:       f.required("phone_number", b.phoneNumber),
		CallBackURL:       f.required("callback_url", b.callbackURL),
		AccountReference:  f.required("account_ref", b.accountReference),
		TransactionDesc:   orDefault(b.transactionDesc, defaultText),
	}
	if err := f.err(); err != nil {
		return nil, err
	}

	req.Password, req.Timestamp = stkPassword(req.BusinessShortCode, orDefault(b.passKey, b.client.passKey), b.client.now())
	return req, nil
}

func (b *ExpressRequestBuilder) Send(ctx context.Context) (*ExpressPushResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[ExpressPushRequest, ExpressPushResponse](ctx, b.client, http.MethodPost, expressRequestPath, req)
}
