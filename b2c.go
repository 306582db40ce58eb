package mpesa

import (
	"context"
	"net/http"
)

// B2CRequest pays out from a business shortcode to a customer.
type B2CRequest struct {
	InitiatorName      string    `json:"InitiatorName"`
	SecurityCredential string    `json:"SecurityCredential"`
	CommandID          CommandID `json:"CommandID"`
	Amount             float64   `json:"Amount"`
	PartyA             string    `json:"PartyA"`
	PartyB             string    `json:"PartyB"`
	Remarks            string    `json:"Remarks"`
	QueueTimeOutURL    string    `json:"QueueTimeOutURL"`
	ResultURL          string    `json:"ResultURL"`
	Occasion           string    `json:"Occasion"`
}

// B2CResponse is also returned by B2B and account balance requests.
type B2CResponse struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ConversationID           string `json:"ConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

type B2CBuilder struct {
	builder
	initiatorName   string
	commandID       CommandID
	amount          *float64
	partyA          string
	partyB          string
	remarks         string
	queueTimeoutURL string
	resultURL       string
	occasion        string
}

func (c *Client) B2C(initiatorName string) *B2CBuilder {
	return &B2CBuilder{
		builder:       builder{client: c},
		initiatorName: initiatorName,
	}
}

// CommandID defaults to BusinessPayment.
func (b *B2CBuilder) CommandID(commandID CommandID) *B2CBuilder {
	b.commandID = commandID
	return b
}

func (b *B2CBuilder) Amount(amount float64) *B2CBuilder {
	b.amount = &amount
	return b
}

// PartyA is the shortcode the funds are sent from.
func (b *B2CBuilder) PartyA(partyA string) *B2CBuilder {
	b.partyA = partyA
	return b
}

// PartyB is the receiving phone number.
func (b *B2CBuilder) PartyB(partyB string) *B2CBuilder {
	b.partyB = partyB
	return b
}

func (b *B2CBuilder) Remarks(remarks string) *B2CBuilder {
	b.remarks = remarks
	return b
}

func (b *B2CBuilder) TimeoutURL(timeoutURL string) *B2CBuilder {
	b.checkURL("timeout_url", timeoutURL)
	b.queueTimeoutURL = timeoutURL
	return b
}

func (b *B2CBuilder) ResultURL(resultURL string) *B2CBuilder {
	b.checkURL("result_url", resultURL)
	b.resultURL = resultURL
	return b
}

func (b *B2CBuilder) Occasion(occasion string) *B2CBuilder {
	b.occasion = occasion
	return b
}

func (b *B2CBuilder) Build() (*B2CRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &B2CRequest{
		InitiatorName:   f.required("initiator_name", b.initiatorName),
		CommandID:       orDefault(b.commandID, BusinessPayment),
		Amount:          f.requiredAmount("amount", b.amount),
		PartyA:          f.required("party_a", b.partyA),
		PartyB:          f.required("party_b", b.partyB),
		Remarks:         orDefault(b.remarks, defaultText),
		QueueTimeOutURL: f.required("timeout_url", b.queueTimeoutURL),
		ResultURL:       f.required("result_url", b.resultURL),
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

func (b *B2CBuilder) Send(ctx context.Context) (*B2CResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[B2CRequest, B2CResponse](ctx, b.client, http.MethodPost, b2cPath, req)
}
