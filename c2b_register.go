package mpesa

import (
	"context"
	"encoding/json"
	"net/http"
)

type C2BRegisterRequest struct {
	ValidationURL   string       `json:"ValidationURL"`
	ConfirmationURL string       `json:"ConfirmationURL"`
	ResponseType    ResponseType `json:"ResponseType"`
	ShortCode       string       `json:"ShortCode"`
}

// C2BResponse acknowledges C2B register and simulate requests.
type C2BResponse struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ConversationID           string `json:"ConversationID,omitempty"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

// UnmarshalJSON also accepts the misspelled originator conversation id keys
// that Daraja sends for C2B endpoints.
func (r *C2BResponse) UnmarshalJSON(data []byte) error {
	type plain C2BResponse
	var aux struct {
		plain
		Coversation string `json:"OriginatorCoversationID"`
		Converstion string `json:"OriginatorConverstionID"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = C2BResponse(aux.plain)
	if r.OriginatorConversationID == "" {
		r.OriginatorConversationID = orDefault(aux.Coversation, aux.Converstion)
	}
	return nil
}

type C2BRegisterResponse = C2BResponse

type C2BRegisterBuilder struct {
	builder
	shortCode       string
	responseType    ResponseType
	confirmationURL string
	validationURL   string
}

func (c *Client) C2BRegister() *C2BRegisterBuilder {
	return &C2BRegisterBuilder{builder: builder{client: c}}
}

func (b *C2BRegisterBuilder) ShortCode(shortCode string) *C2BRegisterBuilder {
	b.shortCode = shortCode
	return b
}

// ResponseType is what M-Pesa does when the validation URL is unreachable. Defaults to Completed.
func (b *C2BRegisterBuilder) ResponseType(responseType ResponseType) *C2BRegisterBuilder {
	b.responseType = responseType
	return b
}

func (b *C2BRegisterBuilder) ConfirmationURL(confirmationURL string) *C2BRegisterBuilder {
	b.checkURL("confirmation_url", confirmationURL)
	b.confirmationURL = confirmationURL
	return b
}

func (b *C2BRegisterBuilder) ValidationURL(validationURL string) *C2BRegisterBuilder {
	b.checkURL("validation_url", validationURL)
	b.validationURL = validationURL
	return b
}

func (b *C2BRegisterBuilder) Build() (*C2BRegisterRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &C2BRegisterRequest{
		ShortCode:       f.required("short_code", b.shortCode),
		ResponseType:    orDefault(b.responseType, Completed),
		ConfirmationURL: f.required("confirmation_url", b.confirmationURL),
		ValidationURL:   f.required("validation_url", b.validationURL),
	}
	if err := f.err(); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *C2BRegisterBuilder) Send(ctx context.Context) (*C2BRegisterResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[C2BRegisterRequest, C2BRegisterResponse](ctx, b.client, http.MethodPost, c2bRegisterPath, req)
}
