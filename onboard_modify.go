package mpesa

import (
	"context"
	"net/http"
)

// OnboardModifyRequest changes Bill Manager opt-in details. Unset fields are left untouched.
type OnboardModifyRequest struct {
	CallbackURL     string            `json:"callbackUrl,omitempty"`
	Email           string            `json:"email,omitempty"`
	Logo            string            `json:"logo,omitempty"`
	OfficialContact string            `json:"officialContact,omitempty"`
	SendReminders   SendRemindersType `json:"sendReminders,omitempty"`
	ShortCode       string            `json:"shortcode,omitempty"`
}

type OnboardModifyResponse struct {
	ResponseCode    string `json:"rescode"`
	ResponseMessage string `json:"resmsg"`
}

type OnboardModifyBuilder struct {
	builder
	req OnboardModifyRequest
}

func (c *Client) OnboardModify() *OnboardModifyBuilder {
	return &OnboardModifyBuilder{builder: builder{client: c}}
}

func (b *OnboardModifyBuilder) CallbackURL(callbackURL string) *OnboardModifyBuilder {
	b.checkURL("callback_url", callbackURL)
	b.req.CallbackURL = callbackURL
	return b
}

func (b *OnboardModifyBuilder) Email(email string) *OnboardModifyBuilder {
	b.record(validateEmail(email))
	b.req.Email = email
	return b
}

func (b *OnboardModifyBuilder) Logo(logo string) *OnboardModifyBuilder {
	b.req.Logo = logo
	return b
}

func (b *OnboardModifyBuilder) OfficialContact(officialContact string) *OnboardModifyBuilder {
	b.req.OfficialContact = officialContact
	return b
}

func (b *OnboardModifyBuilder) SendReminders(sendReminders SendRemindersType) *OnboardModifyBuilder {
	b.req.SendReminders = sendReminders
	return b
}

func (b *OnboardModifyBuilder) ShortCode(shortCode string) *OnboardModifyBuilder {
	b.req.ShortCode = shortCode
	return b
}

func (b *OnboardModifyBuilder) Build() (*OnboardModifyRequest, error) {
	if b.err != nil {
		return nil, b.err
	}
	req := b.req
	return &req, nil
}

func (b *OnboardModifyBuilder) Send(ctx context.Context) (*OnboardModifyResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[OnboardModifyRequest, OnboardModifyResponse](ctx, b.client, http.MethodPost, onboardModifyPath, req)
}
