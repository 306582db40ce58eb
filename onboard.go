package mpesa

import (
	"context"
	"fmt"
	"net/http"
)

// OnboardRequest opts a shortcode in to Bill Manager.
type OnboardRequest struct {
	CallbackURL     string            `json:"callbackUrl"`
	Email           string            `json:"email"`
	Logo            string            `json:"logo"`
	OfficialContact string            `json:"officialContact"`
	SendReminders   SendRemindersType `json:"sendReminders"`
	ShortCode       string            `json:"shortcode"`
}

type OnboardResponse struct {
	AppKey          string `json:"app_key"`
	ResponseCode    string `json:"rescode"`
	ResponseMessage string `json:"resmsg"`
}

type OnboardBuilder struct {
	builder
	callbackURL     string
	email           string
	logo            string
	officialContact string
	sendReminders   SendRemindersType
	shortCode       string
}

func (c *Client) Onboard() *OnboardBuilder {
	return &OnboardBuilder{builder: builder{client: c}}
}

func (b *OnboardBuilder) CallbackURL(callbackURL string) *OnboardBuilder {
	b.checkURL("callback_url", callbackURL)
	b.callbackURL = callbackURL
	return b
}

func (b *OnboardBuilder) Email(email string) *OnboardBuilder {
	b.record(validateEmail(email))
	b.email = email
	return b
}

// Logo is an image, in JPEG or JPG, to be embedded in invoices and receipts.
func (b *OnboardBuilder) Logo(logo string) *OnboardBuilder {
	b.logo = logo
	return b
}

func (b *OnboardBuilder) OfficialContact(officialContact string) *OnboardBuilder {
	b.officialContact = officialContact
	return b
}

// SendReminders defaults to Disable.
func (b *OnboardBuilder) SendReminders(sendReminders SendRemindersType) *OnboardBuilder {
	b.sendReminders = sendReminders
	return b
}

func (b *OnboardBuilder) ShortCode(shortCode string) *OnboardBuilder {
	b.shortCode = shortCode
	return b
}

func (b *OnboardBuilder) Build() (*OnboardRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &OnboardRequest{
		CallbackURL:     f.required("callback_url", b.callbackURL),
		Email:           f.required("email", b.email),
		Logo:            f.required("logo", b.logo),
		OfficialContact: f.required("official_contact", b.officialContact),
		SendReminders:   orDefault(b.sendReminders, RemindersDisable),
		ShortCode:       f.required("short_code", b.shortCode),
	}
	if err := f.err(); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *OnboardBuilder) Send(ctx context.Context) (*OnboardResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[OnboardRequest, OnboardResponse](ctx, b.client, http.MethodPost, onboardPath, req)
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return newValidationError(fmt.Sprintf("invalid email %q", email))
	}
	return nil
}
