package mpesa_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"254708374149", true},
		{"0708374149", true},
		{"0110123456", true},
		{"708374149", true},
		{"110123456", true},
		{"25470837414", false},
		{"2547083741490", false},
		{"0808374149", false},
		{"+254708374149", false},
		{"07083741a9", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := mpesa.ValidatePhoneNumber(tt.phone)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, mpesa.ErrValidation))
		})
	}
}

func TestValidatePhoneNumberUint(t *testing.T) {
	assert.NoError(t, mpesa.ValidatePhoneNumberUint(254708374149))
	assert.NoError(t, mpesa.ValidatePhoneNumberUint(708374149))
	assert.Error(t, mpesa.ValidatePhoneNumberUint(12345))
}

func TestSetterURLValidation(t *testing.T) {
	client := mpesa.New(testClientKey, testClientSecret, mpesa.Sandbox)

	tests := []struct {
		name string
		url  string
	}{
		{"relative", "/callback"},
		{"no scheme", "testdomain.com/ok"},
		{"empty", ""},
		{"garbage", "::not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.C2BRegister().
				ShortCode("600496").
				ConfirmationURL(tt.url).
				ValidationURL("https://testdomain.com/validate").
				Build()
			assert.True(t, errors.Is(err, mpesa.ErrValidation))
		})
	}
}

func TestSetterErrorWinsOverMissingFields(t *testing.T) {
	_, err := mpesa.New(testClientKey, testClientSecret, mpesa.Sandbox).
		ExpressRequest("174379").
		PhoneNumber("12").
		Build()

	assert.True(t, errors.Is(err, mpesa.ErrValidation))
	assert.False(t, errors.Is(err, mpesa.ErrBuilder))
}
