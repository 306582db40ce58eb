package mpesa

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/go-playground/validator"
)

var phoneNumberPattern = regexp.MustCompile(`^(?:254\d{9}|07\d{8}|011\d{7}|7\d{8}|1\d{8})$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("msisdn", func(fl validator.FieldLevel) bool {
		return phoneNumberPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidatePhoneNumber accepts Kenyan numbers in the 2547XXXXXXXX, 07XXXXXXXX,
// 011XXXXXXX, 7XXXXXXXX and 1XXXXXXXX forms.
func ValidatePhoneNumber(phone string) error {
	if err := validate.Var(phone, "required,msisdn"); err != nil {
		return newValidationError(fmt.Sprintf("invalid phone number %q", phone))
	}
	return nil
}

func ValidatePhoneNumberUint(phone uint64) error {
	return ValidatePhoneNumber(strconv.FormatUint(phone, 10))
}

func validateURL(field, raw string) error {
	if err := validate.Var(raw, "required,url"); err != nil {
		return newValidationError(fmt.Sprintf("invalid %s %q: must be an absolute URL", field, raw))
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return newValidationError(fmt.Sprintf("invalid %s %q: must be an absolute URL", field, raw))
	}
	return nil
}
