package mpesa

import "time"

const defaultText = "None"

// builder carries the client and the first setter failure of an operation builder.
type builder struct {
	client *Client
	err    error
}

func (b *builder) record(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

func (b *builder) checkURL(field, raw string) {
	b.record(validateURL(field, raw))
}

func (b *builder) checkPhone(phone string) {
	b.record(ValidatePhoneNumber(phone))
}

// fields collects the first missing required field while a request is materialized.
type fields struct {
	missing string
}

func (f *fields) required(name, value string) string {
	if value == "" {
		f.miss(name)
	}
	return value
}

func (f *fields) requiredAmount(name string, value *float64) float64 {
	if value == nil {
		f.miss(name)
		return 0
	}
	return *value
}

func (f *fields) requiredTime(name string, value time.Time) time.Time {
	if value.IsZero() {
		f.miss(name)
	}
	return value
}

func (f *fields) miss(name string) {
	if f.missing == "" {
		f.missing = name
	}
}

func (f *fields) err() error {
	if f.missing != "" {
		return newBuilderError(f.missing)
	}
	return nil
}

func orDefault[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}
	return value
}
