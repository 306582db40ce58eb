package mpesa_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("sending invoice: %w", &mpesa.Error{Kind: mpesa.KindBuilder, Field: "due_date"})

	assert.True(t, errors.Is(err, mpesa.ErrBuilder))
	assert.True(t, errors.Is(err, &mpesa.Error{Kind: mpesa.KindBuilder, Field: "due_date"}))
	assert.False(t, errors.Is(err, &mpesa.Error{Kind: mpesa.KindBuilder, Field: "amount"}))
	assert.False(t, errors.Is(err, mpesa.ErrValidation))

	svc := &mpesa.Error{Kind: mpesa.KindService, Op: mpesa.OpB2c, StatusCode: 500}
	assert.True(t, errors.Is(svc, &mpesa.Error{Kind: mpesa.KindService, Op: mpesa.OpB2c}))
	assert.False(t, errors.Is(svc, &mpesa.Error{Kind: mpesa.KindService, Op: mpesa.OpB2b}))
}

func TestError_Unwrap(t *testing.T) {
	err := &mpesa.Error{Kind: mpesa.KindTransport, Op: mpesa.OpAuth, Message: "request failed", Err: context.DeadlineExceeded}

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "mpesa transport error [Auth]: request failed: context deadline exceeded", err.Error())
}

func TestError_Display(t *testing.T) {
	tests := []struct {
		name string
		err  *mpesa.Error
		want string
	}{
		{
			name: "builder",
			err:  &mpesa.Error{Kind: mpesa.KindBuilder, Field: "party_a"},
			want: `mpesa builder error: field "party_a" is required`,
		},
		{
			name: "service",
			err: &mpesa.Error{
				Kind:       mpesa.KindService,
				Op:         mpesa.OpExpress,
				StatusCode: 400,
				Response: &mpesa.ResponseError{
					RequestID:    "ws_1",
					ErrorCode:    "400.002.02",
					ErrorMessage: "Bad Request - Invalid PhoneNumber",
				},
			},
			want: `mpesa service error [Express]: status 400, request id "ws_1", error code "400.002.02", error message "Bad Request - Invalid PhoneNumber"`,
		},
		{
			name: "validation",
			err:  &mpesa.Error{Kind: mpesa.KindValidation, Message: "invalid phone number \"12\""},
			want: `mpesa validation error: invalid phone number "12"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsServiceError(t *testing.T) {
	_, ok := mpesa.IsServiceError(errors.New("boom"))
	assert.False(t, ok)

	_, ok = mpesa.IsServiceError(mpesa.ErrCodec)
	assert.False(t, ok)

	svc, ok := mpesa.IsServiceError(fmt.Errorf("wrapped: %w", &mpesa.Error{Kind: mpesa.KindService, StatusCode: 503}))
	assert.True(t, ok)
	assert.Equal(t, 503, svc.StatusCode)
}
