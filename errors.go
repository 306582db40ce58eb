package mpesa

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies every failure the library returns.
type Kind string

const (
	KindTransport   Kind = "transport"
	KindCodec       Kind = "codec"
	KindEncryption  Kind = "encryption"
	KindEnvironment Kind = "environment"
	KindService     Kind = "service"
	KindBuilder     Kind = "builder"
	KindValidation  Kind = "validation"
)

// Operation tags a remote call in error values and logs.
type Operation string

const (
	OpAuth                Operation = "Auth"
	OpB2c                 Operation = "B2c"
	OpB2b                 Operation = "B2b"
	OpC2bRegister         Operation = "C2bRegister"
	OpC2bSimulate         Operation = "C2bSimulate"
	OpAccountBalance      Operation = "AccountBalance"
	OpExpress             Operation = "Express"
	OpExpressQuery        Operation = "ExpressQuery"
	OpReversal            Operation = "Reversal"
	OpStatus              Operation = "Status"
	OpDynamicQr           Operation = "DynamicQr"
	OpOnboard             Operation = "Onboard"
	OpOnboardModify       Operation = "OnboardModify"
	OpBulkInvoice         Operation = "BulkInvoice"
	OpSingleInvoice       Operation = "SingleInvoice"
	OpCancelSingleInvoice Operation = "CancelSingleInvoice"
	OpCancelBulkInvoices  Operation = "CancelBulkInvoices"
	OpReconciliation      Operation = "Reconciliation"
)

// ResponseError is the structured error body Daraja returns on non-2xx responses.
type ResponseError struct {
	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

type Error struct {
	Kind       Kind
	Op         Operation
	Field      string
	Message    string
	StatusCode int
	Response   *ResponseError
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("mpesa ")
	b.WriteString(string(e.Kind))
	b.WriteString(" error")
	if e.Op != "" {
		fmt.Fprintf(&b, " [%s]", e.Op)
	}

	switch e.Kind {
	case KindBuilder:
		fmt.Fprintf(&b, ": field %q is required", e.Field)
	case KindService:
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
		if e.Response != nil {
			fmt.Fprintf(&b, ", request id %q, error code %q, error message %q",
				e.Response.RequestID, e.Response.ErrorCode, e.Response.ErrorMessage)
		}
	default:
		if e.Message != "" {
			b.WriteString(": ")
			b.WriteString(e.Message)
		}
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, and on Op and Field when the target sets them.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrTransport   = &Error{Kind: KindTransport}
	ErrCodec       = &Error{Kind: KindCodec}
	ErrEncryption  = &Error{Kind: KindEncryption}
	ErrEnvironment = &Error{Kind: KindEnvironment}
	ErrService     = &Error{Kind: KindService}
	ErrBuilder     = &Error{Kind: KindBuilder}
	ErrValidation  = &Error{Kind: KindValidation}
)

func newTransportError(op Operation, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Message: "request failed", Err: err}
}

func newCodecError(op Operation, message string, err error) *Error {
	return &Error{Kind: KindCodec, Op: op, Message: message, Err: err}
}

func newEncryptionError(message string, err error) *Error {
	return &Error{Kind: KindEncryption, Message: message, Err: err}
}

func newEnvironmentError(message string, err error) *Error {
	return &Error{Kind: KindEnvironment, Message: message, Err: err}
}

func newServiceError(op Operation, statusCode int, resp *ResponseError) *Error {
	return &Error{Kind: KindService, Op: op, StatusCode: statusCode, Response: resp}
}

func newBuilderError(field string) *Error {
	return &Error{Kind: KindBuilder, Field: field}
}

func newValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// AsError extracts the library error from err, if any.
func AsError(err error) (*Error, bool) {
	var mpesaErr *Error
	ok := errors.As(err, &mpesaErr)
	return mpesaErr, ok
}

// IsServiceError reports whether err is a non-2xx response from Daraja.
func IsServiceError(err error) (*Error, bool) {
	mpesaErr, ok := AsError(err)
	if !ok || mpesaErr.Kind != KindService {
		return nil, false
	}
	return mpesaErr, true
}
