package mpesa

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed certs/production.cer
var productionCertificate string

//go:embed certs/sandbox.cer
var sandboxCertificate string

const (
	productionBaseURL = "https://api.safaricom.co.ke"
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
)

type environmentKind int

const (
	kindCustom environmentKind = iota
	kindProduction
	kindSandbox
)

// Environment selects the Daraja deployment a Client talks to: its base URL
// and the certificate used to encrypt initiator credentials.
type Environment struct {
	kind        environmentKind
	baseURL     string
	certificate string
}

var (
	Production = Environment{kind: kindProduction, baseURL: productionBaseURL}
	Sandbox    = Environment{kind: kindSandbox, baseURL: sandboxBaseURL}
)

// NewCustomEnvironment targets an arbitrary server, typically a mock used in tests.
// certificatePEM must contain a PEM encoded X.509 certificate with an RSA key.
func NewCustomEnvironment(baseURL, certificatePEM string) Environment {
	return Environment{
		kind:        kindCustom,
		baseURL:     strings.TrimRight(baseURL, "/"),
		certificate: certificatePEM,
	}
}

func (e Environment) BaseURL() string {
	return e.baseURL
}

// WithCertificate returns a copy of e that encrypts initiator passwords with
// certificatePEM instead of the embedded certificate.
func (e Environment) WithCertificate(certificatePEM string) Environment {
	e.certificate = certificatePEM
	return e
}

func (e Environment) Certificate() string {
	if e.certificate != "" {
		return e.certificate
	}
	switch e.kind {
	case kindProduction:
		return productionCertificate
	case kindSandbox:
		return sandboxCertificate
	default:
		return e.certificate
	}
}

func (e Environment) String() string {
	switch e.kind {
	case kindProduction:
		return "production"
	case kindSandbox:
		return "sandbox"
	default:
		return "custom(" + e.baseURL + ")"
	}
}

// ParseEnvironment accepts exactly "production" or "sandbox".
func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "production":
		return Production, nil
	case "sandbox":
		return Sandbox, nil
	default:
		return Environment{}, newValidationError(fmt.Sprintf("unknown environment %q: expected production or sandbox", s))
	}
}

func (e *Environment) UnmarshalText(text []byte) error {
	env, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

func (e Environment) MarshalText() ([]byte, error) {
	if e.kind == kindCustom {
		return nil, newValidationError("custom environments have no text form")
	}
	return []byte(e.String()), nil
}
