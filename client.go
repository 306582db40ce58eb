package mpesa

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/DanielPopoola/mpesa-go/internal/config"
)

const defaultTimeout = 30 * time.Second

// HTTPDoer is the transport used by a Client. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a handle on the Daraja API for one app. It is safe for concurrent use.
type Client struct {
	clientKey         string
	clientSecret      string
	environment       Environment
	initiatorPassword atomic.Pointer[string]
	httpClient        HTTPDoer
	timeout           time.Duration
	passKey           string
	logger            *slog.Logger
	now               func() time.Time
}

type Option func(*Client)

// WithHTTPClient replaces the default *http.Client. WithTimeout is ignored when set.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithInitiatorPassword(password string) Option {
	return func(c *Client) {
		c.initiatorPassword.Store(&password)
	}
}

// WithPassKey sets the STK-Push pass key used when a builder does not set one.
func WithPassKey(passKey string) Option {
	return func(c *Client) {
		c.passKey = passKey
	}
}

// WithClock overrides the clock used for STK-Push timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func New(clientKey, clientSecret string, env Environment, opts ...Option) *Client {
	c := &Client{
		clientKey:    clientKey,
		clientSecret: clientSecret,
		environment:  env,
		timeout:      defaultTimeout,
		passKey:      DefaultPassKey,
		logger:       slog.Default(),
		now:          time.Now,
	}
	password := DefaultInitiatorPassword
	c.initiatorPassword.Store(&password)

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// NewFromEnv builds a Client from MPESA_* environment variables (and a .env file if present).
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, newEnvironmentError("error loading configuration", err)
	}
	return newFromConfig(cfg, opts...)
}

func newFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	env, err := ParseEnvironment(cfg.Environment)
	if err != nil {
		return nil, newEnvironmentError("invalid MPESA_ENVIRONMENT", err)
	}
	if cfg.CertificateFile != "" {
		pem, err := os.ReadFile(cfg.CertificateFile)
		if err != nil {
			return nil, newEnvironmentError("error reading MPESA_CERTIFICATE_FILE", err)
		}
		env = env.WithCertificate(string(pem))
	}

	base := []Option{
		WithTimeout(cfg.HTTP.Timeout),
		WithLogger(cfg.Logger.NewLogger()),
	}
	if cfg.InitiatorPassword != "" {
		base = append(base, WithInitiatorPassword(cfg.InitiatorPassword))
	}
	if cfg.PassKey != "" {
		base = append(base, WithPassKey(cfg.PassKey))
	}

	return New(cfg.ClientKey, cfg.ClientSecret, env, append(base, opts...)...), nil
}

func (c *Client) Environment() Environment {
	return c.environment
}

// SetInitiatorPassword replaces the password encrypted into SecurityCredential fields.
func (c *Client) SetInitiatorPassword(password string) {
	c.initiatorPassword.Store(&password)
}

func (c *Client) InitiatorPassword() string {
	return *c.initiatorPassword.Load()
}

// IsConnected reports whether an access token can be obtained with the client's credentials.
func (c *Client) IsConnected(ctx context.Context) bool {
	_, err := c.auth(ctx)
	if err != nil {
		c.logger.DebugContext(ctx, "connectivity check failed", "error", err)
		return false
	}
	return true
}
