package mpesa

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

const (
	authPath = "oauth/v1/generate?grant_type=client_credentials"
	tokenTTL = 3600 * time.Second
)

type cachedToken struct {
	key         string
	accessToken string
	acquiredAt  time.Time
	expiresIn   int64
}

// tokenCache holds at most one access token for the whole process.
// Misses are filled while holding guard, so concurrent callers share one fetch.
type tokenCache struct {
	guard chan struct{}
	entry atomic.Pointer[cachedToken]
	now   func() time.Time
}

var authCache = newTokenCache(time.Now)

func newTokenCache(now func() time.Time) *tokenCache {
	return &tokenCache{
		guard: make(chan struct{}, 1),
		now:   now,
	}
}

func (tc *tokenCache) lookup(key string) (string, bool) {
	e := tc.entry.Load()
	if e == nil || e.key != key {
		return "", false
	}
	if tc.now().Sub(e.acquiredAt) >= tokenTTL {
		return "", false
	}
	return e.accessToken, true
}

type tokenFetcher func(ctx context.Context) (accessToken string, expiresIn int64, err error)

func (tc *tokenCache) token(ctx context.Context, key string, fetch tokenFetcher) (string, error) {
	if tok, ok := tc.lookup(key); ok {
		return tok, nil
	}

	select {
	case tc.guard <- struct{}{}:
	case <-ctx.Done():
		return "", newTransportError(OpAuth, ctx.Err())
	}
	defer func() { <-tc.guard }()

	if tok, ok := tc.lookup(key); ok {
		return tok, nil
	}

	tok, expiresIn, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	// A single store replaces any expired or foreign entry.
	tc.entry.Store(&cachedToken{
		key:         key,
		accessToken: tok,
		acquiredAt:  tc.now(),
		expiresIn:   expiresIn,
	})
	return tok, nil
}

func (tc *tokenCache) reset() {
	tc.entry.Store(nil)
}

// authResponse is the body of a successful OAuth token request.
type authResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   flexible `json:"expires_in"`
}

// flexible decodes a JSON number or a numeric string.
type flexible int64

func (f *flexible) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*f = flexible(n)
	return nil
}

func (c *Client) cacheKey() string {
	sum := sha256.Sum256([]byte(c.environment.BaseURL() + "\x00" + c.clientKey + "\x00" + c.clientSecret))
	return hex.EncodeToString(sum[:])
}

// auth returns a bearer token, reusing the cached one for up to an hour.
func (c *Client) auth(ctx context.Context) (string, error) {
	return authCache.token(ctx, c.cacheKey(), c.fetchToken)
}

func (c *Client) fetchToken(ctx context.Context) (string, int64, error) {
	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(c.environment.BaseURL(), authPath), nil)
	if err != nil {
		return "", 0, newTransportError(OpAuth, err)
	}
	httpReq.SetBasicAuth(c.clientKey, c.clientSecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, newTransportError(OpAuth, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, newTransportError(OpAuth, err)
	}

	c.logger.DebugContext(ctx, "oauth token request",
		"op", OpAuth,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if !isSuccess(resp.StatusCode) {
		return "", 0, newServiceError(OpAuth, resp.StatusCode, decodeResponseError(body))
	}

	var authResp authResponse
	if err := json.Unmarshal(body, &authResp); err != nil {
		return "", 0, newCodecError(OpAuth, "error decoding token response", err)
	}
	if authResp.AccessToken == "" {
		return "", 0, newCodecError(OpAuth, "token response has no access_token", nil)
	}

	return authResp.AccessToken, int64(authResp.ExpiresIn), nil
}
