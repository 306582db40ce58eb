package mpesa_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

const (
	testClientKey    = "test-client-key"
	testClientSecret = "test-client-secret"
)

type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          []byte
}

type fakeRoute struct {
	status int
	body   string
}

// fakeDaraja stands in for the Daraja API: it issues tokens and replays canned responses per path.
type fakeDaraja struct {
	t         *testing.T
	server    *httptest.Server
	authCalls atomic.Int32

	mu         sync.Mutex
	authStatus int
	authBody   string
	routes     map[string]fakeRoute
	requests   []recordedRequest
}

func newFakeDaraja(t *testing.T) *fakeDaraja {
	t.Helper()
	f := &fakeDaraja{
		t:          t,
		authStatus: http.StatusOK,
		routes:     make(map[string]fakeRoute),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeDaraja) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/oauth/v1/generate" {
		f.handleAuth(w, r)
		return
	}

	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		Body:          body,
	})
	route, ok := f.routes[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"requestId":"","errorCode":"404.001.01","errorMessage":"Resource not found"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.status)
	_, _ = w.Write([]byte(route.body))
}

func (f *fakeDaraja) handleAuth(w http.ResponseWriter, r *http.Request) {
	f.authCalls.Add(1)

	key, secret, ok := r.BasicAuth()
	if r.Method != http.MethodGet || !ok || r.URL.Query().Get("grant_type") != "client_credentials" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"requestId":"auth-1","errorCode":"400.008.02","errorMessage":"Invalid grant type passed"}`))
		return
	}

	f.mu.Lock()
	status, body := f.authStatus, f.authBody
	f.mu.Unlock()

	if status != http.StatusOK {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"access_token": tokenFor(key, secret),
		"expires_in":   "3599",
	})
}

func tokenFor(key, secret string) string {
	return "token-" + key + "-" + secret
}

func (f *fakeDaraja) on(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = fakeRoute{status: status, body: body}
}

func (f *fakeDaraja) failAuth(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authStatus, f.authBody = status, body
}

func (f *fakeDaraja) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

// lastBody decodes the body of the most recent non-auth request.
func (f *fakeDaraja) lastBody() map[string]any {
	f.t.Helper()
	reqs := f.recorded()
	require.NotEmpty(f.t, reqs)
	var body map[string]any
	require.NoError(f.t, json.Unmarshal(reqs[len(reqs)-1].Body, &body))
	return body
}

func (f *fakeDaraja) lastBodyInto(v any) {
	f.t.Helper()
	reqs := f.recorded()
	require.NotEmpty(f.t, reqs)
	require.NoError(f.t, json.Unmarshal(reqs[len(reqs)-1].Body, v))
}

func (f *fakeDaraja) environment() mpesa.Environment {
	return mpesa.NewCustomEnvironment(f.server.URL, string(readTestdata(f.t, "test_cert.pem")))
}

func (f *fakeDaraja) client(opts ...mpesa.Option) *mpesa.Client {
	return mpesa.New(testClientKey, testClientSecret, f.environment(), opts...)
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

// decryptCredential reverses SecurityCredential using the test private key.
func decryptCredential(t *testing.T, credential string) string {
	t.Helper()

	block, _ := pem.Decode(readTestdata(t, "test_key.pem"))
	require.NotNil(t, block)
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	key, ok := parsed.(*rsa.PrivateKey)
	require.True(t, ok)

	ciphertext, err := base64.StdEncoding.DecodeString(credential)
	require.NoError(t, err)
	plain, err := rsa.DecryptPKCS1v15(rand.Reader, key, ciphertext)
	require.NoError(t, err)
	return string(plain)
}
