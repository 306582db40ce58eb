package mpesa_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

const c2bRegisterOK = `{"OriginatorConversationID":"29464-48063588-1","ResponseDescription":"Accept the service request successfully.","ResponseCode":"0"}`

func registerURLs(c *mpesa.Client) *mpesa.C2BRegisterBuilder {
	return c.C2BRegister().
		ShortCode("600496").
		ConfirmationURL("https://testdomain.com/confirm").
		ValidationURL("https://testdomain.com/validate")
}

func TestClient_AuthIsCached(t *testing.T) {
	server := newFakeDaraja(t)
	server.on("/mpesa/c2b/v1/registerurl", http.StatusOK, c2bRegisterOK)
	client := server.client()

	_, err := registerURLs(client).Send(context.Background())
	require.NoError(t, err)
	_, err = registerURLs(client).Send(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), server.authCalls.Load())

	reqs := server.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, "Bearer "+tokenFor(testClientKey, testClientSecret), reqs[0].Authorization)
	assert.Equal(t, reqs[0].Authorization, reqs[1].Authorization)
}

func TestClient_ConcurrentSendsShareOneTokenFetch(t *testing.T) {
	mpesa.ResetTokenCache()
	server := newFakeDaraja(t)
	server.on("/mpesa/c2b/v1/registerurl", http.StatusOK, c2bRegisterOK)
	client := server.client()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := registerURLs(client).Send(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), server.authCalls.Load())
	assert.Len(t, server.recorded(), workers)
}

func TestClient_TokenExpiresAfterAnHour(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	restore := mpesa.SetTokenClock(func() time.Time { return now })
	defer restore()

	server := newFakeDaraja(t)
	client := server.client()
	ctx := context.Background()

	require.True(t, client.IsConnected(ctx))
	assert.Equal(t, int32(1), server.authCalls.Load())

	now = now.Add(3599 * time.Second)
	require.True(t, client.IsConnected(ctx))
	assert.Equal(t, int32(1), server.authCalls.Load())

	now = now.Add(time.Second)
	require.True(t, client.IsConnected(ctx))
	assert.Equal(t, int32(2), server.authCalls.Load())
}

func TestClient_NewCredentialsFetchNewToken(t *testing.T) {
	server := newFakeDaraja(t)
	server.on("/mpesa/c2b/v1/registerurl", http.StatusOK, c2bRegisterOK)

	first := server.client()
	second := mpesa.New("other-key", "other-secret", server.environment())

	_, err := registerURLs(first).Send(context.Background())
	require.NoError(t, err)
	_, err = registerURLs(second).Send(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), server.authCalls.Load())
	reqs := server.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, "Bearer "+tokenFor(testClientKey, testClientSecret), reqs[0].Authorization)
	assert.Equal(t, "Bearer "+tokenFor("other-key", "other-secret"), reqs[1].Authorization)
}

func TestClient_AuthFailureIsNotCached(t *testing.T) {
	server := newFakeDaraja(t)
	server.failAuth(http.StatusBadRequest, `{"requestId":"auth-9","errorCode":"400.008.01","errorMessage":"Invalid Authentication passed"}`)
	client := server.client()

	_, err := registerURLs(client).Send(context.Background())
	require.Error(t, err)

	svcErr, ok := mpesa.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, mpesa.OpAuth, svcErr.Op)
	assert.Equal(t, "400.008.01", svcErr.Response.ErrorCode)
	assert.False(t, client.IsConnected(context.Background()))

	server.failAuth(http.StatusOK, "")
	assert.True(t, client.IsConnected(context.Background()))
	assert.Equal(t, int32(3), server.authCalls.Load())
	assert.Empty(t, server.recorded())
}

func TestClient_AcceptsNumericExpiresIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","expires_in":3599}`))
	}))
	defer server.Close()

	client := mpesa.New(testClientKey, testClientSecret, mpesa.NewCustomEnvironment(server.URL, ""))
	assert.True(t, client.IsConnected(context.Background()))
}

func TestClient_EmptyAccessTokenIsNotCached(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"","expires_in":"3599"}`))
	}))
	defer server.Close()

	client := mpesa.New(testClientKey, testClientSecret, mpesa.NewCustomEnvironment(server.URL, ""))

	_, err := registerURLs(client).Send(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, &mpesa.Error{Kind: mpesa.KindCodec, Op: mpesa.OpAuth}))

	assert.False(t, client.IsConnected(context.Background()))
	assert.Equal(t, int32(2), calls.Load())
}

func TestSend_ServiceError(t *testing.T) {
	server := newFakeDaraja(t)
	server.on("/mpesa/c2b/v1/registerurl", http.StatusBadRequest,
		`{"requestId":"11728-2929992-1","errorCode":"401.002.01","errorMessage":"Error Occurred - Invalid Access Token"}`)
	client := server.client()

	_, err := registerURLs(client).Send(context.Background())
	require.Error(t, err)

	svcErr, ok := mpesa.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, mpesa.OpC2bRegister, svcErr.Op)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, &mpesa.ResponseError{
		RequestID:    "11728-2929992-1",
		ErrorCode:    "401.002.01",
		ErrorMessage: "Error Occurred - Invalid Access Token",
	}, svcErr.Response)

	msg := err.Error()
	assert.Contains(t, msg, "C2bRegister")
	assert.Contains(t, msg, "11728-2929992-1")
	assert.Contains(t, msg, "401.002.01")
	assert.NotContains(t, msg, testClientSecret)
	assert.NotContains(t, msg, mpesa.DefaultInitiatorPassword)
}

func TestSend_ServerErrorWithPlainBody(t *testing.T) {
	server := newFakeDaraja(t)
	server.on("/mpesa/c2b/v1/registerurl", http.StatusBadGateway, "upstream connect error")
	client := server.client()

	_, err := registerURLs(client).Send(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, mpesa.ErrService))

	svcErr, ok := mpesa.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, svcErr.StatusCode)
	require.NotNil(t, svcErr.Response)
	assert.Equal(t, "upstream connect error", svcErr.Response.ErrorMessage)
}

func TestSend_CodecError(t *testing.T) {
	server := newFakeDaraja(t)
	server.on("/mpesa/c2b/v1/registerurl", http.StatusOK, `{"ResponseCode":`)
	client := server.client()

	_, err := registerURLs(client).Send(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, mpesa.ErrCodec))
}

type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func TestSend_TransportError(t *testing.T) {
	doer := &mockDoer{}
	doer.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Path == "/oauth/v1/generate"
	})).Return(nil, errors.New("dial tcp: connection refused")).Once()

	env := mpesa.NewCustomEnvironment("http://daraja.invalid", "")
	client := mpesa.New("transport-key", "transport-secret", env, mpesa.WithHTTPClient(doer))

	_, err := registerURLs(client).Send(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, mpesa.ErrTransport))

	mpesaErr, ok := mpesa.AsError(err)
	require.True(t, ok)
	assert.Equal(t, mpesa.OpAuth, mpesaErr.Op)
	doer.AssertExpectations(t)
}

func TestSend_CancelledContext(t *testing.T) {
	server := newFakeDaraja(t)
	client := server.client()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registerURLs(client).Send(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mpesa.ErrTransport))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSend_LogsWithoutSecrets(t *testing.T) {
	server := newFakeDaraja(t)
	server.on("/mpesa/c2b/v1/registerurl", http.StatusOK, c2bRegisterOK)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := server.client(mpesa.WithLogger(logger))

	_, err := registerURLs(client).Send(context.Background())
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, `"trace_id"`)
	assert.Contains(t, logs, `"op":"C2bRegister"`)
	assert.NotContains(t, logs, testClientSecret)
	assert.NotContains(t, logs, tokenFor(testClientKey, testClientSecret))
}

func TestClient_SetInitiatorPassword(t *testing.T) {
	server := newFakeDaraja(t)
	client := server.client()
	assert.Equal(t, mpesa.DefaultInitiatorPassword, client.InitiatorPassword())

	client.SetInitiatorPassword("n3w-Passw0rd")
	req, err := client.B2C("testapi496").
		Amount(10).
		PartyA("600496").
		PartyB("254708374149").
		ResultURL("https://testdomain.com/ok").
		TimeoutURL("https://testdomain.com/err").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "n3w-Passw0rd", decryptCredential(t, req.SecurityCredential))
}
