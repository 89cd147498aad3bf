package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/credential"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *credential.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := credential.NewMemoryStore()
	return NewClient(srv.URL, 5*time.Second, creds, zap.NewNop()), creds
}

func TestClientAttachesBearerWhenCredentialPresent(t *testing.T) {
	var gotAuth string
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	require.NoError(t, creds.Save("T1"))

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/inventory/", &out))
	assert.Equal(t, "Bearer T1", gotAuth)
}

func TestClientSendsAnonymousWhenStoreEmpty(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/health", &out))
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorizedClearsCredentialAndNotifiesOnce(t *testing.T) {
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	require.NoError(t, creds.Save("stale"))

	notified := 0
	client.OnSessionInvalidated(func() { notified++ })

	err := client.Get(context.Background(), "/users/me", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionInvalidated)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "Could not validate credentials", statusErr.Message)

	token, _ := creds.Load()
	assert.Empty(t, token, "rejected credential must be cleared")
	assert.Equal(t, 1, notified, "observer fires exactly once per response")
}

func TestClientNon401RejectionIsNotInvalidation(t *testing.T) {
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"supplier not found"}}`))
	}))
	require.NoError(t, creds.Save("T1"))

	notified := 0
	client.OnSessionInvalidated(func() { notified++ })

	err := client.Get(context.Background(), "/suppliers/99", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionInvalidated)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "supplier not found", statusErr.Message)

	token, _ := creds.Load()
	assert.Equal(t, "T1", token, "credential survives non-auth rejections")
	assert.Zero(t, notified)
}

func TestClientTransportFailureClassifiedAsNoResponse(t *testing.T) {
	creds := credential.NewMemoryStore()
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, creds, zap.NewNop())

	err := client.Get(context.Background(), "/health", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoResponse)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "no server response means no status error")
}

func TestClientSetupFailureClassified(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	// channels cannot be marshalled to JSON
	err := client.Post(context.Background(), "/inventory/", make(chan int), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestSetup)
}

func TestFormPostEncodesForm(t *testing.T) {
	var gotContentType, gotUser, gotPass string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotContentType = r.Header.Get("Content-Type")
		gotUser = r.FormValue("username")
		gotPass = r.FormValue("password")
		w.Write([]byte(`{"access_token":"ABC","token_type":"bearer"}`))
	}))

	token, err := NewAuth(client).ExchangeToken(context.Background(), "jane@corp.test", "pw")
	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "jane@corp.test", gotUser)
	assert.Equal(t, "pw", gotPass)
	assert.Equal(t, "ABC", token.AccessToken)
}

func TestErrorMessageFallsBackToRawBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))

	err := client.Get(context.Background(), "/health", nil)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "upstream unavailable", statusErr.Message)
}
