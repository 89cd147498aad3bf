package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/credential"
	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/gateway"
)

// apiStub fakes the token and identity endpoints. Tokens present in users
// are accepted; everything else is rejected with 401.
type apiStub struct {
	token string
	users map[string]string // token -> identity JSON
	calls []string
}

func (a *apiStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		a.calls = append(a.calls, "token")
		if r.FormValue("username") == "" || r.FormValue("password") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Incorrect username or password"}`))
			return
		}
		w.Write([]byte(`{"access_token":"` + a.token + `","token_type":"bearer"}`))
	})
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		a.calls = append(a.calls, "me "+r.Header.Get("Authorization"))
		identity, ok := a.users[r.Header.Get("Authorization")]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		w.Write([]byte(identity))
	})
	return mux
}

func newTestStore(t *testing.T, stub *apiStub) (*Store, *credential.MemoryStore, *gateway.Client) {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	creds := credential.NewMemoryStore()
	client := gateway.NewClient(srv.URL, 5*time.Second, creds, zap.NewNop())
	return NewStore(client, creds, nil, zap.NewNop()), creds, client
}

func TestLoginEstablishesSession(t *testing.T) {
	stub := &apiStub{
		token: "ABC",
		users: map[string]string{
			"Bearer ABC": `{"id":7,"full_name":"Jane","email":"jane@corp.test","role":"manager","is_active":true}`,
		},
	}
	store, creds, _ := newTestStore(t, stub)

	require.NoError(t, store.Login(context.Background(), "jane@corp.test", "pw"))

	assert.Equal(t, StateAuthenticated, store.State())
	session, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "Jane", session.DisplayName)
	assert.Equal(t, domain.RoleManager, session.Role)
	assert.Equal(t, "ABC", session.Credential)

	token, _ := creds.Load()
	assert.Equal(t, "ABC", token, "exchanged token is persisted")
}

func TestLoginExchangeFailurePersistsNothing(t *testing.T) {
	stub := &apiStub{token: "ABC", users: map[string]string{}}
	store, creds, _ := newTestStore(t, stub)

	err := store.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrSessionInvalidated)

	assert.Equal(t, StateAnonymous, store.State())
	_, ok := store.Current()
	assert.False(t, ok)
	token, _ := creds.Load()
	assert.Empty(t, token)
}

func TestLoginIdentityFailureRollsBackCredential(t *testing.T) {
	// token exchange succeeds but /users/me rejects the token
	stub := &apiStub{token: "ABC", users: map[string]string{}}
	store, creds, _ := newTestStore(t, stub)

	err := store.Login(context.Background(), "jane@corp.test", "pw")
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, store.State())
	token, _ := creds.Load()
	assert.Empty(t, token, "half-open login must not leave a credential behind")
}

func TestRestoreWithoutCredentialSettlesAnonymous(t *testing.T) {
	stub := &apiStub{token: "ABC", users: map[string]string{}}
	store, _, _ := newTestStore(t, stub)

	require.NoError(t, store.Restore(context.Background()))

	assert.Equal(t, StateAnonymous, store.State())
	assert.Empty(t, stub.calls, "no credential means no network traffic")
}

func TestRestoreWithValidCredential(t *testing.T) {
	stub := &apiStub{
		token: "T1",
		users: map[string]string{
			"Bearer T1": `{"id":3,"full_name":"Ops Admin","email":"ops@corp.test","role":"admin","is_active":true}`,
		},
	}
	store, creds, client := newTestStore(t, stub)
	require.NoError(t, creds.Save("T1"))

	require.NoError(t, store.Restore(context.Background()))

	assert.Equal(t, StateAuthenticated, store.State())
	session, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, int64(3), session.UserID)
	assert.Equal(t, domain.RoleAdmin, session.Role)

	// the restored credential rides on subsequent requests
	require.NoError(t, client.Get(context.Background(), "/users/me", nil))
	assert.Equal(t, "me Bearer T1", stub.calls[len(stub.calls)-1])
}

func TestRestoreWithRejectedCredential(t *testing.T) {
	stub := &apiStub{token: "T1", users: map[string]string{}}
	store, creds, _ := newTestStore(t, stub)
	require.NoError(t, creds.Save("expired"))

	err := store.Restore(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, store.State())
	token, _ := creds.Load()
	assert.Empty(t, token, "rejected credential is discarded")
}

func TestRestoreWithUnreachableServer(t *testing.T) {
	creds := credential.NewMemoryStore()
	require.NoError(t, creds.Save("T1"))
	client := gateway.NewClient("http://127.0.0.1:1", 500*time.Millisecond, creds, zap.NewNop())
	store := NewStore(client, creds, nil, zap.NewNop())

	err := store.Restore(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrNoResponse)

	assert.Equal(t, StateAnonymous, store.State(), "restore always settles")
	token, _ := creds.Load()
	assert.Empty(t, token)
}

func TestLogoutIsIdempotent(t *testing.T) {
	stub := &apiStub{
		token: "ABC",
		users: map[string]string{
			"Bearer ABC": `{"id":7,"full_name":"Jane","email":"jane@corp.test","role":"user","is_active":true}`,
		},
	}
	store, creds, _ := newTestStore(t, stub)
	require.NoError(t, store.Login(context.Background(), "jane@corp.test", "pw"))

	store.Logout()
	store.Logout()
	store.Logout()

	assert.Equal(t, StateAnonymous, store.State())
	_, ok := store.Current()
	assert.False(t, ok)
	token, _ := creds.Load()
	assert.Empty(t, token)
}

func TestServerInvalidationDropsSession(t *testing.T) {
	valid := map[string]string{
		"Bearer ABC": `{"id":7,"full_name":"Jane","email":"jane@corp.test","role":"user","is_active":true}`,
	}
	stub := &apiStub{token: "ABC", users: valid}
	store, creds, client := newTestStore(t, stub)
	require.NoError(t, store.Login(context.Background(), "jane@corp.test", "pw"))

	// server stops accepting the token mid-session
	delete(stub.users, "Bearer ABC")

	err := client.Get(context.Background(), "/users/me", nil)
	require.ErrorIs(t, err, gateway.ErrSessionInvalidated)

	assert.Equal(t, StateAnonymous, store.State())
	_, ok := store.Current()
	assert.False(t, ok)
	token, _ := creds.Load()
	assert.Empty(t, token)
}

func TestHasRole(t *testing.T) {
	stub := &apiStub{
		token: "ABC",
		users: map[string]string{
			"Bearer ABC": `{"id":7,"full_name":"Jane","email":"jane@corp.test","role":"manager","is_active":true}`,
		},
	}
	store, _, _ := newTestStore(t, stub)

	assert.False(t, store.HasRole(domain.RoleUser), "no session, no roles")

	require.NoError(t, store.Login(context.Background(), "jane@corp.test", "pw"))
	assert.True(t, store.HasRole(domain.RoleUser))
	assert.True(t, store.HasRole(domain.RoleManager))
	assert.False(t, store.HasRole(domain.RoleAdmin))

	store.Logout()
	assert.False(t, store.HasRole(domain.RoleUser))
}

func TestMissingRoleFallsBackToAdmin(t *testing.T) {
	stub := &apiStub{
		token: "ABC",
		users: map[string]string{
			"Bearer ABC": `{"id":7,"full_name":"Jane","email":"jane@corp.test","is_active":true}`,
		},
	}
	store, _, _ := newTestStore(t, stub)

	require.NoError(t, store.Login(context.Background(), "jane@corp.test", "pw"))
	session, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, session.Role)
}
