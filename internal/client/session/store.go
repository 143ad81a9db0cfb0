package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/physiofit/clinic/internal/client/models"
	"github.com/physiofit/clinic/internal/client/repositories/metadata"
	"github.com/physiofit/clinic/internal/common"
	"github.com/physiofit/clinic/internal/logging"
)

// TokenIssuer exchanges user credentials for a token pair.
type TokenIssuer interface {
	ObtainToken(ctx context.Context, email string, password []byte) (*models.Credential, error)
}

// Navigator moves the client to an application path.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, path string) error

func (f NavigatorFunc) Navigate(ctx context.Context, path string) error {
	return f(ctx, path)
}

// Store holds the current credential and its claims. The in-memory state
// and the durable entry are present together or absent together, except
// transiently during Logout when storage fails.
type Store struct {
	mu     sync.RWMutex
	cred   *models.Credential
	claims *models.Claims

	issuer TokenIssuer
	repo   metadata.Repository
	nav    Navigator
	log    logging.Logger
}

// NewStore returns a logged-out store. Call Restore to pick up a credential
// persisted by a previous run.
func NewStore(issuer TokenIssuer, repo metadata.Repository, nav Navigator, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop{}
	}
	return &Store{
		issuer: issuer,
		repo:   repo,
		nav:    nav,
		log:    log.With("component", "session"),
	}
}

// Login authenticates against the token endpoint, persists the credential and
// navigates to the dashboard. On any failure the previous session, in memory
// and on disk, is left as it was and a *LoginError is returned.
func (s *Store) Login(ctx context.Context, email string, password []byte) error {
	cred, err := s.issuer.ObtainToken(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return issuerFailure(err)
	}

	claims, err := DecodeClaims(cred.Access)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return &LoginError{Message: MsgInvalidCredentials, Err: err}
	}

	raw, err := json.Marshal(cred)
	if err != nil {
		return &LoginError{Message: MsgStorageFailure, Err: err}
	}
	if err := s.repo.Set(ctx, common.CredentialStorageKey, raw); err != nil {
		s.log.Error(ctx, "persisting credential failed", "error", err)
		return &LoginError{Message: MsgStorageFailure, Err: err}
	}

	s.mu.Lock()
	s.cred = cred
	s.claims = claims
	s.mu.Unlock()

	s.log.Info(ctx, "login succeeded", "user_id", claims.UserID, "role", claims.Role().String())
	s.navigate(ctx, common.PathDashboard)
	return nil
}

// Logout forgets the session and sends the user to the login page. The
// in-memory session is always cleared; a storage error is reported after
// navigation has happened.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	prev := s.claims
	s.cred = nil
	s.claims = nil
	s.mu.Unlock()

	err := s.repo.Delete(ctx, common.CredentialStorageKey)
	if err != nil {
		s.log.Error(ctx, "removing stored credential failed", "error", err)
	}
	if prev != nil {
		s.log.Info(ctx, "logged out", "user_id", prev.UserID)
	}

	s.navigate(ctx, common.PathLogin)

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Restore loads a credential persisted by an earlier run. A missing entry
// leaves the store logged out. An entry that cannot be decoded is deleted and
// the store stays logged out.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, common.CredentialStorageKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if raw == nil {
		s.log.Debug(ctx, "no stored credential")
		return nil
	}

	cred, claims, err := decodeStored(raw)
	if err != nil {
		s.log.Warn(ctx, "dropping unreadable stored credential", "error", err)
		if err := s.repo.Delete(ctx, common.CredentialStorageKey); err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	s.cred = cred
	s.claims = claims
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "user_id", claims.UserID, "role", claims.Role().String())
	return nil
}

// CurrentUser returns a copy of the current claims, or false when nobody is
// logged in. Token expiry is not consulted.
func (s *Store) CurrentUser() (*models.Claims, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.claims == nil {
		return nil, false
	}
	return s.claims.Clone(), true
}

// AccessToken returns the current access token or "".
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cred == nil {
		return ""
	}
	return s.cred.Access
}

func (s *Store) navigate(ctx context.Context, path string) {
	if s.nav == nil {
		return
	}
	if err := s.nav.Navigate(ctx, path); err != nil {
		s.log.Warn(ctx, "navigation failed", "path", path, "error", err)
	}
}
