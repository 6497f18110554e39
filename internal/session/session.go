// Package session owns the client-side credential state: the current user,
// the persisted token pair and the bearer header on the shared API client.
// Every header/storage mutation funnels through this one store.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskflow/internal/api"
	"taskflow/internal/model"
)

// Durable storage keys, shared with the original browser client.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
	KeyRememberUser = "rememberUser"
)

// Storage is the durable key/value store behind the session. go-app's
// ctx.LocalStorage() satisfies it in the browser; tests use Memory.
type Storage interface {
	Set(k string, v any) error
	Get(k string, v any) error
	Del(k string)
}

type Store struct {
	api     *api.Client
	storage Storage

	mu            sync.RWMutex
	user          *model.User
	authenticated bool
	loading       bool
}

func NewStore(client *api.Client, storage Storage) *Store {
	return &Store{
		api:     client,
		storage: storage,
		loading: true,
	}
}

func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Loading reports whether the bootstrap has finished. Route decisions must
// wait until it turns false.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Role is the current user's role, defaulting to Client when no user is set
// or the stored role is unknown.
func (s *Store) Role() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.RoleClient
	}
	return model.ParseRole(string(s.user.Role))
}

// Initialize restores the session from persisted credentials. A missing pair
// leaves the session unauthenticated; an unparseable user record is treated
// as a logout, not a crash. The loading flag clears on every path.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	var token string
	if err := s.storage.Get(KeyAccessToken, &token); err != nil || token == "" {
		return
	}

	var user model.User
	if err := s.storage.Get(KeyUser, &user); err != nil || user.ID == 0 {
		s.clearLocked()
		return
	}

	s.user = &user
	s.authenticated = true
	s.api.SetToken(token)
}

// Login authenticates against the backend and, on success, persists the
// token/user triple and attaches the bearer header. Failures propagate
// unchanged and leave the session untouched.
func (s *Store) Login(ctx context.Context, email, password string, remember bool) (*api.LoginResponse, error) {
	resp, err := s.api.Login(ctx, email, password, remember)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.storage.Set(KeyAccessToken, resp.Access)
	s.storage.Set(KeyRefreshToken, resp.Refresh)
	s.storage.Set(KeyUser, resp.User)
	s.api.SetToken(resp.Access)

	user := resp.User
	s.user = &user
	s.authenticated = true
	return resp, nil
}

// Logout clears durable credentials, the bearer header and the in-memory
// session. Safe to call when already logged out.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Store) clearLocked() {
	s.storage.Del(KeyAccessToken)
	s.storage.Del(KeyRefreshToken)
	s.storage.Del(KeyUser)
	s.api.ClearToken()
	s.user = nil
	s.authenticated = false
}

// Refresh mints a new access token from the stored refresh token. It is
// never invoked automatically on 401; callers decide when to use it. A
// failed refresh logs the session out.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	var refresh string
	s.storage.Get(KeyRefreshToken, &refresh)
	s.mu.RUnlock()

	access, err := s.api.RefreshToken(ctx, refresh)
	if err != nil {
		s.Logout()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage.Set(KeyAccessToken, access)
	s.api.SetToken(access)
	return nil
}

// TokenExpiresAt reads the exp claim of the stored access token without
// verifying the signature; verification is the backend's job.
func (s *Store) TokenExpiresAt() (time.Time, bool) {
	var raw string
	if err := s.storage.Get(KeyAccessToken, &raw); err != nil || raw == "" {
		return time.Time{}, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpiringWithin reports whether the access token expires inside the
// given window, hinting that a caller-driven Refresh is due.
func (s *Store) TokenExpiringWithin(window time.Duration) bool {
	expiry, ok := s.TokenExpiresAt()
	if !ok {
		return false
	}
	return time.Until(expiry) < window
}

// RememberEmail persists the email for login-form prefill; opt-in only.
func (s *Store) RememberEmail(email string) {
	s.storage.Set(KeyRememberUser, email)
}

func (s *Store) ForgetEmail() {
	s.storage.Del(KeyRememberUser)
}

func (s *Store) RememberedEmail() string {
	var email string
	s.storage.Get(KeyRememberUser, &email)
	return email
}
