package session

import (
	"context"
	"sync"
	"time"

	"recruit-console/internal/dto"
	"recruit-console/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// AuthAPI is the slice of the backend client the manager needs to
// establish a session.
type AuthAPI interface {
	ExchangeToken(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context, token string) (*dto.Identity, error)
}

// Manager owns the Session. Login and Logout are the only mutation
// points; everything else reads. It implements api.TokenSource so the
// backend client always sees the current token.
type Manager struct {
	mu      sync.RWMutex
	current *Session

	backend AuthAPI
	store   *FileStore
	logger  logger.ILogger

	onLogin  func(Session)
	onLogout func()
}

func NewManager(store *FileStore, log logger.ILogger) *Manager {
	return &Manager{
		store:  store,
		logger: log,
	}
}

// AttachBackend breaks the construction cycle: the backend client needs
// the manager as its token source before the manager can hold the client.
func (m *Manager) AttachBackend(backend AuthAPI) {
	m.backend = backend
}

// SetOnLogin registers the post-login transition (enter dashboard).
func (m *Manager) SetOnLogin(fn func(Session)) {
	m.onLogin = fn
}

// SetOnLogout registers the post-logout transition (back to auth view).
// It fires at most once per established session.
func (m *Manager) SetOnLogout(fn func()) {
	m.onLogout = fn
}

// Login exchanges credentials for a token, then resolves the identity.
// Both calls must succeed; an identity failure after a successful token
// exchange leaves no partial session behind.
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	token, err := m.backend.ExchangeToken(ctx, username, password)
	if err != nil {
		return nil, err
	}

	identity, err := m.backend.Me(ctx, token)
	if err != nil {
		m.logger.Warn("Session", "Identity fetch failed after token exchange", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	sess := Session{Token: token, Identity: *identity}

	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()

	m.persist(sess)

	m.logger.Info("Session", "Login established", map[string]interface{}{
		"user_id": identity.ID,
		"role":    identity.Role,
	})

	if m.onLogin != nil {
		m.onLogin(sess)
	}
	return &sess, nil
}

// Restore re-reads the durable cache at startup. Trust-on-read: no
// network call is made. Tokens with an already-past exp claim are not
// restored; the cache is cleared instead.
func (m *Manager) Restore() *Session {
	var token string
	var identity dto.Identity

	haveToken, err := m.store.Get(KeyToken, &token)
	if err != nil {
		m.logger.Warn("Session", "Failed reading session cache", map[string]interface{}{"error": err.Error()})
		return nil
	}
	haveIdentity, err := m.store.Get(KeyIdentity, &identity)
	if err != nil {
		m.logger.Warn("Session", "Failed reading session cache", map[string]interface{}{"error": err.Error()})
		return nil
	}
	if !haveToken || !haveIdentity {
		return nil
	}

	if tokenExpired(token) {
		m.logger.Info("Session", "Cached token expired, discarding", map[string]interface{}{
			"user_id": identity.ID,
		})
		if err := m.store.Clear(); err != nil {
			m.logger.Warn("Session", "Failed clearing expired cache", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}

	sess := Session{Token: token, Identity: identity}

	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()

	m.logger.Info("Session", "Session restored from cache", map[string]interface{}{
		"user_id": identity.ID,
		"role":    identity.Role,
	})
	return &sess
}

// Logout clears memory and both durable entries, then fires the logout
// transition. Idempotent: a second call is a silent no-op, so a 401
// arriving mid-logout cannot double-fire side effects.
func (m *Manager) Logout() {
	m.mu.Lock()
	wasLoggedIn := m.current != nil
	m.current = nil
	m.mu.Unlock()

	if !wasLoggedIn {
		return
	}

	if err := m.store.Clear(); err != nil {
		m.logger.Warn("Session", "Failed clearing session cache", map[string]interface{}{"error": err.Error()})
	}
	m.logger.Info("Session", "Logged out", nil)

	if m.onLogout != nil {
		m.onLogout()
	}
}

func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	copied := *m.current
	return &copied
}

func (m *Manager) LoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

// Token implements api.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

func (m *Manager) Identity() (dto.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return dto.Identity{}, false
	}
	return m.current.Identity, true
}

func (m *Manager) persist(sess Session) {
	if err := m.store.Set(KeyToken, sess.Token); err != nil {
		m.logger.Warn("Session", "Failed caching token", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := m.store.Set(KeyIdentity, sess.Identity); err != nil {
		m.logger.Warn("Session", "Failed caching identity", map[string]interface{}{"error": err.Error()})
	}
}

// tokenExpired peeks at the JWT exp claim without verifying the
// signature; verification stays server-side and the token stays opaque
// otherwise. Unparseable tokens are kept: the backend is the authority
// and will answer 401 if they are bad.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
