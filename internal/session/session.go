// Package session owns the authenticated identity: login, registration,
// logout, profile updates, and the rehydration fallback chain, modeled as an
// explicit state machine.
package session

import (
	"context"
	"sync"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/errors"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("placement-dashboard/session")

// State is the rehydration state machine position.
//
//	unauthenticated → checking-cookie → checking-token → authenticated
//	                        │                  │
//	                        └──────────────────┴──► unauthenticated
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateCheckingCookie  State = "checking-cookie"
	StateCheckingToken   State = "checking-token"
	StateAuthenticated   State = "authenticated"
)

// Gateway is the slice of the API client the session manager consumes.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, input api.RegisterInput) (*api.AuthResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error)
	SetToken(token string)
	ClearToken()
}

// Bus publishes session-changed events so other running instances react
// without a network round trip (the cross-tab channel).
type Bus interface {
	PublishLogin(ctx context.Context, user models.User) error
	PublishLogout(ctx context.Context) error
}

// Manager holds the current session user and drives the auth lifecycle.
// Constructed once at process start; consumers receive it by reference.
type Manager struct {
	gateway Gateway
	creds   *Store
	bus     Bus
	logger  *zap.Logger

	mu      sync.RWMutex
	user    *models.User
	state   State
	loading bool
}

func NewManager(gateway Gateway, creds *Store, bus Bus, logger *zap.Logger) *Manager {
	return &Manager{
		gateway: gateway,
		creds:   creds,
		bus:     bus,
		logger:  logger,
		state:   StateUnauthenticated,
	}
}

// Rehydrate recovers the session on startup: cookie first, stored token
// second, unauthenticated otherwise. Failures along the chain are logged and
// swallowed; the caller always ends with loading=false and a settled state.
func (m *Manager) Rehydrate(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Rehydrate")
	defer span.End()

	m.setLoading(true)
	defer m.setLoading(false)

	m.setState(StateCheckingCookie)
	user, err := m.gateway.CurrentUser(ctx)
	if err == nil {
		m.finishAuthenticated(ctx, user)
		return
	}
	m.logger.Debug("cookie session recovery failed", zap.Error(err))

	token := m.creds.Token(ctx)
	if token == "" {
		m.logger.Info("no stored credential, ending unauthenticated")
		m.clearSession(ctx)
		return
	}

	m.setState(StateCheckingToken)
	m.gateway.SetToken(token)
	user, err = m.gateway.CurrentUser(ctx)
	if err != nil {
		m.logger.Info("stored token rejected, clearing credentials", zap.Error(err))
		m.gateway.ClearToken()
		m.clearSession(ctx)
		return
	}

	m.finishAuthenticated(ctx, user)
}

func (m *Manager) finishAuthenticated(ctx context.Context, user *models.User) {
	m.mu.Lock()
	m.user = user
	m.state = StateAuthenticated
	m.mu.Unlock()

	if token := m.creds.Token(ctx); token != "" {
		if err := m.creds.Save(ctx, token, *user); err != nil {
			m.logger.Warn("failed to refresh stored user snapshot", zap.Error(err))
		}
	}
	m.logger.Info("session established",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
}

func (m *Manager) clearSession(ctx context.Context) {
	m.creds.Clear(ctx)
	m.mu.Lock()
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()
}

// Login authenticates, persists the credential pair, and announces the new
// session on the bus.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	resp, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := m.creds.Save(ctx, resp.Token, resp.User); err != nil {
		m.logger.Warn("failed to persist credentials", zap.Error(err))
	}

	m.mu.Lock()
	user := resp.User
	m.user = &user
	m.state = StateAuthenticated
	m.mu.Unlock()

	m.announceLogin(ctx, resp.User)
	return &user, nil
}

// Register creates the account and establishes the session the same way
// login does.
func (m *Manager) Register(ctx context.Context, input api.RegisterInput) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	resp, err := m.gateway.Register(ctx, input)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := m.creds.Save(ctx, resp.Token, resp.User); err != nil {
		m.logger.Warn("failed to persist credentials", zap.Error(err))
	}

	m.mu.Lock()
	user := resp.User
	m.user = &user
	m.state = StateAuthenticated
	m.mu.Unlock()

	m.announceLogin(ctx, resp.User)
	return &user, nil
}

// Logout tears the session down locally regardless of whether the revocation
// call succeeds, then announces it.
func (m *Manager) Logout(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Logout")
	defer span.End()

	if err := m.gateway.Logout(ctx); err != nil {
		m.logger.Warn("logout call failed", zap.Error(err))
	}
	m.clearSession(ctx)

	if m.bus != nil {
		if err := m.bus.PublishLogout(ctx); err != nil {
			m.logger.Warn("failed to publish logout event", zap.Error(err))
		}
	}
}

// UpdateUser replaces the user snapshot wholesale with whatever the backend
// returns.
func (m *Manager) UpdateUser(ctx context.Context, fields map[string]interface{}) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UpdateUser")
	defer span.End()

	current := m.User()
	if current == nil {
		return nil, errors.Unauthorized("no authenticated session", nil)
	}

	updated, err := m.gateway.UpdateUser(ctx, current.ID, fields)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	m.mu.Lock()
	m.user = updated
	m.mu.Unlock()

	if token := m.creds.Token(ctx); token != "" {
		if err := m.creds.Save(ctx, token, *updated); err != nil {
			m.logger.Warn("failed to refresh stored user snapshot", zap.Error(err))
		}
	}
	return updated, nil
}

func (m *Manager) announceLogin(ctx context.Context, user models.User) {
	if m.bus == nil {
		return
	}
	if err := m.bus.PublishLogin(ctx, user); err != nil {
		m.logger.Warn("failed to publish login event", zap.Error(err))
	}
}

// ApplyRemoteLogin reflects a login announced by another instance, without a
// network round trip.
func (m *Manager) ApplyRemoteLogin(user models.User) {
	m.mu.Lock()
	m.user = &user
	m.state = StateAuthenticated
	m.mu.Unlock()
	m.logger.Info("applied remote login", zap.String("user_id", user.ID))
}

// ApplyRemoteLogout reflects a logout announced by another instance.
func (m *Manager) ApplyRemoteLogout(ctx context.Context) {
	m.clearSession(ctx)
	m.logger.Info("applied remote logout")
}

// ── Accessors ───────────────────────────────────────────────────────────────

func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Manager) IsStudent() bool     { return m.hasRole(models.RoleStudent) }
func (m *Manager) IsCampusPOC() bool   { return m.hasRole(models.RoleCampusPOC) }
func (m *Manager) IsCoordinator() bool { return m.hasRole(models.RoleCoordinator) }
func (m *Manager) IsManager() bool     { return m.hasRole(models.RoleManager) }

func (m *Manager) hasRole(role models.Role) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.Role == role
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
