package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache/memory"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/errors"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/session"

	"go.uber.org/zap"
)

// ── Fakes ───────────────────────────────────────────────────────────────────

type fakeGateway struct {
	token string

	loginResp    *api.AuthResponse
	loginErr     error
	currentUser  *models.User
	currentErr   error
	updatedUser  *models.User
	updateErr    error
	logoutErr    error
	logoutCalled bool

	// whoamiByToken, when set, makes CurrentUser answer per the token that is
	// currently installed, mimicking cookie-less token auth.
	whoamiByToken map[string]*models.User
}

func (g *fakeGateway) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	if g.loginErr != nil {
		return nil, g.loginErr
	}
	g.token = g.loginResp.Token
	return g.loginResp, nil
}

func (g *fakeGateway) Register(ctx context.Context, input api.RegisterInput) (*api.AuthResponse, error) {
	return g.Login(ctx, input.Email, input.Password)
}

func (g *fakeGateway) CurrentUser(ctx context.Context) (*models.User, error) {
	if g.whoamiByToken != nil {
		if u, ok := g.whoamiByToken[g.token]; ok {
			return u, nil
		}
		return nil, errors.Unauthorized("no session", nil)
	}
	return g.currentUser, g.currentErr
}

func (g *fakeGateway) Logout(ctx context.Context) error {
	g.logoutCalled = true
	return g.logoutErr
}

func (g *fakeGateway) UpdateUser(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error) {
	return g.updatedUser, g.updateErr
}

func (g *fakeGateway) SetToken(token string) { g.token = token }
func (g *fakeGateway) ClearToken()           { g.token = "" }

type fakeBus struct {
	logins  []models.User
	logouts int
}

func (b *fakeBus) PublishLogin(ctx context.Context, user models.User) error {
	b.logins = append(b.logins, user)
	return nil
}

func (b *fakeBus) PublishLogout(ctx context.Context) error {
	b.logouts++
	return nil
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(memory.New(cache.Options{}), zap.NewNop(), time.Hour)
}

var testUser = models.User{ID: "u-1", Name: "Asha", Email: "asha@navgurukul.org", Role: models.RoleStudent}

// ── Rehydration ─────────────────────────────────────────────────────────────

func TestRehydrate_CookieSessionWins(t *testing.T) {
	user := testUser
	gw := &fakeGateway{currentUser: &user}
	m := session.NewManager(gw, newStore(t), &fakeBus{}, zap.NewNop())

	m.Rehydrate(context.Background())

	if m.State() != session.StateAuthenticated {
		t.Fatalf("expected authenticated state, got %s", m.State())
	}
	if got := m.User(); got == nil || got.ID != "u-1" {
		t.Errorf("expected user u-1, got %+v", got)
	}
	if m.Loading() {
		t.Error("loading must settle to false after rehydration")
	}
}

func TestRehydrate_NoCookieNoToken(t *testing.T) {
	gw := &fakeGateway{currentErr: errors.Unauthorized("no session", nil)}
	m := session.NewManager(gw, newStore(t), &fakeBus{}, zap.NewNop())

	m.Rehydrate(context.Background())

	if m.State() != session.StateUnauthenticated {
		t.Errorf("expected unauthenticated state, got %s", m.State())
	}
	if m.User() != nil {
		t.Errorf("expected nil user, got %+v", m.User())
	}
	if m.Loading() {
		t.Error("loading must settle to false even when every recovery step fails")
	}
}

func TestRehydrate_StoredTokenFallback(t *testing.T) {
	user := testUser
	gw := &fakeGateway{whoamiByToken: map[string]*models.User{"tok-123": &user}}
	store := newStore(t)
	ctx := context.Background()
	if err := store.Save(ctx, "tok-123", user); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m := session.NewManager(gw, store, &fakeBus{}, zap.NewNop())
	m.Rehydrate(ctx)

	if m.State() != session.StateAuthenticated {
		t.Fatalf("expected token fallback to authenticate, got %s", m.State())
	}
	if gw.token != "tok-123" {
		t.Errorf("expected stored token installed on the gateway, got %q", gw.token)
	}
}

func TestRehydrate_RejectedTokenIsCleared(t *testing.T) {
	gw := &fakeGateway{whoamiByToken: map[string]*models.User{}}
	store := newStore(t)
	ctx := context.Background()
	if err := store.Save(ctx, "tok-stale", testUser); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m := session.NewManager(gw, store, &fakeBus{}, zap.NewNop())
	m.Rehydrate(ctx)

	if m.State() != session.StateUnauthenticated {
		t.Errorf("expected unauthenticated after token rejection, got %s", m.State())
	}
	if gw.token != "" {
		t.Errorf("rejected token must be cleared from the gateway, got %q", gw.token)
	}
	if store.Token(ctx) != "" {
		t.Error("rejected token must be cleared from the store")
	}
}

// ── Login and logout ────────────────────────────────────────────────────────

func TestLogin_PersistsAndAnnounces(t *testing.T) {
	user := testUser
	gw := &fakeGateway{loginResp: &api.AuthResponse{Token: "tok-xyz", User: user}}
	store := newStore(t)
	bus := &fakeBus{}
	m := session.NewManager(gw, store, bus, zap.NewNop())
	ctx := context.Background()

	got, err := m.Login(ctx, "asha@navgurukul.org", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != "u-1" {
		t.Errorf("expected user u-1, got %s", got.ID)
	}
	if m.State() != session.StateAuthenticated {
		t.Errorf("expected authenticated state, got %s", m.State())
	}
	if store.Token(ctx) != "tok-xyz" {
		t.Errorf("expected token persisted, got %q", store.Token(ctx))
	}
	if len(bus.logins) != 1 || bus.logins[0].ID != "u-1" {
		t.Errorf("expected one login announcement for u-1, got %+v", bus.logins)
	}
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	gw := &fakeGateway{loginErr: errors.Unauthorized("bad credentials", nil)}
	bus := &fakeBus{}
	m := session.NewManager(gw, newStore(t), bus, zap.NewNop())

	if _, err := m.Login(context.Background(), "asha@navgurukul.org", "wrong"); err == nil {
		t.Fatal("expected login error")
	}
	if m.State() != session.StateUnauthenticated {
		t.Errorf("failed login must not change state, got %s", m.State())
	}
	if len(bus.logins) != 0 {
		t.Error("failed login must not be announced")
	}
}

func TestLogout_TearsDownEvenWhenCallFails(t *testing.T) {
	user := testUser
	gw := &fakeGateway{
		loginResp: &api.AuthResponse{Token: "tok-xyz", User: user},
		logoutErr: errors.Unavailable("backend down", nil),
	}
	store := newStore(t)
	bus := &fakeBus{}
	m := session.NewManager(gw, store, bus, zap.NewNop())
	ctx := context.Background()

	if _, err := m.Login(ctx, "asha@navgurukul.org", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Logout(ctx)

	if !gw.logoutCalled {
		t.Error("expected the revocation call to be attempted")
	}
	if m.User() != nil || m.State() != session.StateUnauthenticated {
		t.Error("local session must be torn down even when the call fails")
	}
	if store.Token(ctx) != "" {
		t.Error("stored credentials must be cleared on logout")
	}
	if bus.logouts != 1 {
		t.Errorf("expected one logout announcement, got %d", bus.logouts)
	}
}

// ── Profile updates ─────────────────────────────────────────────────────────

func TestUpdateUser_ReplacesSnapshot(t *testing.T) {
	user := testUser
	renamed := testUser
	renamed.Name = "Asha K"
	gw := &fakeGateway{
		loginResp:   &api.AuthResponse{Token: "tok-xyz", User: user},
		updatedUser: &renamed,
	}
	m := session.NewManager(gw, newStore(t), &fakeBus{}, zap.NewNop())
	ctx := context.Background()

	if _, err := m.Login(ctx, "asha@navgurukul.org", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	got, err := m.UpdateUser(ctx, map[string]interface{}{"name": "Asha K"})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if got.Name != "Asha K" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
	if m.User().Name != "Asha K" {
		t.Error("manager must hold the replaced snapshot")
	}
}

func TestUpdateUser_RequiresSession(t *testing.T) {
	m := session.NewManager(&fakeGateway{}, newStore(t), &fakeBus{}, zap.NewNop())

	_, err := m.UpdateUser(context.Background(), map[string]interface{}{"name": "x"})
	if err == nil {
		t.Fatal("expected error without an authenticated session")
	}
	domainErr, ok := err.(*errors.DomainError)
	if !ok || domainErr.Type != errors.ErrTypeUnauthorized {
		t.Errorf("expected unauthorized domain error, got %v", err)
	}
}

// ── Remote events ───────────────────────────────────────────────────────────

func TestApplyRemoteLogin(t *testing.T) {
	m := session.NewManager(&fakeGateway{}, newStore(t), &fakeBus{}, zap.NewNop())

	m.ApplyRemoteLogin(testUser)

	if m.State() != session.StateAuthenticated {
		t.Errorf("expected authenticated state, got %s", m.State())
	}
	if !m.IsStudent() {
		t.Error("expected student role check to pass")
	}
}

func TestApplyRemoteLogout(t *testing.T) {
	m := session.NewManager(&fakeGateway{}, newStore(t), &fakeBus{}, zap.NewNop())
	m.ApplyRemoteLogin(testUser)

	m.ApplyRemoteLogout(context.Background())

	if m.User() != nil || m.State() != session.StateUnauthenticated {
		t.Error("remote logout must clear the local session")
	}
}
