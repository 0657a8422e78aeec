package session

import (
	"context"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"

	"go.uber.org/zap"
)

// The two persisted credential keys: the bearer token and the user snapshot.
const (
	tokenKey = "session:token"
	userKey  = "session:user"
)

// Store persists the session credential and user snapshot between runs. It is
// the local-storage analog, backed by the cache layer.
type Store struct {
	cache  cache.Cache
	logger *zap.Logger
	ttl    time.Duration
}

func NewStore(c cache.Cache, logger *zap.Logger, ttl time.Duration) *Store {
	return &Store{cache: c, logger: logger, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, token string, user models.User) error {
	if err := s.cache.Set(ctx, tokenKey, token, s.ttl); err != nil {
		return err
	}
	return s.cache.Set(ctx, userKey, user, s.ttl)
}

// Token returns the stored bearer token, or "" when none is kept.
func (s *Store) Token(ctx context.Context) string {
	var token string
	err := s.cache.Get(ctx, tokenKey, &token)
	if err == cache.ErrNotFound {
		return ""
	}
	if err != nil {
		s.logger.Warn("failed to read stored token", zap.Error(err))
		return ""
	}
	return token
}

// User returns the stored user snapshot, or nil when none is kept.
func (s *Store) User(ctx context.Context) *models.User {
	var user models.User
	err := s.cache.Get(ctx, userKey, &user)
	if err == cache.ErrNotFound {
		return nil
	}
	if err != nil {
		s.logger.Warn("failed to read stored user", zap.Error(err))
		return nil
	}
	return &user
}

// Clear drops both credential keys.
func (s *Store) Clear(ctx context.Context) {
	if err := s.cache.Delete(ctx, tokenKey); err != nil {
		s.logger.Warn("failed to clear stored token", zap.Error(err))
	}
	if err := s.cache.Delete(ctx, userKey); err != nil {
		s.logger.Warn("failed to clear stored user", zap.Error(err))
	}
}
