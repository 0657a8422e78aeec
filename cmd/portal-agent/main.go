// portal-agent is the headless placement-dashboard client: it rehydrates the
// session, subscribes to cross-instance auth events, and keeps the
// notification badges fresh.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache/memory"
	rediscache "github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/cache/redis"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/config"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/events"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/notifications"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/session"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

func newCache(cfg *config.Config) cache.Cache {
	opts := cache.Options{
		RedisURL:      cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		DefaultTTL:    cfg.CacheTTL,
	}
	if cfg.RedisAddr == "" {
		return memory.New(opts)
	}
	return rediscache.New(opts)
}

func newNATSConnection(cfg *config.Config) (*nats.Conn, error) {
	return events.Connect(cfg)
}

func newCredentialStore(c cache.Cache, logger *zap.Logger, cfg *config.Config) *session.Store {
	return session.NewStore(c, logger, cfg.CacheTTL)
}

func newSessionManager(client *api.Client, store *session.Store, publisher *events.Publisher, logger *zap.Logger) *session.Manager {
	return session.NewManager(client, store, publisher, logger)
}

type pollers struct {
	navbar  *notifications.BadgePoller
	sidebar *notifications.BadgePoller
}

func newPollers(client *api.Client, cfg *config.Config, logger *zap.Logger) *pollers {
	return &pollers{
		navbar:  notifications.NewBadgePoller("navbar", cfg.NavbarPollInterval, client.UnreadCount, logger),
		sidebar: notifications.NewBadgePoller("sidebar", cfg.SidebarPollInterval, client.UnreadCount, logger),
	}
}

func run(lc fx.Lifecycle, cfg *config.Config, manager *session.Manager, subscriber *events.Subscriber, p *pollers, logger *zap.Logger) {
	var shutdownTracer func()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.OTELCollectorURL != "" {
				shutdown, err := telemetry.InitTracer(ctx, "placement-dashboard", cfg.OTELCollectorURL)
				if err != nil {
					return err
				}
				shutdownTracer = shutdown
			}

			manager.Rehydrate(ctx)
			if err := subscriber.Start(); err != nil {
				return err
			}
			if err := p.navbar.Start(ctx); err != nil {
				return err
			}
			if err := p.sidebar.Start(ctx); err != nil {
				return err
			}
			logger.Info("portal agent started",
				zap.String("session_state", string(manager.State())))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.sidebar.Stop()
			p.navbar.Stop()
			subscriber.Stop()
			if shutdownTracer != nil {
				shutdownTracer()
			}
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newCache,
			newNATSConnection,
			api.NewClient,
			newCredentialStore,
			events.NewPublisher,
			newSessionManager,
			events.NewSubscriber,
			newPollers,
		),
		fx.Invoke(run),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
