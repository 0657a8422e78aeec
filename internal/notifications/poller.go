package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CountFunc fetches the current unread count.
type CountFunc func(ctx context.Context) (int, error)

// BadgePoller keeps one badge counter fresh on a fixed interval. The
// navigation bar and the sidebar each run their own instance with their own
// interval; they do not coordinate.
type BadgePoller struct {
	name     string
	interval time.Duration
	count    CountFunc
	logger   *zap.Logger
	cron     *cron.Cron

	mu     sync.RWMutex
	unread int
}

func NewBadgePoller(name string, interval time.Duration, count CountFunc, logger *zap.Logger) *BadgePoller {
	return &BadgePoller{
		name:     name,
		interval: interval,
		count:    count,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the polling job and fires one immediate refresh so the
// badge is populated without waiting for the first tick.
func (p *BadgePoller) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", p.interval)
	_, err := p.cron.AddFunc(spec, func() {
		p.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	p.cron.Start()
	p.logger.Info("badge poller started",
		zap.String("poller", p.name),
		zap.Duration("interval", p.interval))

	go p.refresh(ctx)
	return nil
}

// Stop cancels the polling job.
func (p *BadgePoller) Stop() {
	p.cron.Stop()
	p.logger.Info("badge poller stopped", zap.String("poller", p.name))
}

// Unread returns the last successfully fetched count.
func (p *BadgePoller) Unread() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unread
}

func (p *BadgePoller) refresh(ctx context.Context) {
	count, err := p.count(ctx)
	if err != nil {
		// Badge refresh failures are non-fatal; the stale count stands.
		p.logger.Warn("badge refresh failed",
			zap.String("poller", p.name),
			zap.Error(err))
		return
	}

	p.mu.Lock()
	p.unread = count
	p.mu.Unlock()

	p.logger.Debug("badge refreshed",
		zap.String("poller", p.name),
		zap.Int("unread", count))
}
