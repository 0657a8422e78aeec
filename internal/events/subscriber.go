package events

import (
	"context"
	"encoding/json"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/session"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Subscriber feeds remote session events into the local session manager and
// fans report announcements out to a registered handler.
type Subscriber struct {
	logger   *zap.Logger
	conn     *nats.Conn
	manager  *session.Manager
	onReport func(reportID string)
	subs     []*nats.Subscription
}

func NewSubscriber(logger *zap.Logger, conn *nats.Conn, manager *session.Manager) *Subscriber {
	return &Subscriber{
		logger:  logger,
		conn:    conn,
		manager: manager,
	}
}

func (s *Subscriber) Start() error {
	loginSub, err := s.conn.Subscribe(LoginSubject, s.handleLogin)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, loginSub)

	logoutSub, err := s.conn.Subscribe(LogoutSubject, s.handleLogout)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, logoutSub)

	reportSub, err := s.conn.Subscribe(ReportSubject, s.handleReport)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, reportSub)

	s.logger.Info("registered event subscriptions")
	return nil
}

// OnReportSubmitted registers the handler invoked when another instance
// publishes a scam report; typically the feed screen's refetch. Register
// before Start.
func (s *Subscriber) OnReportSubmitted(fn func(reportID string)) {
	s.onReport = fn
}

func (s *Subscriber) Stop() {
	for _, sub := range s.subs {
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Warn("failed to unsubscribe", zap.Error(err))
		}
	}
	s.subs = nil
}

func (s *Subscriber) handleLogin(msg *nats.Msg) {
	_, span := tracer.Start(context.Background(), "handleLogin")
	defer span.End()

	var event SessionEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		s.logger.Error("failed to decode session event",
			zap.String("subject", msg.Subject),
			zap.Error(err))
		return
	}
	if event.User == nil {
		s.logger.Warn("login event without user payload",
			zap.String("event_id", event.EventID))
		return
	}

	s.manager.ApplyRemoteLogin(*event.User)
}

func (s *Subscriber) handleLogout(msg *nats.Msg) {
	ctx, span := tracer.Start(context.Background(), "handleLogout")
	defer span.End()

	s.manager.ApplyRemoteLogout(ctx)
}

func (s *Subscriber) handleReport(msg *nats.Msg) {
	if s.onReport == nil {
		return
	}

	var event ReportEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		s.logger.Error("failed to decode report event",
			zap.String("subject", msg.Subject),
			zap.Error(err))
		return
	}
	s.onReport(event.ReportID)
}
