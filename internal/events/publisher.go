// Package events is the session pub/sub channel: login/logout announcements
// travel over NATS so every running instance of the dashboard client reflects
// an auth change without its own network round trip.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/config"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/errors"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("placement-dashboard/events")

const (
	LoginSubject  = "auth.login"
	LogoutSubject = "auth.logout"

	ReportSubject = "scamreports.submitted"
)

// SessionEvent is the payload on both auth subjects. User is present only on
// login.
type SessionEvent struct {
	EventID string       `json:"eventId"`
	User    *models.User `json:"user,omitempty"`
	At      time.Time    `json:"at"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger, conn *nats.Conn) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Connect dials NATS with the client's reconnect policy.
func Connect(config *config.Config) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Timeout(config.NATSConnTimeout),
		nats.Name("placement-dashboard"),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(config.NATSURL, opts...)
	if err != nil {
		return nil, errors.Internal("connecting to NATS", err)
	}
	return conn, nil
}

func (p *Publisher) PublishLogin(ctx context.Context, user models.User) error {
	_, span := tracer.Start(ctx, "PublishLogin")
	defer span.End()

	event := SessionEvent{
		EventID: uuid.NewString(),
		User:    &user,
		At:      time.Now().UTC(),
	}
	return p.publish(LoginSubject, event)
}

func (p *Publisher) PublishLogout(ctx context.Context) error {
	_, span := tracer.Start(ctx, "PublishLogout")
	defer span.End()

	event := SessionEvent{
		EventID: uuid.NewString(),
		At:      time.Now().UTC(),
	}
	return p.publish(LogoutSubject, event)
}

// ReportEvent announces a new community scam report so feeds in other running
// instances refetch.
type ReportEvent struct {
	EventID  string    `json:"eventId"`
	ReportID string    `json:"reportId"`
	At       time.Time `json:"at"`
}

func (p *Publisher) PublishReportSubmitted(ctx context.Context, reportID string) error {
	_, span := tracer.Start(ctx, "PublishReportSubmitted")
	defer span.End()

	event := ReportEvent{
		EventID:  uuid.NewString(),
		ReportID: reportID,
		At:       time.Now().UTC(),
	}
	return p.publish(ReportSubject, event)
}

func (p *Publisher) publish(subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Internal("marshaling event", err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("subject", subject),
			zap.Error(err))
		return errors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published event", zap.String("subject", subject))
	return nil
}
