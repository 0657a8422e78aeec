package api

import (
	"context"
	"net/url"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"
)

type NotificationFilter struct {
	Type       models.NotificationType
	UnreadOnly bool
}

func (c *Client) ListNotifications(ctx context.Context, filter NotificationFilter) ([]models.Notification, error) {
	ctx, span := tracer.Start(ctx, "ListNotifications")
	defer span.End()

	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if filter.UnreadOnly {
		query.Set("unread", "true")
	}

	var notifications []models.Notification
	if err := c.get(ctx, "/notifications", query, &notifications); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(telemetry.Int("notifications.count", len(notifications)))
	return notifications, nil
}

// UnreadCount backs the navigation and sidebar badge pollers.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "UnreadCount")
	defer span.End()

	var resp struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/notifications/unread-count", nil, &resp); err != nil {
		span.RecordError(err)
		return 0, err
	}
	span.SetAttributes(telemetry.Int("unread.count", resp.Count))
	return resp.Count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "MarkNotificationRead")
	defer span.End()
	return c.post(ctx, "/notifications/"+id+"/read", nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "MarkAllNotificationsRead")
	defer span.End()
	return c.post(ctx, "/notifications/read-all", nil, nil)
}

// ── Settings ────────────────────────────────────────────────────────────────

func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {
	ctx, span := tracer.Start(ctx, "GetSettings")
	defer span.End()

	var settings models.Settings
	if err := c.get(ctx, "/settings", nil, &settings); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	ctx, span := tracer.Start(ctx, "UpdateSettings")
	defer span.End()

	var updated models.Settings
	if err := c.put(ctx, "/settings", settings, &updated); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &updated, nil
}
