package screens

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/notifications"

	"go.uber.org/zap"
)

// NotificationsScreen lists the inbox with a per-type filter and resolves
// each entry to its deep-link route for the session user's role.
type NotificationsScreen struct {
	client *api.Client
	role   models.Role

	List *ListController[models.Notification]
}

func NewNotificationsScreen(client *api.Client, role models.Role, logger *zap.Logger) *NotificationsScreen {
	fetch := func(ctx context.Context, filter Filter) ([]models.Notification, error) {
		return client.ListNotifications(ctx, api.NotificationFilter{
			Type:       models.NotificationType(filter.Status),
			UnreadOnly: filter.Search == "unread",
		})
	}
	return &NotificationsScreen{
		client: client,
		role:   role,
		List:   NewListController[models.Notification]("notifications", FilterServer, fetch, nil, logger),
	}
}

// Resolve returns the route opening a notification should navigate to.
func (s *NotificationsScreen) Resolve(n models.Notification) string {
	return notifications.ResolveLink(n, s.role)
}

func (s *NotificationsScreen) MarkRead(ctx context.Context, id string) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		return s.client.MarkNotificationRead(ctx, id)
	})
}

func (s *NotificationsScreen) MarkAllRead(ctx context.Context) error {
	return s.List.Mutate(ctx, func(ctx context.Context) error {
		return s.client.MarkAllNotificationsRead(ctx)
	})
}
