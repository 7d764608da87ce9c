package notification

import (
	"context"
)

type NotificationService interface {
	ListMyNotifications(ctx context.Context, limit int) ([]NotificationResponse, error)
	CountUnread(ctx context.Context) (UnreadCountResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error

	// Notify is called by other services when something worth surfacing
	// happens. It never fails the caller's operation.
	Notify(ctx context.Context, n Notification)
	// NotifyOrgAdmins fans one notification out to every admin of the org.
	NotifyOrgAdmins(ctx context.Context, orgID string, n Notification)
}
