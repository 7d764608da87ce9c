package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clockport/clockport-backend-go/internal/domain/notification"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/clockport/clockport-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
)

const defaultListLimit = 50

type NotificationServiceImpl struct {
	db *database.DB
	notification.NotificationRepository
	user.UserRepository
	hub    *sse.Hub
	logger *slog.Logger
}

func NewNotificationService(db *database.DB, notificationRepository notification.NotificationRepository, userRepository user.UserRepository, hub *sse.Hub, logger *slog.Logger) notification.NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationServiceImpl{
		db:                     db,
		NotificationRepository: notificationRepository,
		UserRepository:         userRepository,
		hub:                    hub,
		logger:                 logger,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	userID, _ := claims["user_id"].(string)
	return userID, nil
}

// ListMyNotifications implements notification.NotificationService.
func (s *NotificationServiceImpl) ListMyNotifications(ctx context.Context, limit int) ([]notification.NotificationResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}

	notifications, err := s.NotificationRepository.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.ToResponse(n))
	}
	return responses, nil
}

// CountUnread implements notification.NotificationService.
func (s *NotificationServiceImpl) CountUnread(ctx context.Context) (notification.UnreadCountResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return notification.UnreadCountResponse{}, err
	}

	count, err := s.NotificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return notification.UnreadCountResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return notification.UnreadCountResponse{Count: count}, nil
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.NotificationRepository.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.NotificationRepository.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// Notify implements notification.NotificationService. Delivery is best
// effort: a failed insert is logged, never propagated to the caller.
func (s *NotificationServiceImpl) Notify(ctx context.Context, n notification.Notification) {
	created, err := s.NotificationRepository.Create(ctx, n)
	if err != nil {
		s.logger.Warn("failed to create notification",
			slog.String("type", string(n.Type)),
			slog.String("user_id", n.UserID),
			slog.Any("error", err),
		)
		return
	}

	s.hub.Publish(created.UserID, sse.Event{
		UserID: created.UserID,
		Event:  "notification",
		Data:   notification.ToResponse(created),
	})
}

// NotifyOrgAdmins implements notification.NotificationService.
func (s *NotificationServiceImpl) NotifyOrgAdmins(ctx context.Context, orgID string, n notification.Notification) {
	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err != nil {
		s.logger.Warn("failed to list org users for notification",
			slog.String("org_id", orgID),
			slog.Any("error", err),
		)
		return
	}

	batch := make([]notification.Notification, 0)
	for _, u := range users {
		if !u.IsAdmin() {
			continue
		}
		admin := n
		admin.UserID = u.ID
		batch = append(batch, admin)
	}
	if len(batch) == 0 {
		return
	}

	if err := s.NotificationRepository.CreateBatch(ctx, batch); err != nil {
		s.logger.Warn("failed to create admin notifications",
			slog.String("org_id", orgID),
			slog.String("type", string(n.Type)),
			slog.Any("error", err),
		)
		return
	}

	// Batch inserts do not return IDs; the event carries the content and
	// subscribers refetch the list.
	for _, admin := range batch {
		s.hub.Publish(admin.UserID, sse.Event{
			UserID: admin.UserID,
			Event:  "notification",
			Data:   notification.ToResponse(admin),
		})
	}
}
