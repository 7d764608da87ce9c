package announcement

import (
	"context"
	"fmt"

	"github.com/clockport/clockport-backend-go/internal/domain/announcement"
	"github.com/clockport/clockport-backend-go/internal/domain/notification"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type AnnouncementServiceImpl struct {
	db *database.DB
	announcement.AnnouncementRepository
	user.UserRepository
	notificationService notification.NotificationService
}

func NewAnnouncementService(db *database.DB, announcementRepository announcement.AnnouncementRepository, userRepository user.UserRepository, notificationService notification.NotificationService) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		db:                     db,
		AnnouncementRepository: announcementRepository,
		UserRepository:         userRepository,
		notificationService:    notificationService,
	}
}

func claimsFromContext(ctx context.Context) (orgID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	orgID, _ = claims["org_id"].(string)
	userID, _ = claims["user_id"].(string)
	return orgID, userID, nil
}

// CreateAnnouncement implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) CreateAnnouncement(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	orgID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		OrgID:    orgID,
		AuthorID: userID,
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	// Fan out to everyone in the org except the author.
	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err == nil {
		for _, u := range users {
			if u.ID == userID || u.Status != user.StatusActive {
				continue
			}
			s.notificationService.Notify(ctx, notification.Notification{
				OrgID:  orgID,
				UserID: u.ID,
				Type:   notification.TypeAnnouncement,
				Title:  created.Title,
				Body:   created.Body,
				RefID:  &created.ID,
			})
		}
	}

	return announcement.ToResponse(created), nil
}

// ListAnnouncements implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) ListAnnouncements(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	announcements, err := s.AnnouncementRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		resp := announcement.ToResponse(a)
		resp.AuthorName = names[a.AuthorID]
		responses = append(responses, resp)
	}
	return responses, nil
}

// UpdateAnnouncement implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) UpdateAnnouncement(ctx context.Context, req announcement.UpdateAnnouncementRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	ann, err := s.AnnouncementRepository.GetByID(ctx, req.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return announcement.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to get announcement: %w", err)
	}
	if ann.OrgID != orgID {
		return announcement.ErrAnnouncementNotFound
	}

	ann.Title = req.Title
	ann.Body = req.Body
	if err := s.AnnouncementRepository.Update(ctx, ann); err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}

	return nil
}

// DeleteAnnouncement implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) DeleteAnnouncement(ctx context.Context, id string) error {
	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.AnnouncementRepository.Delete(ctx, id, orgID); err != nil {
		if err == pgx.ErrNoRows {
			return announcement.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	return nil
}
