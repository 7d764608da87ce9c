package announcement

import (
	"context"
)

type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	ListAnnouncements(ctx context.Context) ([]AnnouncementResponse, error)
	UpdateAnnouncement(ctx context.Context, req UpdateAnnouncementRequest) error
	DeleteAnnouncement(ctx context.Context, id string) error
}
