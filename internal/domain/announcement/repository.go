package announcement

import (
	"context"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, ann Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	ListByOrg(ctx context.Context, orgID string) ([]Announcement, error)
	Update(ctx context.Context, ann Announcement) error
	Delete(ctx context.Context, id, orgID string) error
}
