package organization

import (
	"context"
	"time"
)

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (Organization, error)
	GetByCode(ctx context.Context, code string) (Organization, error)
	Create(ctx context.Context, org Organization) (Organization, error)
	Update(ctx context.Context, org Organization) error
	UpdateCode(ctx context.Context, id, code string) error
	UpdateSubscription(ctx context.Context, id string, status SubscriptionStatus) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExpireLapsedTrials(ctx context.Context, now time.Time) (int64, error)
}
