package adjustment

import (
	"context"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, adj Adjustment) (Adjustment, error)
	GetByID(ctx context.Context, id string) (Adjustment, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Adjustment, error)
	ListByOrg(ctx context.Context, orgID string, filter ListFilter) ([]Adjustment, error)
	ListApprovedByOrgDateRange(ctx context.Context, orgID, from, to string) ([]Adjustment, error)
	ExistsPendingForDay(ctx context.Context, userID, date string) (bool, error)
	SetReviewed(ctx context.Context, id string, status Status, reviewerID string) error
}
