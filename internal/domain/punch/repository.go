package punch

import (
	"context"
)

type PunchRepository interface {
	Create(ctx context.Context, event PunchEvent) (PunchEvent, error)
	ListByUserDate(ctx context.Context, userID, date string) ([]PunchEvent, error)
	ListByUserDateRange(ctx context.Context, userID, from, to string) ([]PunchEvent, error)
	ListByOrgDateRange(ctx context.Context, orgID, from, to string) ([]PunchEvent, error)
	DeleteByUserDate(ctx context.Context, userID, date string) error
}
