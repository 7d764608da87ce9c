package leave

import (
	"context"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]LeaveRequest, error)
	ListByOrg(ctx context.Context, orgID string, filter ListFilter) ([]LeaveRequest, error)
	ListApprovedByOrgDateRange(ctx context.Context, orgID, from, to string) ([]LeaveRequest, error)
	ExistsOverlapping(ctx context.Context, userID, startDate, endDate string) (bool, error)
	SetStatus(ctx context.Context, id string, status Status, reviewerID *string) error
}
