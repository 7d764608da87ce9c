package leave

import (
	"context"
)

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListMyLeaves(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	ListOrgLeaves(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	ApproveLeave(ctx context.Context, requestID string) error
	RejectLeave(ctx context.Context, req RejectLeaveRequest) error
	CancelLeave(ctx context.Context, requestID string) error
}
