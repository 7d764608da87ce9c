package adjustment

import (
	"context"
)

type AdjustmentService interface {
	CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	ListMyAdjustments(ctx context.Context, filter ListFilter) ([]AdjustmentResponse, error)
	ListOrgAdjustments(ctx context.Context, filter ListFilter) ([]AdjustmentResponse, error)
	ApproveAdjustment(ctx context.Context, adjustmentID string) error
	RejectAdjustment(ctx context.Context, req RejectAdjustmentRequest) error
}
