package user

import (
	"context"
)

type UserService interface {
	GetMe(ctx context.Context) (UserResponse, error)
	ListByOrg(ctx context.Context) ([]UserResponse, error)
	ListPendingApproval(ctx context.Context) ([]UserResponse, error)
	ApproveUser(ctx context.Context, userID string) error
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	UpdateContract(ctx context.Context, req UpdateContractRequest) error
	DeleteUser(ctx context.Context, userID string) error
	DeleteMe(ctx context.Context) error
}
