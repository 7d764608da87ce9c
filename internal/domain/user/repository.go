package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByOrg(ctx context.Context, orgID string) ([]User, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateContract(ctx context.Context, id string, contractType ContractType, endDate *string) error
	SetVerificationCode(ctx context.Context, id string, code *string) error
	SetResetCode(ctx context.Context, id string, code *string) error
	MarkEmailVerified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, orgID string) error
}
