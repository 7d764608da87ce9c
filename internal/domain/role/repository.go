package role

import (
	"context"
)

type RoleRepository interface {
	ListByOrg(ctx context.Context, orgID string) ([]Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	Create(ctx context.Context, orgID, name string) (Role, error)
	Update(ctx context.Context, r Role) error
	Delete(ctx context.Context, id, orgID string) error
}
