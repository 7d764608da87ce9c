package role

import (
	"context"
)

type RoleService interface {
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) error
	DeleteRole(ctx context.Context, id string) error
}
