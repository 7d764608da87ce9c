package role

import (
	"context"
	"fmt"

	"github.com/clockport/clockport-backend-go/internal/domain/role"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type RoleServiceImpl struct {
	db *database.DB
	role.RoleRepository
}

func NewRoleService(db *database.DB, roleRepository role.RoleRepository) role.RoleService {
	return &RoleServiceImpl{
		db:             db,
		RoleRepository: roleRepository,
	}
}

func claimsFromContext(ctx context.Context) (orgID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	orgID, _ = claims["org_id"].(string)
	userID, _ = claims["user_id"].(string)
	return orgID, userID, nil
}

// ListRoles implements role.RoleService. An org that has never defined any
// roles gets a default "Base" role on first read.
func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	roles, err := s.RoleRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	if len(roles) == 0 {
		created, err := s.RoleRepository.Create(ctx, orgID, "Base")
		if err != nil {
			return nil, fmt.Errorf("failed to create default role: %w", err)
		}
		roles = []role.Role{created}
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, ro := range roles {
		responses = append(responses, role.ToResponse(ro))
	}
	return responses, nil
}

// CreateRole implements role.RoleService.
func (s *RoleServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.RoleRepository.Create(ctx, orgID, req.Name)
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}

	return role.ToResponse(created), nil
}

// UpdateRole implements role.RoleService.
func (s *RoleServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	ro, err := s.RoleRepository.GetByID(ctx, req.RoleID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return role.ErrRoleNotFound
		}
		return fmt.Errorf("failed to get role: %w", err)
	}
	if ro.OrgID != orgID {
		return role.ErrRoleNotFound
	}

	if req.Name != nil {
		ro.Name = *req.Name
	}
	if req.Position != nil {
		ro.Position = *req.Position
	}
	if err := s.RoleRepository.Update(ctx, ro); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	return nil
}

// DeleteRole implements role.RoleService.
func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.RoleRepository.Delete(ctx, id, orgID); err != nil {
		if err == pgx.ErrNoRows {
			return role.ErrRoleNotFound
		}
		return fmt.Errorf("failed to delete role: %w", err)
	}

	return nil
}
