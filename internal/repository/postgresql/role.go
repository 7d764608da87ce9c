package postgresql

import (
	"context"

	"github.com/clockport/clockport-backend-go/internal/domain/role"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

const roleColumns = `id, org_id, name, position, created_at, updated_at`

func scanRole(row interface{ Scan(dest ...any) error }) (role.Role, error) {
	var ro role.Role
	err := row.Scan(
		&ro.ID,
		&ro.OrgID,
		&ro.Name,
		&ro.Position,
		&ro.CreatedAt,
		&ro.UpdatedAt,
	)
	return ro, err
}

// ListByOrg implements role.RoleRepository.
func (r *roleRepositoryImpl) ListByOrg(ctx context.Context, orgID string) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + roleColumns + ` FROM org_roles WHERE org_id = $1 ORDER BY position ASC`
	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, ro)
	}
	return roles, rows.Err()
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + roleColumns + ` FROM org_roles WHERE id = $1`
	return scanRole(q.QueryRow(ctx, query, id))
}

// Create implements role.RoleRepository. New roles are appended after the
// org's current last position.
func (r *roleRepositoryImpl) Create(ctx context.Context, orgID, name string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO org_roles (org_id, name, position)
		VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM org_roles WHERE org_id = $1))
		RETURNING ` + roleColumns

	return scanRole(q.QueryRow(ctx, query, orgID, name))
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, ro role.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE org_roles SET name = $1, position = $2, updated_at = NOW() WHERE id = $3`
	_, err := q.Exec(ctx, query, ro.Name, ro.Position, ro.ID)
	return err
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id, orgID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM org_roles WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
