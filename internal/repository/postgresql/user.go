package postgresql

import (
	"context"

	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, org_id, name, email, tax_id, role, password_hash, status,
		email_verified, verification_code, reset_code, contract_type, contract_end_date,
		created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.OrgID,
		&u.Name,
		&u.Email,
		&u.TaxID,
		&u.Role,
		&u.PasswordHash,
		&u.Status,
		&u.EmailVerified,
		&u.VerificationCode,
		&u.ResetCode,
		&u.ContractType,
		&u.ContractEndDate,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.QueryRow(ctx, query, email))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (org_id, name, email, tax_id, role, password_hash, status,
			email_verified, verification_code, contract_type, contract_end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		newUser.OrgID,
		newUser.Name,
		newUser.Email,
		newUser.TaxID,
		newUser.Role,
		newUser.PasswordHash,
		newUser.Status,
		newUser.EmailVerified,
		newUser.VerificationCode,
		newUser.ContractType,
		newUser.ContractEndDate,
	))
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// ListByOrg implements user.UserRepository.
func (r *userRepositoryImpl) ListByOrg(ctx context.Context, orgID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE org_id = $1 ORDER BY name, created_at`
	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateStatus implements user.UserRepository.
func (r *userRepositoryImpl) UpdateStatus(ctx context.Context, id string, status user.Status) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	return err
}

// UpdateContract implements user.UserRepository.
func (r *userRepositoryImpl) UpdateContract(ctx context.Context, id string, contractType user.ContractType, endDate *string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET contract_type = $1, contract_end_date = $2, updated_at = NOW() WHERE id = $3`
	_, err := q.Exec(ctx, query, contractType, endDate, id)
	return err
}

// SetVerificationCode implements user.UserRepository.
func (r *userRepositoryImpl) SetVerificationCode(ctx context.Context, id string, code *string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET verification_code = $1, updated_at = NOW() WHERE id = $2`, code, id)
	return err
}

// SetResetCode implements user.UserRepository.
func (r *userRepositoryImpl) SetResetCode(ctx context.Context, id string, code *string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET reset_code = $1, updated_at = NOW() WHERE id = $2`, code, id)
	return err
}

// MarkEmailVerified implements user.UserRepository.
func (r *userRepositoryImpl) MarkEmailVerified(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET email_verified = TRUE, verification_code = NULL, updated_at = NOW() WHERE id = $1`
	_, err := q.Exec(ctx, query, id)
	return err
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string, orgID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1 AND org_id = $2`, id, orgID)
	return err
}
