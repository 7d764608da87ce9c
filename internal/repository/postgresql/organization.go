package postgresql

import (
	"context"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/organization"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

const orgColumns = `id, name, vat_id, code, subscription_status, trial_ends_at, created_at, updated_at`

func scanOrganization(row interface{ Scan(dest ...any) error }) (organization.Organization, error) {
	var o organization.Organization
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.VatID,
		&o.Code,
		&o.SubscriptionStatus,
		&o.TrialEndsAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// GetByID implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orgColumns + ` FROM organizations WHERE id = $1`
	return scanOrganization(q.QueryRow(ctx, query, id))
}

// GetByCode implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) GetByCode(ctx context.Context, code string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orgColumns + ` FROM organizations WHERE code = $1`
	return scanOrganization(q.QueryRow(ctx, query, code))
}

// Create implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) Create(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (name, vat_id, code, subscription_status, trial_ends_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orgColumns

	return scanOrganization(q.QueryRow(ctx, query,
		org.Name,
		org.VatID,
		org.Code,
		org.SubscriptionStatus,
		org.TrialEndsAt,
	))
}

// Update implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) Update(ctx context.Context, org organization.Organization) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE organizations SET name = $1, vat_id = $2, updated_at = NOW() WHERE id = $3`
	_, err := q.Exec(ctx, query, org.Name, org.VatID, org.ID)
	return err
}

// UpdateCode implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) UpdateCode(ctx context.Context, id, code string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE organizations SET code = $1, updated_at = NOW() WHERE id = $2`, code, id)
	return err
}

// UpdateSubscription implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) UpdateSubscription(ctx context.Context, id string, status organization.SubscriptionStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE organizations SET subscription_status = $1, updated_at = NOW() WHERE id = $2`
	_, err := q.Exec(ctx, query, status, id)
	return err
}

// ExpireLapsedTrials implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) ExpireLapsedTrials(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE organizations SET subscription_status = $1, updated_at = NOW()
		WHERE subscription_status = $2 AND trial_ends_at IS NOT NULL AND trial_ends_at < $3`

	tag, err := q.Exec(ctx, query, organization.SubscriptionExpired, organization.SubscriptionTrial, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ExistsByCode implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM organizations WHERE code = $1)`, code).Scan(&exists)
	return exists, err
}
