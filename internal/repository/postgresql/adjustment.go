package postgresql

import (
	"context"
	"fmt"

	"github.com/clockport/clockport-backend-go/internal/domain/adjustment"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

const adjustmentColumns = `id, org_id, user_id, date, clock_in, clock_out, break_start, break_end,
		reason, status, prior_clock_in, prior_clock_out, reviewed_by, reviewed_at, created_at, updated_at`

func scanAdjustment(row interface{ Scan(dest ...any) error }) (adjustment.Adjustment, error) {
	var a adjustment.Adjustment
	err := row.Scan(
		&a.ID,
		&a.OrgID,
		&a.UserID,
		&a.Date,
		&a.ClockIn,
		&a.ClockOut,
		&a.BreakStart,
		&a.BreakEnd,
		&a.Reason,
		&a.Status,
		&a.PriorClockIn,
		&a.PriorClockOut,
		&a.ReviewedBy,
		&a.ReviewedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustments (org_id, user_id, date, clock_in, clock_out, break_start, break_end,
			reason, status, prior_clock_in, prior_clock_out)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + adjustmentColumns

	return scanAdjustment(q.QueryRow(ctx, query,
		adj.OrgID,
		adj.UserID,
		adj.Date,
		adj.ClockIn,
		adj.ClockOut,
		adj.BreakStart,
		adj.BreakEnd,
		adj.Reason,
		adj.Status,
		adj.PriorClockIn,
		adj.PriorClockOut,
	))
}

// GetByID implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE id = $1`
	return scanAdjustment(q.QueryRow(ctx, query, id))
}

func (r *adjustmentRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adjustments []adjustment.Adjustment
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}
	return adjustments, rows.Err()
}

func filterClauses(filter adjustment.ListFilter, args []any) (string, []any) {
	clause := ""
	if filter.Status != "" {
		args = append(args, filter.Status)
		clause += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.From != "" {
		args = append(args, filter.From)
		clause += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		clause += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	return clause, args
}

// ListByUser implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ListByUser(ctx context.Context, userID string, filter adjustment.ListFilter) ([]adjustment.Adjustment, error) {
	args := []any{userID}
	clause, args := filterClauses(filter, args)
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE user_id = $1` + clause + ` ORDER BY date DESC, created_at DESC`
	return r.list(ctx, query, args...)
}

// ListByOrg implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ListByOrg(ctx context.Context, orgID string, filter adjustment.ListFilter) ([]adjustment.Adjustment, error) {
	args := []any{orgID}
	clause, args := filterClauses(filter, args)
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE org_id = $1` + clause + ` ORDER BY date DESC, created_at DESC`
	return r.list(ctx, query, args...)
}

// ListApprovedByOrgDateRange implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ListApprovedByOrgDateRange(ctx context.Context, orgID, from, to string) ([]adjustment.Adjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments
		WHERE org_id = $1 AND status = $2 AND date >= $3 AND date <= $4
		ORDER BY date, created_at`
	return r.list(ctx, query, orgID, adjustment.StatusApproved, from, to)
}

// ExistsPendingForDay implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ExistsPendingForDay(ctx context.Context, userID, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM adjustments WHERE user_id = $1 AND date = $2 AND status = $3)`
	err := q.QueryRow(ctx, query, userID, date, adjustment.StatusPending).Scan(&exists)
	return exists, err
}

// SetReviewed implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) SetReviewed(ctx context.Context, id string, status adjustment.Status, reviewerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE adjustments SET status = $1, reviewed_by = $2, reviewed_at = NOW(), updated_at = NOW() WHERE id = $3`
	_, err := q.Exec(ctx, query, status, reviewerID, id)
	return err
}
