package postgresql

import (
	"context"
	"fmt"

	"github.com/clockport/clockport-backend-go/internal/domain/leave"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, org_id, user_id, type, start_date, end_date, reason, status,
		reviewed_by, reviewed_at, created_at, updated_at`

func scanLeave(row interface{ Scan(dest ...any) error }) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID,
		&l.OrgID,
		&l.UserID,
		&l.Type,
		&l.StartDate,
		&l.EndDate,
		&l.Reason,
		&l.Status,
		&l.ReviewedBy,
		&l.ReviewedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (org_id, user_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveColumns

	return scanLeave(q.QueryRow(ctx, query,
		req.OrgID,
		req.UserID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	))
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`
	return scanLeave(q.QueryRow(ctx, query, id))
}

func (r *leaveRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

func leaveFilterClauses(filter leave.ListFilter, args []any) (string, []any) {
	clause := ""
	if filter.Status != "" {
		args = append(args, filter.Status)
		clause += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Year != 0 {
		args = append(args, fmt.Sprintf("%04d-01-01", filter.Year), fmt.Sprintf("%04d-12-31", filter.Year))
		clause += fmt.Sprintf(" AND end_date >= $%d AND start_date <= $%d", len(args)-1, len(args))
	}
	return clause, args
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	args := []any{userID}
	clause, args := leaveFilterClauses(filter, args)
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE user_id = $1` + clause + ` ORDER BY start_date DESC`
	return r.list(ctx, query, args...)
}

// ListByOrg implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByOrg(ctx context.Context, orgID string, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	args := []any{orgID}
	clause, args := leaveFilterClauses(filter, args)
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE org_id = $1` + clause + ` ORDER BY start_date DESC`
	return r.list(ctx, query, args...)
}

// ListApprovedByOrgDateRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedByOrgDateRange(ctx context.Context, orgID, from, to string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests
		WHERE org_id = $1 AND status = $2 AND end_date >= $3 AND start_date <= $4
		ORDER BY start_date`
	return r.list(ctx, query, orgID, leave.StatusApproved, from, to)
}

// ExistsOverlapping implements leave.LeaveRepository. Only pending and
// approved requests block a new one.
func (r *leaveRepositoryImpl) ExistsOverlapping(ctx context.Context, userID, startDate, endDate string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(
		SELECT 1 FROM leave_requests
		WHERE user_id = $1 AND status IN ($2, $3) AND end_date >= $4 AND start_date <= $5)`
	err := q.QueryRow(ctx, query, userID, leave.StatusPending, leave.StatusApproved, startDate, endDate).Scan(&exists)
	return exists, err
}

// SetStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SetStatus(ctx context.Context, id string, status leave.Status, reviewerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = CASE WHEN $2 IS NULL THEN reviewed_at ELSE NOW() END, updated_at = NOW()
		WHERE id = $3`
	_, err := q.Exec(ctx, query, status, reviewerID, id)
	return err
}
