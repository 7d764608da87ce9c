package postgresql

import (
	"context"

	"github.com/clockport/clockport-backend-go/internal/domain/punch"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/clockport/clockport-backend-go/internal/timeledger"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `id, org_id, user_id, kind, timestamp_ms, date, location, created_at`

func scanPunch(row interface{ Scan(dest ...any) error }) (punch.PunchEvent, error) {
	var p punch.PunchEvent
	var kind string
	err := row.Scan(
		&p.ID,
		&p.OrgID,
		&p.UserID,
		&kind,
		&p.Timestamp,
		&p.Date,
		&p.Location,
		&p.CreatedAt,
	)
	if err != nil {
		return punch.PunchEvent{}, err
	}
	p.Kind = timeledger.KindFromString(kind)
	return p, nil
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (org_id, user_id, kind, timestamp_ms, date, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + punchColumns

	return scanPunch(q.QueryRow(ctx, query,
		event.OrgID,
		event.UserID,
		event.Kind.String(),
		event.Timestamp,
		event.Date,
		event.Location,
	))
}

func (r *punchRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []punch.PunchEvent
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

// ListByUserDate implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByUserDate(ctx context.Context, userID, date string) ([]punch.PunchEvent, error) {
	query := `SELECT ` + punchColumns + ` FROM punch_events
		WHERE user_id = $1 AND date = $2 ORDER BY timestamp_ms`
	return r.list(ctx, query, userID, date)
}

// ListByUserDateRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByUserDateRange(ctx context.Context, userID, from, to string) ([]punch.PunchEvent, error) {
	query := `SELECT ` + punchColumns + ` FROM punch_events
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY timestamp_ms`
	return r.list(ctx, query, userID, from, to)
}

// ListByOrgDateRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByOrgDateRange(ctx context.Context, orgID, from, to string) ([]punch.PunchEvent, error) {
	query := `SELECT ` + punchColumns + ` FROM punch_events
		WHERE org_id = $1 AND date >= $2 AND date <= $3 ORDER BY timestamp_ms`
	return r.list(ctx, query, orgID, from, to)
}

// DeleteByUserDate implements punch.PunchRepository.
func (r *punchRepositoryImpl) DeleteByUserDate(ctx context.Context, userID, date string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM punch_events WHERE user_id = $1 AND date = $2`, userID, date)
	return err
}
