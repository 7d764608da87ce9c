package postgresql

import (
	"context"

	"github.com/clockport/clockport-backend-go/internal/domain/announcement"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

const announcementColumns = `id, org_id, author_id, title, body, created_at, updated_at`

func scanAnnouncement(row interface{ Scan(dest ...any) error }) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(
		&a.ID,
		&a.OrgID,
		&a.AuthorID,
		&a.Title,
		&a.Body,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, ann announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (org_id, author_id, title, body)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + announcementColumns

	return scanAnnouncement(q.QueryRow(ctx, query, ann.OrgID, ann.AuthorID, ann.Title, ann.Body))
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`
	return scanAnnouncement(q.QueryRow(ctx, query, id))
}

// ListByOrg implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) ListByOrg(ctx context.Context, orgID string) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE org_id = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Update(ctx context.Context, ann announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE announcements SET title = $1, body = $2, updated_at = NOW() WHERE id = $3`
	_, err := q.Exec(ctx, query, ann.Title, ann.Body, ann.ID)
	return err
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Delete(ctx context.Context, id, orgID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
