package announcement

import "time"

type Announcement struct {
	ID        string
	OrgID     string
	AuthorID  string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
