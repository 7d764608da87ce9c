package role

import "time"

// Role is an org-scoped job label admins define and order. Position is
// 1-based and drives display order; new roles are appended at the end.
type Role struct {
	ID        string
	OrgID     string
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
