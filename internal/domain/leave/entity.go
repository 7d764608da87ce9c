package leave

import "time"

type Type string

const (
	TypeVacation Type = "VACATION"
	TypeSick     Type = "SICK"
	TypePersonal Type = "PERSONAL"
	TypeOther    Type = "OTHER"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

type LeaveRequest struct {
	ID         string
	OrgID      string
	UserID     string
	Type       Type
	StartDate  string // YYYY-MM-DD, inclusive
	EndDate    string // YYYY-MM-DD, inclusive
	Reason     string
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Days counts calendar days covered by the request, both bounds included.
func (l *LeaveRequest) Days() int {
	start, err := time.Parse("2006-01-02", l.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", l.EndDate)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
