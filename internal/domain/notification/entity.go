package notification

import "time"

type Type string

const (
	TypeAdjustmentRequested Type = "ADJUSTMENT_REQUESTED"
	TypeAdjustmentReviewed  Type = "ADJUSTMENT_REVIEWED"
	TypeLeaveRequested      Type = "LEAVE_REQUESTED"
	TypeLeaveReviewed       Type = "LEAVE_REVIEWED"
	TypeUserJoined          Type = "USER_JOINED"
	TypeUserApproved        Type = "USER_APPROVED"
	TypeAnnouncement        Type = "ANNOUNCEMENT"
)

type Notification struct {
	ID        string
	OrgID     string
	UserID    string // recipient
	Type      Type
	Title     string
	Body      string
	RefID     *string // id of the adjustment/leave/announcement this points at
	Read      bool
	CreatedAt time.Time
}
