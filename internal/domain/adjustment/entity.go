package adjustment

import (
	"time"

	"github.com/clockport/clockport-backend-go/internal/timeledger"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Adjustment is an employee-requested correction for one day's shift.
// Clock times are HH:mm strings in the organization's local timezone.
// PriorClockIn/PriorClockOut snapshot what the raw punches said when the
// request was filed; they are shown to the reviewing admin and never fed
// back into reconciliation.
type Adjustment struct {
	ID            string
	OrgID         string
	UserID        string
	Date          string // YYYY-MM-DD
	ClockIn       string
	ClockOut      string
	BreakStart    *string
	BreakEnd      *string
	Reason        string
	Status        Status
	PriorClockIn  *string
	PriorClockOut *string
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToLedgerAdjustment converts a stored correction into the reconciliation
// engine's shape.
func (a Adjustment) ToLedgerAdjustment() timeledger.Adjustment {
	adj := timeledger.Adjustment{
		ID:        a.ID,
		SubjectID: a.UserID,
		Date:      a.Date,
		Status:    timeledger.AdjustmentStatus(a.Status),
		ClockIn:   a.ClockIn,
		ClockOut:  a.ClockOut,
	}
	if a.BreakStart != nil {
		adj.BreakStart = *a.BreakStart
	}
	if a.BreakEnd != nil {
		adj.BreakEnd = *a.BreakEnd
	}
	if a.PriorClockIn != nil {
		adj.PriorClockIn = *a.PriorClockIn
	}
	if a.PriorClockOut != nil {
		adj.PriorClockOut = *a.PriorClockOut
	}
	return adj
}

func ToLedgerAdjustments(adjustments []Adjustment) []timeledger.Adjustment {
	out := make([]timeledger.Adjustment, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, a.ToLedgerAdjustment())
	}
	return out
}
