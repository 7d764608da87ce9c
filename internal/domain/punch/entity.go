package punch

import (
	"time"

	"github.com/clockport/clockport-backend-go/internal/timeledger"
)

type PunchEvent struct {
	ID        string
	OrgID     string
	UserID    string
	Kind      timeledger.Kind
	Timestamp int64  // unix milliseconds
	Date      string // YYYY-MM-DD local day the punch belongs to
	Location  string
	CreatedAt time.Time
}

// ToLedgerEvent converts a stored punch into the reconciliation engine's
// event shape.
func (p PunchEvent) ToLedgerEvent() timeledger.Event {
	return timeledger.Event{
		ID:        p.ID,
		SubjectID: p.UserID,
		Timestamp: p.Timestamp,
		Date:      p.Date,
		Kind:      p.Kind,
		Location:  p.Location,
	}
}

func ToLedgerEvents(punches []PunchEvent) []timeledger.Event {
	events := make([]timeledger.Event, 0, len(punches))
	for _, p := range punches {
		events = append(events, p.ToLedgerEvent())
	}
	return events
}
