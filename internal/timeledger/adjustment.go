package timeledger

import (
	"fmt"
	"sort"
)

// AdjustmentStatus is the lifecycle state of a correction. A record is
// created Pending and transitions exactly once to Approved or Rejected.
type AdjustmentStatus string

const (
	AdjustmentPending  AdjustmentStatus = "PENDING"
	AdjustmentApproved AdjustmentStatus = "APPROVED"
	AdjustmentRejected AdjustmentStatus = "REJECTED"
)

// Adjustment is an approval-gated retroactive correction for one
// subject/day. Proposed times are local HH:mm strings on Date. The Prior
// fields snapshot the day's previous first and last punch for audit
// display; they are never read by the reconciliation algorithm.
type Adjustment struct {
	ID        string
	SubjectID string
	Date      string // YYYY-MM-DD
	Status    AdjustmentStatus

	ClockIn    string
	ClockOut   string
	BreakStart string
	BreakEnd   string

	PriorClockIn  string
	PriorClockOut string
}

// Warning is a data-quality signal produced while reconciling. The engine
// never fails on a bad adjustment; it skips it and reports why so the
// caller can surface the problem to administrators.
type Warning struct {
	AdjustmentID string
	SubjectID    string
	Date         string
	Reason       string
}

func (w Warning) String() string {
	return fmt.Sprintf("adjustment %s (%s %s) ignored: %s", w.AdjustmentID, w.SubjectID, w.Date, w.Reason)
}

// Merge substitutes each approved adjustment's day for that day's raw
// events and returns the effective event list, sorted by timestamp.
// Pending and rejected records are inert. An approved record whose times
// do not parse, or whose clock-out is not after its clock-in, is skipped
// and the raw events for that day remain authoritative. A break window is
// synthesized only when it lies strictly inside the clock window;
// otherwise only the break is dropped and a warning is reported.
func (l *Ledger) Merge(events []Event, adjustments []Adjustment) ([]Event, []Warning) {
	merged := make([]Event, len(events))
	copy(merged, events)

	var warnings []Warning
	for _, adj := range adjustments {
		if adj.Status != AdjustmentApproved {
			continue
		}

		start, okIn := l.ParseTimeOnDate(adj.Date, adj.ClockIn)
		end, okOut := l.ParseTimeOnDate(adj.Date, adj.ClockOut)
		if !okIn || !okOut {
			warnings = append(warnings, Warning{adj.ID, adj.SubjectID, adj.Date, "unparseable clock times"})
			continue
		}
		if end <= start {
			warnings = append(warnings, Warning{adj.ID, adj.SubjectID, adj.Date, "clock-out not after clock-in"})
			continue
		}

		// The adjustment's day fully supersedes its raw events.
		kept := merged[:0]
		for _, e := range merged {
			if e.SubjectID == adj.SubjectID && e.dateKey() == adj.Date {
				continue
			}
			kept = append(kept, e)
		}
		merged = kept

		merged = append(merged, Event{
			ID:        "adj-" + adj.ID + "-in",
			SubjectID: adj.SubjectID,
			Timestamp: start,
			Date:      adj.Date,
			Kind:      KindClockIn,
		})

		if adj.BreakStart != "" || adj.BreakEnd != "" {
			bs, okBS := l.ParseTimeOnDate(adj.Date, adj.BreakStart)
			be, okBE := l.ParseTimeOnDate(adj.Date, adj.BreakEnd)
			if okBS && okBE && be > bs && bs > start && be < end {
				merged = append(merged,
					Event{
						ID:        "adj-" + adj.ID + "-pstart",
						SubjectID: adj.SubjectID,
						Timestamp: bs,
						Date:      adj.Date,
						Kind:      KindBreakStart,
					},
					Event{
						ID:        "adj-" + adj.ID + "-pend",
						SubjectID: adj.SubjectID,
						Timestamp: be,
						Date:      adj.Date,
						Kind:      KindBreakEnd,
					},
				)
			} else {
				warnings = append(warnings, Warning{adj.ID, adj.SubjectID, adj.Date, "break window outside clock window, break dropped"})
			}
		}

		merged = append(merged, Event{
			ID:        "adj-" + adj.ID + "-out",
			SubjectID: adj.SubjectID,
			Timestamp: end,
			Date:      adj.Date,
			Kind:      KindClockOut,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp < merged[j].Timestamp
	})
	return merged, warnings
}
