// Package timeledger turns a raw stream of punch events plus approved
// corrections into per-day, per-week and per-month worked-duration
// summaries. It is a pure in-memory computation: no I/O, no shared state
// between calls, always recomputed from the inputs it is given.
package timeledger

import (
	"time"
)

// Kind identifies the four punch event types.
type Kind int

const (
	KindUnknown Kind = iota
	KindClockIn
	KindClockOut
	KindBreakStart
	KindBreakEnd
)

// KindFromString maps a stored event type to a Kind. Unrecognized values
// map to KindUnknown and are dropped by the well-formedness check.
func KindFromString(s string) Kind {
	switch s {
	case "CLOCK_IN":
		return KindClockIn
	case "CLOCK_OUT":
		return KindClockOut
	case "START_BREAK":
		return KindBreakStart
	case "END_BREAK":
		return KindBreakEnd
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindClockIn:
		return "CLOCK_IN"
	case KindClockOut:
		return "CLOCK_OUT"
	case KindBreakStart:
		return "START_BREAK"
	case KindBreakEnd:
		return "END_BREAK"
	default:
		return "UNKNOWN"
	}
}

// Event is a single immutable punch. Timestamp is epoch milliseconds.
// Date is the local calendar date the punch was bucketed under when it was
// recorded; it is stored rather than re-derived so that aggregation does
// not drift across time zones.
type Event struct {
	ID        string
	SubjectID string
	Timestamp int64
	Date      string // YYYY-MM-DD
	Kind      Kind
	Location  string
}

// WellFormed reports whether the event can participate in aggregation.
// Malformed events are dropped before segment building, never rejected
// with an error: upstream emitters are not trusted.
func (e Event) WellFormed() bool {
	if e.Timestamp <= 0 {
		return false
	}
	switch e.Kind {
	case KindClockIn, KindClockOut, KindBreakStart, KindBreakEnd:
		return true
	default:
		return false
	}
}

// dateKey returns the day bucket for the event, falling back to the UTC
// date of the timestamp when the recorded date is missing.
func (e Event) dateKey() string {
	if e.Date != "" {
		return e.Date
	}
	return time.UnixMilli(e.Timestamp).UTC().Format("2006-01-02")
}

// WorkStatus is the live on-duty state derived from a subject's last punch.
type WorkStatus int

const (
	StatusIdle WorkStatus = iota
	StatusWorking
	StatusOnBreak
)

func (s WorkStatus) String() string {
	switch s {
	case StatusWorking:
		return "WORKING"
	case StatusOnBreak:
		return "ON_BREAK"
	default:
		return "IDLE"
	}
}

// LastStatus derives the current work status from the most recent
// well-formed event. Events need not be sorted.
func LastStatus(events []Event) WorkStatus {
	var last *Event
	for i := range events {
		e := events[i]
		if !e.WellFormed() {
			continue
		}
		if last == nil || e.Timestamp > last.Timestamp {
			last = &events[i]
		}
	}
	if last == nil {
		return StatusIdle
	}
	switch last.Kind {
	case KindClockIn, KindBreakEnd:
		return StatusWorking
	case KindBreakStart:
		return StatusOnBreak
	default:
		return StatusIdle
	}
}
