package timeledger

import (
	"sort"
)

// Segment is one continuous on-duty interval, from a clock-in or break
// resumption through the next break start or clock-out. End is always
// after Start; both are epoch milliseconds.
type Segment struct {
	Start int64
	End   int64
}

// DayAggregate holds one subject's worked time for a single calendar day.
type DayAggregate struct {
	Date     string // YYYY-MM-DD
	TotalMs  int64
	Segments []Segment
}

// BuildDayAggregates runs the open/close state machine over one subject's
// effective event list and buckets the resulting segments per day.
//
// A ClockIn or BreakEnd opens a segment; a BreakStart or ClockOut closes
// it. A second opening event before a close silently discards the earlier
// open segment. A day that ends with an open segment is closed at 23:59:59
// of the open date: a forgotten clock-out is a recovery case, not an error.
// Every date encountered gets an entry, even with zero segments, so
// callers can distinguish "no activity" from missing data.
func (l *Ledger) BuildDayAggregates(events []Event) map[string]*DayAggregate {
	sorted := make([]Event, 0, len(events))
	for _, e := range events {
		if e.WellFormed() {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	days := make(map[string]*DayAggregate, len(sorted))
	for _, e := range sorted {
		dk := e.dateKey()
		if _, ok := days[dk]; !ok {
			days[dk] = &DayAggregate{Date: dk}
		}
	}

	var open int64
	var openDate string
	hasOpen := false
	close := func(end int64) {
		if !hasOpen {
			return
		}
		if day, ok := days[openDate]; ok && end > open {
			day.TotalMs += end - open
			day.Segments = append(day.Segments, Segment{Start: open, End: end})
		}
		hasOpen = false
		openDate = ""
	}

	for _, e := range sorted {
		switch e.Kind {
		case KindClockIn, KindBreakEnd:
			open = e.Timestamp
			openDate = e.dateKey()
			hasOpen = true
		case KindBreakStart, KindClockOut:
			close(e.Timestamp)
		}
	}

	if hasOpen {
		if end, ok := l.endOfDay(openDate); ok {
			close(end)
		}
	}

	return days
}
