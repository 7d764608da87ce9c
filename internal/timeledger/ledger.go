package timeledger

import (
	"time"
)

// Ledger computes aggregates in a fixed location. All clock-time strings
// (HH:mm) and day boundaries are interpreted in that location so that a
// day's synthesized events and its end-of-day closure stay consistent.
type Ledger struct {
	loc *time.Location
}

// New returns a Ledger operating in loc. A nil location means UTC.
func New(loc *time.Location) *Ledger {
	if loc == nil {
		loc = time.UTC
	}
	return &Ledger{loc: loc}
}

// ParseTimeOnDate parses an HH:mm (or H:mm, or HH:mm:ss) clock time on a
// YYYY-MM-DD date into epoch milliseconds. The boolean is false when either
// part does not parse.
func (l *Ledger) ParseTimeOnDate(date, clock string) (int64, bool) {
	if date == "" || clock == "" {
		return 0, false
	}
	if len(clock) == 4 && clock[1] == ':' {
		clock = "0" + clock
	}
	if len(clock) > 5 {
		clock = clock[:5]
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, l.loc)
	if err != nil {
		return 0, false
	}
	return t.UnixMilli(), true
}

// endOfDay returns the 23:59:59 instant of the given date, used as the
// recovery boundary for days that end without a closing punch.
func (l *Ledger) endOfDay(date string) (int64, bool) {
	t, err := time.ParseInLocation("2006-01-02", date, l.loc)
	if err != nil {
		return 0, false
	}
	return t.Add(23*time.Hour + 59*time.Minute + 59*time.Second).UnixMilli(), true
}

// formatClock renders an instant as HH:mm in the ledger's location.
func (l *Ledger) formatClock(ms int64) string {
	return time.UnixMilli(ms).In(l.loc).Format("15:04")
}

// NetDuration computes the net worked milliseconds for explicit clock
// times on one date, subtracting the break only when it falls strictly
// inside the clock window. Returns false when the times are missing or
// non-monotonic. Used to preview an adjustment's effect.
func (l *Ledger) NetDuration(date, clockIn, clockOut, breakStart, breakEnd string) (int64, bool) {
	start, okIn := l.ParseTimeOnDate(date, clockIn)
	end, okOut := l.ParseTimeOnDate(date, clockOut)
	if !okIn || !okOut || end <= start {
		return 0, false
	}
	total := end - start
	bs, okBS := l.ParseTimeOnDate(date, breakStart)
	be, okBE := l.ParseTimeOnDate(date, breakEnd)
	if okBS && okBE && be > bs && bs > start && be < end {
		total -= be - bs
	}
	return total, true
}
