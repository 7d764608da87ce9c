package timeledger

import (
	"fmt"
	"strings"
)

// DescribeDay renders a day's ordered segments as a short human-readable
// line for report export. The common shapes get a dedicated form; anything
// with three or more segments is enumerated as shifts.
func (l *Ledger) DescribeDay(day DayAggregate) string {
	segs := day.Segments
	switch len(segs) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("start: %s, end: %s",
			l.formatClock(segs[0].Start), l.formatClock(segs[0].End))
	case 2:
		return fmt.Sprintf("start: %s, break: %s, resume: %s, end: %s",
			l.formatClock(segs[0].Start), l.formatClock(segs[0].End),
			l.formatClock(segs[1].Start), l.formatClock(segs[1].End))
	default:
		parts := make([]string, len(segs))
		for i, s := range segs {
			parts[i] = fmt.Sprintf("shift %d: %s - %s", i+1,
				l.formatClock(s.Start), l.formatClock(s.End))
		}
		return strings.Join(parts, "; ")
	}
}
