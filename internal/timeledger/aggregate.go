package timeledger

import (
	"fmt"
	"sort"
	"time"
)

// WeekAggregate is one seven-day bucket of a month. Buckets are positional,
// not ISO weeks: day d (1-based) belongs to bucket (d-1)/7, and the label
// carries the bucket's inclusive day range clipped to the month's last day.
type WeekAggregate struct {
	Index   int
	Label   string
	TotalMs int64
	Days    []DayAggregate
}

// MonthSummary is one subject's derived totals for a requested month. It is
// a read model: recomputed on every query, never stored as authoritative
// state.
type MonthSummary struct {
	SubjectID string
	Year      int
	Month     time.Month
	Days      []DayAggregate
	Weeks     []WeekAggregate
	TotalMs   int64
}

// WeekIndex returns the week bucket for a 1-based day of month.
func WeekIndex(dayOfMonth int) int {
	return (dayOfMonth - 1) / 7
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Summarize reconciles one subject's events with its adjustments and
// aggregates the requested month into day and week totals. Events outside
// the month are reconciled but excluded from the summary; their days do
// not appear. Warnings describe adjustments that were skipped.
func (l *Ledger) Summarize(subjectID string, events []Event, adjustments []Adjustment, year int, month time.Month) (MonthSummary, []Warning) {
	subjEvents := make([]Event, 0, len(events))
	for _, e := range events {
		if e.SubjectID == subjectID {
			subjEvents = append(subjEvents, e)
		}
	}
	subjAdjustments := make([]Adjustment, 0, len(adjustments))
	for _, a := range adjustments {
		if a.SubjectID == subjectID {
			subjAdjustments = append(subjAdjustments, a)
		}
	}

	effective, warnings := l.Merge(subjEvents, subjAdjustments)

	monthly := effective[:0]
	for _, e := range effective {
		if d, err := time.Parse("2006-01-02", e.dateKey()); err == nil &&
			d.Year() == year && d.Month() == month {
			monthly = append(monthly, e)
		}
	}

	dayMap := l.BuildDayAggregates(monthly)
	days := make([]DayAggregate, 0, len(dayMap))
	for _, d := range dayMap {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	summary := MonthSummary{
		SubjectID: subjectID,
		Year:      year,
		Month:     month,
		Days:      days,
	}

	lastDay := DaysInMonth(year, month)
	weekCount := (lastDay + 6) / 7
	summary.Weeks = make([]WeekAggregate, weekCount)
	for i := range summary.Weeks {
		first := i*7 + 1
		last := first + 6
		if last > lastDay {
			last = lastDay
		}
		summary.Weeks[i] = WeekAggregate{
			Index: i,
			Label: fmt.Sprintf("%d-%d", first, last),
		}
	}

	for _, d := range days {
		t, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			continue
		}
		w := WeekIndex(t.Day())
		summary.Weeks[w].Days = append(summary.Weeks[w].Days, d)
		summary.Weeks[w].TotalMs += d.TotalMs
		summary.TotalMs += d.TotalMs
	}

	return summary, warnings
}

// SummarizeAll computes a month summary per subject present in events.
// Each subject is independent; results are sorted by subject ID.
func (l *Ledger) SummarizeAll(events []Event, adjustments []Adjustment, year int, month time.Month) ([]MonthSummary, []Warning) {
	seen := make(map[string]bool)
	var subjects []string
	for _, e := range events {
		if !seen[e.SubjectID] {
			seen[e.SubjectID] = true
			subjects = append(subjects, e.SubjectID)
		}
	}
	sort.Strings(subjects)

	summaries := make([]MonthSummary, 0, len(subjects))
	var warnings []Warning
	for _, id := range subjects {
		s, w := l.Summarize(id, events, adjustments, year, month)
		summaries = append(summaries, s)
		warnings = append(warnings, w...)
	}
	return summaries, warnings
}
