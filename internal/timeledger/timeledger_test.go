package timeledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hourMs = int64(3_600_000)
	day    = "2024-03-15"
)

func ts(t *testing.T, l *Ledger, date, clock string) int64 {
	t.Helper()
	ms, ok := l.ParseTimeOnDate(date, clock)
	require.True(t, ok, "parse %s %s", date, clock)
	return ms
}

func punch(l *Ledger, t *testing.T, id, subject, date, clock string, kind Kind) Event {
	t.Helper()
	return Event{
		ID:        id,
		SubjectID: subject,
		Timestamp: ts(t, l, date, clock),
		Date:      date,
		Kind:      kind,
	}
}

func workDay(l *Ledger, t *testing.T, subject, date string) []Event {
	t.Helper()
	return []Event{
		punch(l, t, "e1", subject, date, "08:00", KindClockIn),
		punch(l, t, "e2", subject, date, "12:00", KindBreakStart),
		punch(l, t, "e3", subject, date, "13:00", KindBreakEnd),
		punch(l, t, "e4", subject, date, "17:00", KindClockOut),
	}
}

func TestBuildDayAggregates_Pairing(t *testing.T) {
	t.Parallel()
	l := New(nil)

	days := l.BuildDayAggregates(workDay(l, t, "u1", day))

	require.Contains(t, days, day)
	assert.Equal(t, 8*hourMs, days[day].TotalMs)
	require.Len(t, days[day].Segments, 2)
	assert.Equal(t, ts(t, l, day, "08:00"), days[day].Segments[0].Start)
	assert.Equal(t, ts(t, l, day, "12:00"), days[day].Segments[0].End)
	assert.Equal(t, ts(t, l, day, "13:00"), days[day].Segments[1].Start)
	assert.Equal(t, ts(t, l, day, "17:00"), days[day].Segments[1].End)
}

func TestBuildDayAggregates_UnorderedInput(t *testing.T) {
	t.Parallel()
	l := New(nil)

	events := workDay(l, t, "u1", day)
	shuffled := []Event{events[3], events[1], events[0], events[2]}

	days := l.BuildDayAggregates(shuffled)
	require.Contains(t, days, day)
	assert.Equal(t, 8*hourMs, days[day].TotalMs)
}

func TestBuildDayAggregates_OpenShiftRecovery(t *testing.T) {
	t.Parallel()
	l := New(nil)

	days := l.BuildDayAggregates([]Event{
		punch(l, t, "e1", "u1", day, "08:00", KindClockIn),
	})

	require.Contains(t, days, day)
	// Closed at the 23:59:59 day boundary, never an error or zero.
	want := 15*hourMs + 59*60_000 + 59_000
	assert.Equal(t, want, days[day].TotalMs)
	require.Len(t, days[day].Segments, 1)
}

func TestBuildDayAggregates_DoubleOpenDiscardsEarlier(t *testing.T) {
	t.Parallel()
	l := New(nil)

	days := l.BuildDayAggregates([]Event{
		punch(l, t, "e1", "u1", day, "08:00", KindClockIn),
		punch(l, t, "e2", "u1", day, "10:00", KindClockIn),
		punch(l, t, "e3", "u1", day, "17:00", KindClockOut),
	})

	// The 08:00 open is silently replaced by the 10:00 one.
	assert.Equal(t, 7*hourMs, days[day].TotalMs)
	require.Len(t, days[day].Segments, 1)
}

func TestBuildDayAggregates_CloseWithoutOpenIgnored(t *testing.T) {
	t.Parallel()
	l := New(nil)

	days := l.BuildDayAggregates([]Event{
		punch(l, t, "e1", "u1", day, "17:00", KindClockOut),
	})

	// The date still appears so callers can render "no activity".
	require.Contains(t, days, day)
	assert.Zero(t, days[day].TotalMs)
	assert.Empty(t, days[day].Segments)
}

func TestBuildDayAggregates_DropsMalformedEvents(t *testing.T) {
	t.Parallel()
	l := New(nil)

	events := append(workDay(l, t, "u1", day),
		Event{ID: "bad1", SubjectID: "u1", Timestamp: 0, Date: day, Kind: KindClockIn},
		Event{ID: "bad2", SubjectID: "u1", Timestamp: ts(t, l, day, "18:00"), Date: day, Kind: KindUnknown},
	)

	days := l.BuildDayAggregates(events)
	assert.Equal(t, 8*hourMs, days[day].TotalMs)
}

func TestBuildDayAggregates_FallsBackToTimestampDate(t *testing.T) {
	t.Parallel()
	l := New(nil)

	in := punch(l, t, "e1", "u1", day, "08:00", KindClockIn)
	out := punch(l, t, "e2", "u1", day, "17:00", KindClockOut)
	in.Date = ""
	out.Date = ""

	days := l.BuildDayAggregates([]Event{in, out})
	require.Contains(t, days, day)
	assert.Equal(t, 9*hourMs, days[day].TotalMs)
}

func TestMerge_ApprovedOverridesDay(t *testing.T) {
	t.Parallel()
	l := New(nil)

	raw := workDay(l, t, "u1", day)
	adj := Adjustment{
		ID: "a1", SubjectID: "u1", Date: day, Status: AdjustmentApproved,
		ClockIn: "09:00", ClockOut: "18:00", BreakStart: "13:00", BreakEnd: "14:00",
	}

	effective, warnings := l.Merge(raw, []Adjustment{adj})
	assert.Empty(t, warnings)

	days := l.BuildDayAggregates(effective)
	require.Contains(t, days, day)
	assert.Equal(t, 8*hourMs, days[day].TotalMs)
	require.Len(t, days[day].Segments, 2)
	assert.Equal(t, ts(t, l, day, "09:00"), days[day].Segments[0].Start)
	assert.Equal(t, ts(t, l, day, "18:00"), days[day].Segments[1].End)
}

func TestMerge_PendingAndRejectedAreInert(t *testing.T) {
	t.Parallel()
	l := New(nil)

	raw := workDay(l, t, "u1", day)
	base := l.BuildDayAggregates(raw)

	for _, status := range []AdjustmentStatus{AdjustmentPending, AdjustmentRejected} {
		adj := Adjustment{
			ID: "a1", SubjectID: "u1", Date: day, Status: status,
			ClockIn: "09:00", ClockOut: "18:00", BreakStart: "13:00", BreakEnd: "14:00",
		}
		effective, warnings := l.Merge(raw, []Adjustment{adj})
		assert.Empty(t, warnings)
		assert.Equal(t, base, l.BuildDayAggregates(effective), "status %s", status)
	}
}

func TestMerge_InvalidTimesSkipAdjustment(t *testing.T) {
	t.Parallel()
	l := New(nil)

	raw := workDay(l, t, "u1", day)
	cases := []struct {
		name string
		adj  Adjustment
	}{
		{"unparseable", Adjustment{ID: "a1", SubjectID: "u1", Date: day, Status: AdjustmentApproved, ClockIn: "nope", ClockOut: "18:00"}},
		{"non-monotonic", Adjustment{ID: "a2", SubjectID: "u1", Date: day, Status: AdjustmentApproved, ClockIn: "18:00", ClockOut: "09:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			effective, warnings := l.Merge(raw, []Adjustment{tc.adj})
			require.Len(t, warnings, 1)
			assert.Equal(t, tc.adj.ID, warnings[0].AdjustmentID)
			// Raw events for the day stay authoritative.
			days := l.BuildDayAggregates(effective)
			assert.Equal(t, 8*hourMs, days[day].TotalMs)
		})
	}
}

func TestMerge_InvalidBreakWindowDropsBreakOnly(t *testing.T) {
	t.Parallel()
	l := New(nil)

	adj := Adjustment{
		ID: "a1", SubjectID: "u1", Date: day, Status: AdjustmentApproved,
		ClockIn: "09:00", ClockOut: "17:00",
		// Break ends after clock-out: window rejected, clock times kept.
		BreakStart: "16:00", BreakEnd: "18:00",
	}

	effective, warnings := l.Merge(nil, []Adjustment{adj})
	require.Len(t, warnings, 1)

	days := l.BuildDayAggregates(effective)
	assert.Equal(t, 8*hourMs, days[day].TotalMs)
	assert.Len(t, days[day].Segments, 1)
}

func TestMerge_LeavesOtherSubjectsAndDaysAlone(t *testing.T) {
	t.Parallel()
	l := New(nil)

	otherDay := "2024-03-16"
	raw := append(workDay(l, t, "u1", day), workDay(l, t, "u2", day)...)
	raw = append(raw, workDay(l, t, "u1", otherDay)...)

	adj := Adjustment{
		ID: "a1", SubjectID: "u1", Date: day, Status: AdjustmentApproved,
		ClockIn: "10:00", ClockOut: "12:00",
	}
	effective, warnings := l.Merge(raw, []Adjustment{adj})
	assert.Empty(t, warnings)

	days := l.BuildDayAggregates(effective)
	// Only u1's adjusted day changed; u2 shares the date key but keeps its events.
	var u1Day, u2Day int64
	for _, e := range effective {
		if e.dateKey() != day {
			continue
		}
		if e.SubjectID == "u1" {
			u1Day++
		} else {
			u2Day++
		}
	}
	assert.Equal(t, int64(2), u1Day)
	assert.Equal(t, int64(4), u2Day)
	assert.Contains(t, days, otherDay)
	assert.Equal(t, 8*hourMs, days[otherDay].TotalMs)
}

func TestMerge_PriorTimesNeverReadByReconciliation(t *testing.T) {
	t.Parallel()
	l := New(nil)

	adj := Adjustment{
		ID: "a1", SubjectID: "u1", Date: day, Status: AdjustmentApproved,
		ClockIn: "09:00", ClockOut: "17:00",
		PriorClockIn: "01:00", PriorClockOut: "02:00",
	}
	effective, _ := l.Merge(nil, []Adjustment{adj})
	days := l.BuildDayAggregates(effective)
	assert.Equal(t, 8*hourMs, days[day].TotalMs)
}

func TestSummarize_MonthAndWeekTotals(t *testing.T) {
	t.Parallel()
	l := New(nil)

	var events []Event
	// Three days across two week buckets of March 2024.
	for _, d := range []string{"2024-03-04", "2024-03-07", "2024-03-12"} {
		events = append(events, workDay(l, t, "u1", d)...)
	}

	summary, warnings := l.Summarize("u1", events, nil, 2024, time.March)
	assert.Empty(t, warnings)
	assert.Equal(t, 24*hourMs, summary.TotalMs)
	require.Len(t, summary.Days, 3)

	// Month total equals the sum over days and the sum over weeks.
	var daySum, weekSum int64
	for _, d := range summary.Days {
		daySum += d.TotalMs
	}
	for _, w := range summary.Weeks {
		weekSum += w.TotalMs
	}
	assert.Equal(t, summary.TotalMs, daySum)
	assert.Equal(t, summary.TotalMs, weekSum)

	// 31-day month: five buckets, the last covering only days 29-31.
	require.Len(t, summary.Weeks, 5)
	assert.Equal(t, "1-7", summary.Weeks[0].Label)
	assert.Equal(t, "29-31", summary.Weeks[4].Label)
	assert.Equal(t, 16*hourMs, summary.Weeks[0].TotalMs)
	assert.Equal(t, 8*hourMs, summary.Weeks[1].TotalMs)
}

func TestSummarize_ExcludesOtherMonths(t *testing.T) {
	t.Parallel()
	l := New(nil)

	events := append(workDay(l, t, "u1", "2024-03-04"), workDay(l, t, "u1", "2024-04-02")...)
	summary, _ := l.Summarize("u1", events, nil, 2024, time.March)

	require.Len(t, summary.Days, 1)
	assert.Equal(t, "2024-03-04", summary.Days[0].Date)
	assert.Equal(t, 8*hourMs, summary.TotalMs)
}

func TestSummarize_Idempotent(t *testing.T) {
	t.Parallel()
	l := New(nil)

	events := append(workDay(l, t, "u1", "2024-03-04"),
		punch(l, t, "e9", "u1", "2024-03-05", "08:00", KindClockIn))
	adjustments := []Adjustment{{
		ID: "a1", SubjectID: "u1", Date: "2024-03-04", Status: AdjustmentApproved,
		ClockIn: "09:00", ClockOut: "18:00", BreakStart: "13:00", BreakEnd: "14:00",
	}}

	first, _ := l.Summarize("u1", events, adjustments, 2024, time.March)
	second, _ := l.Summarize("u1", events, adjustments, 2024, time.March)
	assert.Equal(t, first, second)
}

func TestSummarizeAll_IndependentSubjects(t *testing.T) {
	t.Parallel()
	l := New(nil)

	events := append(workDay(l, t, "u1", day), workDay(l, t, "u2", day)...)
	adjustments := []Adjustment{{
		ID: "a1", SubjectID: "u2", Date: day, Status: AdjustmentApproved,
		ClockIn: "10:00", ClockOut: "14:00",
	}}

	summaries, warnings := l.SummarizeAll(events, adjustments, 2024, time.March)
	assert.Empty(t, warnings)
	require.Len(t, summaries, 2)
	assert.Equal(t, "u1", summaries[0].SubjectID)
	assert.Equal(t, 8*hourMs, summaries[0].TotalMs)
	assert.Equal(t, "u2", summaries[1].SubjectID)
	assert.Equal(t, 4*hourMs, summaries[1].TotalMs)
}

func TestWeekIndex(t *testing.T) {
	t.Parallel()
	cases := map[int]int{1: 0, 7: 0, 8: 1, 14: 1, 15: 2, 28: 3, 29: 4, 31: 4}
	for dom, want := range cases {
		assert.Equal(t, want, WeekIndex(dom), "day %d", dom)
	}
}
