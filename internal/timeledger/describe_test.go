package timeledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeDay(t *testing.T) {
	t.Parallel()
	l := New(nil)

	seg := func(start, end string) Segment {
		return Segment{Start: ts(t, l, day, start), End: ts(t, l, day, end)}
	}

	cases := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{"empty", nil, ""},
		{"single", []Segment{seg("08:00", "17:00")}, "start: 08:00, end: 17:00"},
		{
			"with break",
			[]Segment{seg("08:00", "12:00"), seg("13:00", "17:00")},
			"start: 08:00, break: 12:00, resume: 13:00, end: 17:00",
		},
		{
			"many shifts",
			[]Segment{seg("08:00", "10:00"), seg("11:00", "13:00"), seg("14:00", "16:00")},
			"shift 1: 08:00 - 10:00; shift 2: 11:00 - 13:00; shift 3: 14:00 - 16:00",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := l.DescribeDay(DayAggregate{Date: day, Segments: tc.segments})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatHours(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "8.00", FormatHours(8*hourMs))
	assert.Equal(t, "0.00", FormatHours(0))
	assert.Equal(t, "7.50", FormatHours(7*hourMs+hourMs/2))
	// 100ms short of 16h rounds up, not truncates.
	assert.Equal(t, "16.00", FormatHours(16*hourMs-100))
	assert.Equal(t, "0.25", FormatHours(15*60_000))
}

func TestParseTimeOnDate(t *testing.T) {
	t.Parallel()
	l := New(nil)

	full := ts(t, l, day, "09:30")

	got, ok := l.ParseTimeOnDate(day, "9:30")
	require.True(t, ok)
	assert.Equal(t, full, got)

	got, ok = l.ParseTimeOnDate(day, "09:30:45")
	require.True(t, ok)
	assert.Equal(t, full, got)

	for _, bad := range []string{"", "25:00", "noon", "09-30"} {
		_, ok := l.ParseTimeOnDate(day, bad)
		assert.False(t, ok, "clock %q", bad)
	}
	_, ok = l.ParseTimeOnDate("not-a-date", "09:30")
	assert.False(t, ok)
}

func TestNetDuration(t *testing.T) {
	t.Parallel()
	l := New(nil)

	got, ok := l.NetDuration(day, "09:00", "18:00", "13:00", "14:00")
	require.True(t, ok)
	assert.Equal(t, 8*hourMs, got)

	// Break outside the window is ignored, not an error.
	got, ok = l.NetDuration(day, "09:00", "17:00", "17:30", "18:00")
	require.True(t, ok)
	assert.Equal(t, 8*hourMs, got)

	_, ok = l.NetDuration(day, "18:00", "09:00", "", "")
	assert.False(t, ok)
}

func TestLastStatus(t *testing.T) {
	t.Parallel()
	l := New(nil)

	assert.Equal(t, StatusIdle, LastStatus(nil))

	events := []Event{
		punch(l, t, "e1", "u1", day, "08:00", KindClockIn),
		punch(l, t, "e2", "u1", day, "12:00", KindBreakStart),
	}
	assert.Equal(t, StatusOnBreak, LastStatus(events))

	events = append(events, punch(l, t, "e3", "u1", day, "13:00", KindBreakEnd))
	assert.Equal(t, StatusWorking, LastStatus(events))

	events = append(events, punch(l, t, "e4", "u1", day, "17:00", KindClockOut))
	assert.Equal(t, StatusIdle, LastStatus(events))
}
