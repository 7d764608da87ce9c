package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateLeaveRequest_Validate(t *testing.T) {
	req := CreateLeaveRequest{
		Type:      "VACATION",
		StartDate: "2024-08-05",
		EndDate:   "2024-08-09",
	}
	assert.NoError(t, req.Validate())

	assert.Error(t, (&CreateLeaveRequest{Type: "HOLIDAY", StartDate: "2024-08-05", EndDate: "2024-08-09"}).Validate())
	assert.Error(t, (&CreateLeaveRequest{Type: "SICK", StartDate: "05-08-2024", EndDate: "2024-08-09"}).Validate())
	assert.Error(t, (&CreateLeaveRequest{Type: "SICK", StartDate: "2024-08-09", EndDate: "2024-08-05"}).Validate())
}

func TestLeaveRequest_Days(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-08-05", "2024-08-05", 1},
		{"2024-08-05", "2024-08-09", 5},
		{"2024-12-30", "2025-01-02", 4},
		{"2024-08-09", "2024-08-05", 0},
		{"bad", "2024-08-05", 0},
	}
	for _, c := range cases {
		l := LeaveRequest{StartDate: c.start, EndDate: c.end}
		assert.Equal(t, c.want, l.Days(), "%s..%s", c.start, c.end)
	}
}

func TestListFilter_Validate(t *testing.T) {
	assert.NoError(t, (&ListFilter{}).Validate())
	assert.NoError(t, (&ListFilter{Status: "CANCELLED", Year: 2024}).Validate())
	assert.Error(t, (&ListFilter{Status: "DONE"}).Validate())
	assert.Error(t, (&ListFilter{Year: 1999}).Validate())
}
