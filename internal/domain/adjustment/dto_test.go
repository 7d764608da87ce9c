package adjustment

import (
	"testing"

	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validRequest() CreateAdjustmentRequest {
	return CreateAdjustmentRequest{
		Date:     "2024-03-15",
		ClockIn:  "08:30",
		ClockOut: "17:00",
		Reason:   "forgot to clock out",
	}
}

func TestCreateAdjustmentRequest_Validate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())

	withBreak := validRequest()
	withBreak.BreakStart = strPtr("12:00")
	withBreak.BreakEnd = strPtr("13:00")
	assert.NoError(t, withBreak.Validate())
}

func TestCreateAdjustmentRequest_Validate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateAdjustmentRequest)
		field  string
	}{
		{"bad date", func(r *CreateAdjustmentRequest) { r.Date = "15/03/2024" }, "date"},
		{"bad clock in", func(r *CreateAdjustmentRequest) { r.ClockIn = "25:00" }, "clock_in"},
		{"bad clock out", func(r *CreateAdjustmentRequest) { r.ClockOut = "8.30" }, "clock_out"},
		{"break start without end", func(r *CreateAdjustmentRequest) { r.BreakStart = strPtr("12:00") }, "break_start"},
		{"break end without start", func(r *CreateAdjustmentRequest) { r.BreakEnd = strPtr("13:00") }, "break_start"},
		{"missing reason", func(r *CreateAdjustmentRequest) { r.Reason = "  " }, "reason"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			var errs validator.ValidationErrors
			require.ErrorAs(t, req.Validate(), &errs)
			assert.Contains(t, errs.ToMap(), tc.field)
		})
	}
}

func TestListFilter_Validate(t *testing.T) {
	assert.NoError(t, (&ListFilter{}).Validate())
	assert.NoError(t, (&ListFilter{Status: "PENDING", From: "2024-01-01", To: "2024-01-31"}).Validate())
	assert.Error(t, (&ListFilter{Status: "MAYBE"}).Validate())
	assert.Error(t, (&ListFilter{From: "January"}).Validate())
}
