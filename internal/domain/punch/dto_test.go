package punch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPunchRequest_Validate(t *testing.T) {
	for _, kind := range []string{"CLOCK_IN", "CLOCK_OUT", "START_BREAK", "END_BREAK"} {
		req := RecordPunchRequest{Kind: kind}
		assert.NoError(t, req.Validate(), kind)
	}

	for _, kind := range []string{"", "clock_in", "BREAK", "PAUSE"} {
		req := RecordPunchRequest{Kind: kind}
		assert.Error(t, req.Validate(), "kind %q", kind)
	}
}

func TestDayQuery_Validate(t *testing.T) {
	assert.NoError(t, (&DayQuery{}).Validate(), "empty date means today")
	assert.NoError(t, (&DayQuery{Date: "2024-03-15"}).Validate())
	assert.Error(t, (&DayQuery{Date: "15-03-2024"}).Validate())
}
