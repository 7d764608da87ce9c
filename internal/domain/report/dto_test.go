package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportQuery_Validate(t *testing.T) {
	assert.NoError(t, (&ReportQuery{Year: 2024, Month: 0}).Validate())
	assert.NoError(t, (&ReportQuery{Year: 2024, Month: 11}).Validate())

	assert.Error(t, (&ReportQuery{Year: 2024, Month: 12}).Validate(), "month is 0-based")
	assert.Error(t, (&ReportQuery{Year: 2024, Month: -1}).Validate())
	assert.Error(t, (&ReportQuery{Year: 1995, Month: 3}).Validate())
	assert.Error(t, (&ReportQuery{}).Validate(), "missing query params must not default to a month")
}
