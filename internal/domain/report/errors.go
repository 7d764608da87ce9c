package report

import "errors"

var (
	ErrReportSubjectNotFound = errors.New("report subject not found")
)
