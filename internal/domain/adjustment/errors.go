package adjustment

import "errors"

var (
	ErrAdjustmentNotFound  = errors.New("adjustment not found")
	ErrAlreadyReviewed     = errors.New("adjustment has already been reviewed")
	ErrPendingExistsForDay = errors.New("a pending adjustment already exists for this day")
)
