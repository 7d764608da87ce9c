package leave

import "errors"

var (
	ErrLeaveNotFound     = errors.New("leave request not found")
	ErrAlreadyReviewed   = errors.New("leave request has already been reviewed")
	ErrNotCancellable    = errors.New("only pending leave requests can be cancelled")
	ErrOverlappingLeave  = errors.New("an overlapping leave request already exists")
	ErrNotRequestOwner   = errors.New("leave request belongs to another user")
	ErrInvalidDateRange  = errors.New("end date is before start date")
)
