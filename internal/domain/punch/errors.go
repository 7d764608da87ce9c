package punch

import "errors"

var (
	ErrPunchNotFound   = errors.New("punch event not found")
	ErrPunchNotAllowed = errors.New("user may not record punches")
)
