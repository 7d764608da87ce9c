package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrUserBlocked            = errors.New("user is blocked")
	ErrUserNotApproved        = errors.New("user is awaiting approval")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrInvalidStatusChange    = errors.New("invalid status change")
)
