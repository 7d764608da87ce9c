package organization

import "errors"

var (
	ErrOrgNotFound          = errors.New("organization not found")
	ErrOrgCodeNotFound      = errors.New("organization code not found")
	ErrSubscriptionExpired  = errors.New("subscription expired")
	ErrSubscriptionInactive = errors.New("subscription is not active")
)
