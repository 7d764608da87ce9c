package organization

import "time"

// SubscriptionStatus tracks the billing state of an organization. New
// organizations start on a trial; an expired or cancelled subscription
// blocks everything except login and read-only report access.
type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "TRIAL"
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

type Organization struct {
	ID                 string
	Name               string
	VatID              *string
	Code               string // 6 character join code handed to employees
	SubscriptionStatus SubscriptionStatus
	TrialEndsAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SubscriptionUsable reports whether the organization may use write
// operations. Trials are usable until their end date passes.
func (o *Organization) SubscriptionUsable(now time.Time) bool {
	switch o.SubscriptionStatus {
	case SubscriptionActive:
		return true
	case SubscriptionTrial:
		return o.TrialEndsAt == nil || now.Before(*o.TrialEndsAt)
	default:
		return false
	}
}
