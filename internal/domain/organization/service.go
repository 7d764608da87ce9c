package organization

import (
	"context"
)

type OrganizationService interface {
	GetMyOrg(ctx context.Context) (OrganizationResponse, error)
	UpdateOrg(ctx context.Context, req UpdateOrgRequest) error
	RegenerateCode(ctx context.Context) (OrganizationResponse, error)
	GetSubscription(ctx context.Context) (SubscriptionResponse, error)
	ActivateSubscription(ctx context.Context) error
	CancelSubscription(ctx context.Context) error
}
