package organization

import (
	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
)

type OrganizationResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	VatID              *string `json:"vat_id,omitempty"`
	Code               string  `json:"code"`
	SubscriptionStatus string  `json:"subscription_status"`
	TrialEndsAt        *string `json:"trial_ends_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

func ToResponse(o Organization) OrganizationResponse {
	resp := OrganizationResponse{
		ID:                 o.ID,
		Name:               o.Name,
		VatID:              o.VatID,
		Code:               o.Code,
		SubscriptionStatus: string(o.SubscriptionStatus),
		CreatedAt:          o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if o.TrialEndsAt != nil {
		t := o.TrialEndsAt.Format("2006-01-02 15:04:05")
		resp.TrialEndsAt = &t
	}
	return resp
}

type UpdateOrgRequest struct {
	Name  string  `json:"name"`
	VatID *string `json:"vat_id,omitempty"`
}

func (r *UpdateOrgRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

type SubscriptionResponse struct {
	Status      string  `json:"status"`
	TrialEndsAt *string `json:"trial_ends_at,omitempty"`
	Usable      bool    `json:"usable"`
}
