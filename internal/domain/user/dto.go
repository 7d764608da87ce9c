package user

import (
	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
)

type UserResponse struct {
	ID              string  `json:"id"`
	OrgID           string  `json:"org_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	TaxID           *string `json:"tax_id,omitempty"`
	Role            string  `json:"role"`
	Status          string  `json:"status"`
	EmailVerified   bool    `json:"email_verified"`
	ContractType    *string `json:"contract_type,omitempty"`
	ContractEndDate *string `json:"contract_end_date,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:              u.ID,
		OrgID:           u.OrgID,
		Name:            u.Name,
		Email:           u.Email,
		TaxID:           u.TaxID,
		Role:            string(u.Role),
		Status:          string(u.Status),
		EmailVerified:   u.EmailVerified,
		ContractEndDate: u.ContractEndDate,
		CreatedAt:       u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.ContractType != nil {
		ct := string(*u.ContractType)
		resp.ContractType = &ct
	}
	return resp
}

type UpdateStatusRequest struct {
	UserID string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusBlocked)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: ACTIVE, BLOCKED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateContractRequest struct {
	UserID       string  `json:"-"`
	ContractType string  `json:"contract_type"`
	EndDate      *string `json:"end_date,omitempty"` // YYYY-MM-DD, required for fixed-term
}

func (r *UpdateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.ContractType, []string{string(ContractFixedTerm), string(ContractPermanent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_type",
			Message: "contract_type must be one of: FIXED_TERM, PERMANENT",
		})
	}

	if r.ContractType == string(ContractFixedTerm) {
		if r.EndDate == nil || validator.IsEmpty(*r.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date is required for fixed-term contracts",
			})
		} else if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
