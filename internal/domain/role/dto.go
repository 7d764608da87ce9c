package role

import (
	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
)

type CreateRoleRequest struct {
	Name string `json:"name"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	RoleID   string  `json:"-"`
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.Position == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "provide a name or a position to update",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}
	if r.Position != nil && *r.Position < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RoleResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func ToResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:       r.ID,
		Name:     r.Name,
		Position: r.Position,
	}
}
