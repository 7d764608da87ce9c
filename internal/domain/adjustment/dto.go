package adjustment

import (
	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
)

type CreateAdjustmentRequest struct {
	Date       string  `json:"date"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   string  `json:"clock_out"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Reason     string  `json:"reason"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be in HH:mm format",
		})
	}

	if !validator.IsValidClockTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be in HH:mm format",
		})
	}

	// Break bounds come as a pair or not at all.
	if (r.BreakStart == nil) != (r.BreakEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start and break_end must be provided together",
		})
	}
	if r.BreakStart != nil && !validator.IsValidClockTime(*r.BreakStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start must be in HH:mm format",
		})
	}
	if r.BreakEnd != nil && !validator.IsValidClockTime(*r.BreakEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_end",
			Message: "break_end must be in HH:mm format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectAdjustmentRequest struct {
	AdjustmentID string `json:"-"`
	Note         string `json:"note,omitempty"`
}

type AdjustmentResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name,omitempty"`
	Date          string  `json:"date"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      string  `json:"clock_out"`
	BreakStart    *string `json:"break_start,omitempty"`
	BreakEnd      *string `json:"break_end,omitempty"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	PriorClockIn  *string `json:"prior_clock_in,omitempty"`
	PriorClockOut *string `json:"prior_clock_out,omitempty"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func ToResponse(a Adjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Date:          a.Date,
		ClockIn:       a.ClockIn,
		ClockOut:      a.ClockOut,
		BreakStart:    a.BreakStart,
		BreakEnd:      a.BreakEnd,
		Reason:        a.Reason,
		Status:        string(a.Status),
		PriorClockIn:  a.PriorClockIn,
		PriorClockOut: a.PriorClockOut,
		ReviewedBy:    a.ReviewedBy,
		CreatedAt:     a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if a.ReviewedAt != nil {
		t := a.ReviewedAt.Format("2006-01-02 15:04:05")
		resp.ReviewedAt = &t
	}
	return resp
}

type ListFilter struct {
	Status string `json:"status,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Status) &&
		!validator.IsInSlice(f.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PENDING, APPROVED, REJECTED",
		})
	}
	if !validator.IsEmpty(f.From) {
		if _, valid := validator.IsValidDate(f.From); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if !validator.IsEmpty(f.To) {
		if _, valid := validator.IsValidDate(f.To); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
