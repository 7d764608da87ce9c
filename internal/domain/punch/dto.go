package punch

import (
	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
	"github.com/clockport/clockport-backend-go/internal/timeledger"
)

type RecordPunchRequest struct {
	Kind     string `json:"kind"`
	Location string `json:"location,omitempty"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if timeledger.KindFromString(r.Kind) == timeledger.KindUnknown {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: CLOCK_IN, CLOCK_OUT, START_BREAK, END_BREAK",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"`
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
	Location  string `json:"location,omitempty"`
}

func ToResponse(p PunchEvent) PunchResponse {
	return PunchResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Kind:      p.Kind.String(),
		Timestamp: p.Timestamp,
		Date:      p.Date,
		Location:  p.Location,
	}
}

type StatusResponse struct {
	Status  string          `json:"status"` // IDLE, WORKING, ON_BREAK
	Today   []PunchResponse `json:"today"`
	TodayMs int64           `json:"today_ms"`
}

type DayQuery struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}

func (q *DayQuery) Validate() error {
	if !validator.IsEmpty(q.Date) {
		if _, valid := validator.IsValidDate(q.Date); !valid {
			return validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
	}
	return nil
}
