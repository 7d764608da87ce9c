package report

import (
	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
)

// ReportQuery selects one calendar month. Month is 0-based, matching the
// index the web client sends.
type ReportQuery struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	UserID string `json:"user_id,omitempty"`
}

func (q *ReportQuery) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(q.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidMonth(q.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 0 and 11",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayReport struct {
	Date       string `json:"date"`
	TotalMs    int64  `json:"total_ms"`
	TotalHours string `json:"total_hours"`
	Detail     string `json:"detail"`
}

type WeekReport struct {
	Index      int         `json:"index"`
	Label      string      `json:"label"`
	TotalMs    int64       `json:"total_ms"`
	TotalHours string      `json:"total_hours"`
	Days       []DayReport `json:"days"`
}

type EmployeeReport struct {
	UserID     string       `json:"user_id"`
	UserName   string       `json:"user_name"`
	Year       int          `json:"year"`
	Month      int          `json:"month"`
	TotalMs    int64        `json:"total_ms"`
	TotalHours string       `json:"total_hours"`
	DaysWorked int          `json:"days_worked"`
	Weeks      []WeekReport `json:"weeks"`
	Warnings   []string     `json:"warnings,omitempty"`
}

type OrgReport struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	TotalMs   int64            `json:"total_ms"`
	Employees []EmployeeReport `json:"employees"`
}

type ExportFile struct {
	Filename    string `json:"-"`
	ContentType string `json:"-"`
	Data        []byte `json:"-"`
}

type DashboardStats struct {
	ActiveEmployees    int   `json:"active_employees"`
	PendingApprovals   int   `json:"pending_approvals"`
	WorkingNow         int   `json:"working_now"`
	OnBreakNow         int   `json:"on_break_now"`
	PendingAdjustments int   `json:"pending_adjustments"`
	PendingLeaves      int   `json:"pending_leaves"`
	MonthTotalMs       int64 `json:"month_total_ms"`
}
