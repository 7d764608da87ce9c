package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html"
	"log/slog"
	"sort"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/adjustment"
	"github.com/clockport/clockport-backend-go/internal/domain/leave"
	"github.com/clockport/clockport-backend-go/internal/domain/punch"
	"github.com/clockport/clockport-backend-go/internal/domain/report"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/clockport/clockport-backend-go/internal/pkg/i18n"
	"github.com/clockport/clockport-backend-go/internal/timeledger"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type ReportServiceImpl struct {
	db *database.DB
	punch.PunchRepository
	adjustment.AdjustmentRepository
	leave.LeaveRepository
	user.UserRepository
	ledger *timeledger.Ledger
	loc    *time.Location
	logger *slog.Logger
}

func NewReportService(db *database.DB, punchRepository punch.PunchRepository, adjustmentRepository adjustment.AdjustmentRepository, leaveRepository leave.LeaveRepository, userRepository user.UserRepository, ledger *timeledger.Ledger, loc *time.Location, logger *slog.Logger) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportServiceImpl{
		db:                   db,
		PunchRepository:      punchRepository,
		AdjustmentRepository: adjustmentRepository,
		LeaveRepository:      leaveRepository,
		UserRepository:       userRepository,
		ledger:               ledger,
		loc:                  loc,
		logger:               logger,
	}
}

func claimsFromContext(ctx context.Context) (orgID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	orgID, _ = claims["org_id"].(string)
	userID, _ = claims["user_id"].(string)
	return orgID, userID, nil
}

// monthRange returns the inclusive date bounds of a 0-based month.
func monthRange(year, month int) (string, string) {
	m := time.Month(month + 1)
	from := fmt.Sprintf("%04d-%02d-01", year, int(m))
	to := fmt.Sprintf("%04d-%02d-%02d", year, int(m), timeledger.DaysInMonth(year, m))
	return from, to
}

func (s *ReportServiceImpl) logWarnings(warnings []timeledger.Warning) {
	for _, w := range warnings {
		s.logger.Warn("adjustment skipped during reconciliation",
			slog.String("adjustment_id", w.AdjustmentID),
			slog.String("subject_id", w.SubjectID),
			slog.String("date", w.Date),
			slog.String("reason", w.Reason),
		)
	}
}

func warningStrings(warnings []timeledger.Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.String())
	}
	return out
}

func (s *ReportServiceImpl) toEmployeeReport(summary timeledger.MonthSummary, name string, month int, warnings []timeledger.Warning) report.EmployeeReport {
	resp := report.EmployeeReport{
		UserID:     summary.SubjectID,
		UserName:   name,
		Year:       summary.Year,
		Month:      month,
		TotalMs:    summary.TotalMs,
		TotalHours: timeledger.FormatHours(summary.TotalMs),
		Weeks:      make([]report.WeekReport, 0, len(summary.Weeks)),
		Warnings:   warningStrings(warnings),
	}

	for _, d := range summary.Days {
		if d.TotalMs > 0 {
			resp.DaysWorked++
		}
	}

	for _, w := range summary.Weeks {
		week := report.WeekReport{
			Index:      w.Index,
			Label:      w.Label,
			TotalMs:    w.TotalMs,
			TotalHours: timeledger.FormatHours(w.TotalMs),
			Days:       make([]report.DayReport, 0, len(w.Days)),
		}
		for _, d := range w.Days {
			week.Days = append(week.Days, report.DayReport{
				Date:       d.Date,
				TotalMs:    d.TotalMs,
				TotalHours: timeledger.FormatHours(d.TotalMs),
				Detail:     s.ledger.DescribeDay(d),
			})
		}
		resp.Weeks = append(resp.Weeks, week)
	}

	return resp
}

func (s *ReportServiceImpl) employeeReport(ctx context.Context, orgID, userID, name string, query report.ReportQuery) (report.EmployeeReport, error) {
	from, to := monthRange(query.Year, query.Month)

	punches, err := s.PunchRepository.ListByUserDateRange(ctx, userID, from, to)
	if err != nil {
		return report.EmployeeReport{}, fmt.Errorf("failed to list punches: %w", err)
	}
	adjustments, err := s.AdjustmentRepository.ListApprovedByOrgDateRange(ctx, orgID, from, to)
	if err != nil {
		return report.EmployeeReport{}, fmt.Errorf("failed to list adjustments: %w", err)
	}

	summary, warnings := s.ledger.Summarize(
		userID,
		punch.ToLedgerEvents(punches),
		adjustment.ToLedgerAdjustments(adjustments),
		query.Year,
		time.Month(query.Month+1),
	)
	s.logWarnings(warnings)

	return s.toEmployeeReport(summary, name, query.Month, warnings), nil
}

// GetMyMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GetMyMonthlyReport(ctx context.Context, query report.ReportQuery) (report.EmployeeReport, error) {
	if err := query.Validate(); err != nil {
		return report.EmployeeReport{}, err
	}

	orgID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.EmployeeReport{}, user.ErrUserNotFound
		}
		return report.EmployeeReport{}, fmt.Errorf("failed to get user: %w", err)
	}

	return s.employeeReport(ctx, orgID, userID, userData.Name, query)
}

// GetEmployeeMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeMonthlyReport(ctx context.Context, query report.ReportQuery) (report.EmployeeReport, error) {
	if err := query.Validate(); err != nil {
		return report.EmployeeReport{}, err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, query.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.EmployeeReport{}, report.ErrReportSubjectNotFound
		}
		return report.EmployeeReport{}, fmt.Errorf("failed to get user: %w", err)
	}
	if userData.OrgID != orgID {
		return report.EmployeeReport{}, report.ErrReportSubjectNotFound
	}

	return s.employeeReport(ctx, orgID, query.UserID, userData.Name, query)
}

func (s *ReportServiceImpl) orgReport(ctx context.Context, orgID string, query report.ReportQuery) (report.OrgReport, error) {
	from, to := monthRange(query.Year, query.Month)

	punches, err := s.PunchRepository.ListByOrgDateRange(ctx, orgID, from, to)
	if err != nil {
		return report.OrgReport{}, fmt.Errorf("failed to list punches: %w", err)
	}
	adjustments, err := s.AdjustmentRepository.ListApprovedByOrgDateRange(ctx, orgID, from, to)
	if err != nil {
		return report.OrgReport{}, fmt.Errorf("failed to list adjustments: %w", err)
	}
	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return report.OrgReport{}, fmt.Errorf("failed to list users: %w", err)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })

	events := punch.ToLedgerEvents(punches)
	ledgerAdjustments := adjustment.ToLedgerAdjustments(adjustments)

	resp := report.OrgReport{
		Year:      query.Year,
		Month:     query.Month,
		Employees: make([]report.EmployeeReport, 0, len(users)),
	}
	for _, u := range users {
		if u.Status == user.StatusPendingApproval {
			continue
		}
		summary, warnings := s.ledger.Summarize(u.ID, events, ledgerAdjustments, query.Year, time.Month(query.Month+1))
		s.logWarnings(warnings)
		employeeReport := s.toEmployeeReport(summary, u.Name, query.Month, warnings)
		resp.TotalMs += employeeReport.TotalMs
		resp.Employees = append(resp.Employees, employeeReport)
	}

	return resp, nil
}

// GetOrgMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GetOrgMonthlyReport(ctx context.Context, query report.ReportQuery) (report.OrgReport, error) {
	if err := query.Validate(); err != nil {
		return report.OrgReport{}, err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return report.OrgReport{}, err
	}

	return s.orgReport(ctx, orgID, query)
}

// ExportCSV implements report.ReportService. The export is the raw punch
// stream for the month, one row per event, not the reconciled totals.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, query report.ReportQuery) (report.ExportFile, error) {
	if err := query.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return report.ExportFile{}, err
	}

	from, to := monthRange(query.Year, query.Month)
	punches, err := s.PunchRepository.ListByOrgDateRange(ctx, orgID, from, to)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to list punches: %w", err)
	}
	sort.Slice(punches, func(i, j int) bool { return punches[i].Timestamp < punches[j].Timestamp })

	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		i18n.T(ctx, "csv.date"),
		i18n.T(ctx, "csv.time"),
		i18n.T(ctx, "csv.employee"),
		i18n.T(ctx, "csv.action"),
		i18n.T(ctx, "csv.location"),
	}
	if err := w.Write(header); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv: %w", err)
	}
	for _, p := range punches {
		t := time.UnixMilli(p.Timestamp).In(s.loc)
		row := []string{
			p.Date,
			t.Format("15:04:05"),
			names[p.UserID],
			p.Kind.String(),
			p.Location,
		}
		if err := w.Write(row); err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv: %w", err)
	}

	return report.ExportFile{
		Filename:    fmt.Sprintf("punches-%04d-%02d.csv", query.Year, query.Month+1),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

// ExportDoc implements report.ReportService. The document is
// Word-compatible HTML: every employee gets a section of per-week tables
// with a localized header and totals.
func (s *ReportServiceImpl) ExportDoc(ctx context.Context, query report.ReportQuery) (report.ExportFile, error) {
	if err := query.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return report.ExportFile{}, err
	}

	orgReport, err := s.orgReport(ctx, orgID, query)
	if err != nil {
		return report.ExportFile{}, err
	}

	monthName := i18n.T(ctx, fmt.Sprintf("month.%d", query.Month+1))
	title := i18n.T(ctx, "report.title", map[string]any{
		"Month": monthName,
		"Year":  query.Year,
	})

	var buf bytes.Buffer
	buf.WriteString("<html><head><meta charset=\"utf-8\"><style>")
	buf.WriteString("body{font-family:sans-serif}table{border-collapse:collapse;margin-bottom:16px}")
	buf.WriteString("td,th{border:1px solid #999;padding:4px 8px;text-align:left}")
	buf.WriteString("</style></head><body>")
	fmt.Fprintf(&buf, "<h1>%s</h1>", html.EscapeString(title))

	for _, emp := range orgReport.Employees {
		fmt.Fprintf(&buf, "<h2>%s: %s</h2>",
			html.EscapeString(i18n.T(ctx, "report.employee")),
			html.EscapeString(emp.UserName))

		for _, week := range emp.Weeks {
			if len(week.Days) == 0 {
				continue
			}
			weekTitle := i18n.T(ctx, "report.week", map[string]any{
				"Number": week.Index + 1,
				"Range":  week.Label,
			})
			fmt.Fprintf(&buf, "<h3>%s</h3>", html.EscapeString(weekTitle))
			fmt.Fprintf(&buf, "<table><tr><th>%s</th><th>%s</th><th>%s</th></tr>",
				html.EscapeString(i18n.T(ctx, "report.day")),
				html.EscapeString(i18n.T(ctx, "report.detail")),
				html.EscapeString(i18n.T(ctx, "report.hours")))
			for _, day := range week.Days {
				detail := day.Detail
				if detail == "" {
					detail = i18n.T(ctx, "report.no_activity")
				}
				fmt.Fprintf(&buf, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>",
					html.EscapeString(day.Date),
					html.EscapeString(detail),
					html.EscapeString(day.TotalHours))
			}
			buf.WriteString("</table>")
		}

		fmt.Fprintf(&buf, "<p><b>%s:</b> %s</p>",
			html.EscapeString(i18n.T(ctx, "report.total_hours")),
			html.EscapeString(emp.TotalHours))
		fmt.Fprintf(&buf, "<p><b>%s:</b> %d</p>",
			html.EscapeString(i18n.T(ctx, "report.days_worked")),
			emp.DaysWorked)
	}

	buf.WriteString("</body></html>")

	return report.ExportFile{
		Filename:    fmt.Sprintf("report-%04d-%02d.doc", query.Year, query.Month+1),
		ContentType: "application/msword",
		Data:        buf.Bytes(),
	}, nil
}

// GetDashboardStats implements report.ReportService.
func (s *ReportServiceImpl) GetDashboardStats(ctx context.Context) (report.DashboardStats, error) {
	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return report.DashboardStats{}, err
	}

	var stats report.DashboardStats

	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		switch u.Status {
		case user.StatusActive:
			stats.ActiveEmployees++
		case user.StatusPendingApproval:
			stats.PendingApprovals++
		}
	}

	today := time.Now().In(s.loc).Format("2006-01-02")
	punches, err := s.PunchRepository.ListByOrgDateRange(ctx, orgID, today, today)
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("failed to list punches: %w", err)
	}
	byUser := make(map[string][]timeledger.Event)
	for _, p := range punches {
		byUser[p.UserID] = append(byUser[p.UserID], p.ToLedgerEvent())
	}
	for _, events := range byUser {
		switch timeledger.LastStatus(events) {
		case timeledger.StatusWorking:
			stats.WorkingNow++
		case timeledger.StatusOnBreak:
			stats.OnBreakNow++
		}
	}

	pendingAdjustments, err := s.AdjustmentRepository.ListByOrg(ctx, orgID, adjustment.ListFilter{Status: string(adjustment.StatusPending)})
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("failed to list adjustments: %w", err)
	}
	stats.PendingAdjustments = len(pendingAdjustments)

	pendingLeaves, err := s.LeaveRepository.ListByOrg(ctx, orgID, leave.ListFilter{Status: string(leave.StatusPending)})
	if err != nil {
		return report.DashboardStats{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	stats.PendingLeaves = len(pendingLeaves)

	now := time.Now().In(s.loc)
	monthReport, err := s.orgReport(ctx, orgID, report.ReportQuery{Year: now.Year(), Month: int(now.Month()) - 1})
	if err != nil {
		return report.DashboardStats{}, err
	}
	stats.MonthTotalMs = monthReport.TotalMs

	return stats, nil
}
