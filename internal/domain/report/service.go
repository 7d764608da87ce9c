package report

import (
	"context"
)

type ReportService interface {
	GetMyMonthlyReport(ctx context.Context, query ReportQuery) (EmployeeReport, error)
	GetEmployeeMonthlyReport(ctx context.Context, query ReportQuery) (EmployeeReport, error)
	GetOrgMonthlyReport(ctx context.Context, query ReportQuery) (OrgReport, error)
	ExportCSV(ctx context.Context, query ReportQuery) (ExportFile, error)
	ExportDoc(ctx context.Context, query ReportQuery) (ExportFile, error)
	GetDashboardStats(ctx context.Context) (DashboardStats, error)
}
