package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clockport/clockport-backend-go/internal/domain/report"
	"github.com/clockport/clockport-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	MyMonthly(w http.ResponseWriter, r *http.Request)
	EmployeeMonthly(w http.ResponseWriter, r *http.Request)
	OrgMonthly(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportDoc(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// queryFromRequest reads year and 0-based month from the query string.
func queryFromRequest(r *http.Request) report.ReportQuery {
	q := r.URL.Query()
	query := report.ReportQuery{Year: -1, Month: -1}
	if v, err := strconv.Atoi(q.Get("year")); err == nil {
		query.Year = v
	}
	if v, err := strconv.Atoi(q.Get("month")); err == nil {
		query.Month = v
	}
	return query
}

// MyMonthly implements ReportHandler.
func (h *ReportHandlerImpl) MyMonthly(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GetMyMonthlyReport(r.Context(), queryFromRequest(r))
	if err != nil {
		slog.Error("MyMonthly service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// EmployeeMonthly implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeMonthly(w http.ResponseWriter, r *http.Request) {
	query := queryFromRequest(r)
	query.UserID = chi.URLParam(r, "id")

	resp, err := h.reportService.GetEmployeeMonthlyReport(r.Context(), query)
	if err != nil {
		slog.Error("EmployeeMonthly service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// OrgMonthly implements ReportHandler.
func (h *ReportHandlerImpl) OrgMonthly(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GetOrgMonthlyReport(r.Context(), queryFromRequest(r))
	if err != nil {
		slog.Error("OrgMonthly service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ExportCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ExportCSV(r.Context(), queryFromRequest(r))
	if err != nil {
		slog.Error("ExportCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Filename, file.ContentType, file.Data)
}

// ExportDoc implements ReportHandler.
func (h *ReportHandlerImpl) ExportDoc(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ExportDoc(r.Context(), queryFromRequest(r))
	if err != nil {
		slog.Error("ExportDoc service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Filename, file.ContentType, file.Data)
}

// Dashboard implements ReportHandler.
func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GetDashboardStats(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
