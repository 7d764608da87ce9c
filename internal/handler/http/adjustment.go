package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockport/clockport-backend-go/internal/domain/adjustment"
	"github.com/clockport/clockport-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListOrg(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type AdjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &AdjustmentHandlerImpl{adjustmentService: adjustmentService}
}

func adjustmentFilterFromQuery(r *http.Request) adjustment.ListFilter {
	q := r.URL.Query()
	return adjustment.ListFilter{
		Status: q.Get("status"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}
}

// Create implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAdjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.adjustmentService.CreateAdjustment(r.Context(), req)
	if err != nil {
		slog.Error("CreateAdjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Adjustment requested", resp)
}

// ListMine implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.adjustmentService.ListMyAdjustments(r.Context(), adjustmentFilterFromQuery(r))
	if err != nil {
		slog.Error("ListMyAdjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListOrg implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) ListOrg(w http.ResponseWriter, r *http.Request) {
	resp, err := h.adjustmentService.ListOrgAdjustments(r.Context(), adjustmentFilterFromQuery(r))
	if err != nil {
		slog.Error("ListOrgAdjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Approve implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.adjustmentService.ApproveAdjustment(r.Context(), id); err != nil {
		slog.Error("ApproveAdjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Adjustment approved", nil)
}

// Reject implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req adjustment.RejectAdjustmentRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	req.AdjustmentID = chi.URLParam(r, "id")

	if err := h.adjustmentService.RejectAdjustment(r.Context(), req); err != nil {
		slog.Error("RejectAdjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Adjustment rejected", nil)
}
