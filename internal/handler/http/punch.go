package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockport/clockport-backend-go/internal/domain/punch"
	"github.com/clockport/clockport-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	ListDay(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Record implements PunchHandler.
func (h *PunchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req punch.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordPunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.punchService.RecordPunch(r.Context(), req)
	if err != nil {
		slog.Error("RecordPunch service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punch recorded", resp)
}

// Status implements PunchHandler.
func (h *PunchHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.punchService.GetStatus(r.Context())
	if err != nil {
		slog.Error("PunchStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListDay implements PunchHandler.
func (h *PunchHandlerImpl) ListDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	resp, err := h.punchService.ListMyDay(r.Context(), date)
	if err != nil {
		slog.Error("ListDay service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
