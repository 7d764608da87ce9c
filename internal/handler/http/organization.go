package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockport/clockport-backend-go/internal/domain/organization"
	"github.com/clockport/clockport-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	RegenerateCode(w http.ResponseWriter, r *http.Request)
	GetSubscription(w http.ResponseWriter, r *http.Request)
	ActivateSubscription(w http.ResponseWriter, r *http.Request)
	CancelSubscription(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	orgService organization.OrganizationService
}

func NewOrganizationHandler(orgService organization.OrganizationService) OrganizationHandler {
	return &OrganizationHandlerImpl{orgService: orgService}
}

// Get implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orgService.GetMyOrg(r.Context())
	if err != nil {
		slog.Error("GetMyOrg service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Update implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOrg decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.orgService.UpdateOrg(r.Context(), req); err != nil {
		slog.Error("UpdateOrg service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Organization updated", nil)
}

// RegenerateCode implements OrganizationHandler.
func (h *OrganizationHandlerImpl) RegenerateCode(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orgService.RegenerateCode(r.Context())
	if err != nil {
		slog.Error("RegenerateCode service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Join code regenerated", resp)
}

// GetSubscription implements OrganizationHandler.
func (h *OrganizationHandlerImpl) GetSubscription(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orgService.GetSubscription(r.Context())
	if err != nil {
		slog.Error("GetSubscription service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ActivateSubscription implements OrganizationHandler.
func (h *OrganizationHandlerImpl) ActivateSubscription(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.ActivateSubscription(r.Context()); err != nil {
		slog.Error("ActivateSubscription service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Subscription activated", nil)
}

// CancelSubscription implements OrganizationHandler.
func (h *OrganizationHandlerImpl) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.CancelSubscription(r.Context()); err != nil {
		slog.Error("CancelSubscription service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Subscription cancelled", nil)
}
