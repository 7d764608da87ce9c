package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/auth"
	"github.com/clockport/clockport-backend-go/internal/handler/http/response"
	"github.com/clockport/clockport-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	RegisterOrg(w http.ResponseWriter, r *http.Request)
	JoinOrg(w http.ResponseWriter, r *http.Request)
	VerifyEmail(w http.ResponseWriter, r *http.Request)
	ResendVerification(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// RegisterOrg implements AuthHandler.
func (a *AuthHandlerImpl) RegisterOrg(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterOrg decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.authService.RegisterOrg(r.Context(), req)
	if err != nil {
		slog.Error("RegisterOrg service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Organization registered, verify your email to continue", resp)
}

// JoinOrg implements AuthHandler.
func (a *AuthHandlerImpl) JoinOrg(w http.ResponseWriter, r *http.Request) {
	var req auth.JoinOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("JoinOrg decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.authService.JoinOrg(r.Context(), req)
	if err != nil {
		slog.Error("JoinOrg service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Joined organization, verify your email and wait for approval", resp)
}

// VerifyEmail implements AuthHandler.
func (a *AuthHandlerImpl) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("VerifyEmail decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.VerifyEmail(r.Context(), req); err != nil {
		slog.Error("VerifyEmail service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email verified", nil)
}

// ResendVerification implements AuthHandler.
func (a *AuthHandlerImpl) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req auth.ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ResendVerification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.ResendVerification(r.Context(), req); err != nil {
		slog.Error("ResendVerification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Verification code sent", nil)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.authService.Login(r.Context(), req)
	if err != nil {
		slog.Warn("Login failed", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, resp.RefreshToken)
	response.SuccessWithMessage(w, "Login successful", resp)
}

func (a *AuthHandlerImpl) setRefreshCookie(w http.ResponseWriter, refreshToken string) {
	// Cookie lifetime mirrors the refresh token's own expiry claim.
	expiresAt := time.Now().Add(7 * 24 * time.Hour).Unix()
	http.SetCookie(w, a.jwtService.RefreshTokenCookie(refreshToken, expiresAt))
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidRefreshToken)
		return
	}

	resp, err := a.authService.RefreshToken(r.Context(), cookie.Value)
	if err != nil {
		slog.Warn("RefreshToken failed", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, resp.RefreshToken)
	response.SuccessWithMessage(w, "Token refreshed", resp)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		if err := a.authService.Logout(r.Context(), cookie.Value); err != nil {
			slog.Error("Logout service error", "error", err)
		}
	}

	expired := a.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out", nil)
}

// ForgotPassword implements AuthHandler.
func (a *AuthHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ForgotPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.ForgotPassword(r.Context(), req); err != nil {
		slog.Error("ForgotPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Always succeed to prevent email enumeration.
	response.SuccessWithMessage(w, "If the address exists, a reset code has been sent", nil)
}

// ResetPassword implements AuthHandler.
func (a *AuthHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ResetPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.ResetPassword(r.Context(), req); err != nil {
		slog.Error("ResetPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password has been reset", nil)
}
