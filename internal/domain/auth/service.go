package auth

import (
	"context"
)

type AuthService interface {
	RegisterOrg(ctx context.Context, req RegisterOrgRequest) (RegisterResponse, error)
	JoinOrg(ctx context.Context, req JoinOrgRequest) (RegisterResponse, error)
	VerifyEmail(ctx context.Context, req VerifyEmailRequest) error
	ResendVerification(ctx context.Context, req ResendVerificationRequest) error
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
