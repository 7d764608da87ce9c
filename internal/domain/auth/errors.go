package auth

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrInvalidResetCode        = errors.New("invalid reset code")
	ErrAlreadyVerified         = errors.New("email already verified")
	ErrInvalidOrgCode          = errors.New("invalid organization code")
	ErrInvalidToken            = errors.New("invalid token")
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")
	ErrTokenRevoked            = errors.New("token has been revoked")
)
