package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/auth"
	"github.com/clockport/clockport-backend-go/internal/domain/notification"
	"github.com/clockport/clockport-backend-go/internal/domain/organization"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/clockport/clockport-backend-go/internal/pkg/email"
	"github.com/clockport/clockport-backend-go/internal/pkg/jwt"
	"github.com/clockport/clockport-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	organization.OrganizationRepository
	jwt.Service
	notificationService notification.NotificationService
	emailService        email.EmailService
	trialDays           int
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, orgRepository organization.OrganizationRepository, jwtService jwt.Service, notificationService notification.NotificationService, emailService email.EmailService, trialDays int) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		OrganizationRepository: orgRepository,
		Service:                jwtService,
		notificationService:    notificationService,
		emailService:           emailService,
		trialDays:              trialDays,
	}
}

// sendVerificationEmail delivers the code best-effort; account creation
// already succeeded and the code can be resent.
func (a *AuthServiceImpl) sendVerificationEmail(to, name, code string) {
	if err := a.emailService.SendVerificationCode(to, name, code); err != nil {
		slog.Warn("failed to send verification email", "email", to, "error", err)
	}
}

const orgCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomOrgCode() (string, error) {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orgCodeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(orgCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func randomDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RegisterOrg implements auth.AuthService.
func (a *AuthServiceImpl) RegisterOrg(ctx context.Context, req auth.RegisterOrgRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrUserEmailExists
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := a.freshOrgCode(ctx)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	verificationCode, err := randomDigitCode()
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to generate verification code: %w", err)
	}

	trialEnd := time.Now().AddDate(0, 0, a.trialDays)

	var resp auth.RegisterResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		var vatID *string
		if req.VatID != "" {
			vatID = &req.VatID
		}
		org, err := a.OrganizationRepository.Create(txCtx, organization.Organization{
			Name:               req.OrgName,
			VatID:              vatID,
			Code:               code,
			SubscriptionStatus: organization.SubscriptionTrial,
			TrialEndsAt:        &trialEnd,
		})
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		admin, err := a.UserRepository.Create(txCtx, user.User{
			OrgID:            org.ID,
			Name:             req.Name,
			Email:            req.Email,
			Role:             user.RoleAdmin,
			PasswordHash:     passwordHash,
			Status:           user.StatusActive,
			VerificationCode: &verificationCode,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		resp = auth.RegisterResponse{
			UserID:  admin.ID,
			OrgID:   org.ID,
			OrgCode: org.Code,
		}
		return nil
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	a.sendVerificationEmail(req.Email, req.Name, verificationCode)

	return resp, nil
}

func (a *AuthServiceImpl) freshOrgCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := randomOrgCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate org code: %w", err)
		}
		taken, err := a.OrganizationRepository.ExistsByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check org code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique org code")
}

// JoinOrg implements auth.AuthService.
func (a *AuthServiceImpl) JoinOrg(ctx context.Context, req auth.JoinOrgRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	org, err := a.OrganizationRepository.GetByCode(ctx, req.OrgCode)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RegisterResponse{}, auth.ErrInvalidOrgCode
		}
		return auth.RegisterResponse{}, fmt.Errorf("failed to get organization by code: %w", err)
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrUserEmailExists
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationCode, err := randomDigitCode()
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to generate verification code: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		OrgID:            org.ID,
		Name:             req.Name,
		Email:            req.Email,
		TaxID:            req.TaxID,
		Role:             user.RoleEmployee,
		PasswordHash:     passwordHash,
		Status:           user.StatusPendingApproval,
		VerificationCode: &verificationCode,
	})
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.notificationService.NotifyOrgAdmins(ctx, org.ID, notification.Notification{
		OrgID: org.ID,
		Type:  notification.TypeUserJoined,
		Title: "New employee joined",
		Body:  fmt.Sprintf("%s joined with code %s and is awaiting approval", created.Name, org.Code),
		RefID: &created.ID,
	})

	a.sendVerificationEmail(created.Email, created.Name, verificationCode)

	return auth.RegisterResponse{UserID: created.ID, OrgID: org.ID}, nil
}

// VerifyEmail implements auth.AuthService.
func (a *AuthServiceImpl) VerifyEmail(ctx context.Context, req auth.VerifyEmailRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.ErrInvalidVerificationCode
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.EmailVerified {
		return auth.ErrAlreadyVerified
	}
	if userData.VerificationCode == nil || *userData.VerificationCode != req.Code {
		return auth.ErrInvalidVerificationCode
	}

	if err := a.UserRepository.MarkEmailVerified(ctx, userData.ID); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	return nil
}

// ResendVerification implements auth.AuthService.
func (a *AuthServiceImpl) ResendVerification(ctx context.Context, req auth.ResendVerificationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Do not reveal whether the address exists.
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.EmailVerified {
		return auth.ErrAlreadyVerified
	}

	code, err := randomDigitCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	if err := a.UserRepository.SetVerificationCode(ctx, userData.ID, &code); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	a.sendVerificationEmail(userData.Email, userData.Name, code)

	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	switch {
	case !userData.EmailVerified:
		return auth.LoginResponse{}, user.ErrEmailNotVerified
	case userData.Status == user.StatusBlocked:
		return auth.LoginResponse{}, user.ErrUserBlocked
	case userData.Status == user.StatusPendingApproval:
		return auth.LoginResponse{}, user.ErrUserNotApproved
	}

	return a.issueTokens(userData)
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.LoginResponse, error) {
	accessToken, _, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.OrgID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, _, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       userData.ID,
		OrgID:        userData.OrgID,
		Name:         userData.Name,
		Role:         string(userData.Role),
	}, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if refreshToken == "" {
		return auth.LoginResponse{}, auth.ErrInvalidRefreshToken
	}
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrTokenRevoked
	}

	token, err := a.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidRefreshToken
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidRefreshToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.LoginResponse{}, auth.ErrInvalidRefreshToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.LoginResponse{}, auth.ErrInvalidRefreshToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if userData.Status != user.StatusActive {
		return auth.LoginResponse{}, user.ErrUserBlocked
	}

	// One refresh token, one session extension.
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}

// ForgotPassword implements auth.AuthService.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Do not reveal whether the address exists.
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	code, err := randomDigitCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}
	if err := a.UserRepository.SetResetCode(ctx, userData.ID, &code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if err := a.emailService.SendPasswordResetCode(userData.Email, userData.Name, code); err != nil {
		slog.Warn("failed to send password reset email", "email", userData.Email, "error", err)
	}

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.ErrInvalidResetCode
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.ResetCode == nil || *userData.ResetCode != req.Code {
		return auth.ErrInvalidResetCode
	}

	passwordHash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.UserRepository.UpdatePassword(txCtx, userData.ID, passwordHash); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := a.UserRepository.SetResetCode(txCtx, userData.ID, nil); err != nil {
			return fmt.Errorf("failed to clear reset code: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}
