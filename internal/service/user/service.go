package user

import (
	"context"
	"fmt"

	"github.com/clockport/clockport-backend-go/internal/domain/notification"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	notificationService notification.NotificationService
}

func NewUserService(db *database.DB, userRepository user.UserRepository, notificationService notification.NotificationService) user.UserService {
	return &UserServiceImpl{
		db:                  db,
		UserRepository:      userRepository,
		notificationService: notificationService,
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

// GetMe implements user.UserService.
func (s *UserServiceImpl) GetMe(ctx context.Context) (user.UserResponse, error) {
	_, userID, err := claimsFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user.ToResponse(userData), nil
}

// ListByOrg implements user.UserService.
func (s *UserServiceImpl) ListByOrg(ctx context.Context) ([]user.UserResponse, error) {
	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// ListPendingApproval implements user.UserService.
func (s *UserServiceImpl) ListPendingApproval(ctx context.Context) ([]user.UserResponse, error) {
	responses, err := s.ListByOrg(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]user.UserResponse, 0)
	for _, u := range responses {
		if u.Status == string(user.StatusPendingApproval) {
			pending = append(pending, u)
		}
	}
	return pending, nil
}

func (s *UserServiceImpl) getOrgUser(ctx context.Context, orgID, userID string) (user.User, error) {
	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if userData.OrgID != orgID {
		return user.User{}, user.ErrUserNotFound
	}
	return userData, nil
}

// ApproveUser implements user.UserService.
func (s *UserServiceImpl) ApproveUser(ctx context.Context, userID string) error {
	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	userData, err := s.getOrgUser(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if userData.Status != user.StatusPendingApproval {
		return user.ErrInvalidStatusChange
	}

	if err := s.UserRepository.UpdateStatus(ctx, userID, user.StatusActive); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	s.notificationService.Notify(ctx, notification.Notification{
		OrgID:  orgID,
		UserID: userID,
		Type:   notification.TypeUserApproved,
		Title:  "Account approved",
		Body:   "Your account has been approved. You can now clock in.",
	})

	return nil
}

// UpdateStatus implements user.UserService.
func (s *UserServiceImpl) UpdateStatus(ctx context.Context, req user.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	orgID, actorID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	if req.UserID == actorID {
		return user.ErrInvalidStatusChange
	}

	if _, err := s.getOrgUser(ctx, orgID, req.UserID); err != nil {
		return err
	}

	if err := s.UserRepository.UpdateStatus(ctx, req.UserID, user.Status(req.Status)); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

// UpdateContract implements user.UserService.
func (s *UserServiceImpl) UpdateContract(ctx context.Context, req user.UpdateContractRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.getOrgUser(ctx, orgID, req.UserID); err != nil {
		return err
	}

	var endDate *string
	if req.ContractType == string(user.ContractFixedTerm) {
		endDate = req.EndDate
	}
	if err := s.UserRepository.UpdateContract(ctx, req.UserID, user.ContractType(req.ContractType), endDate); err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}

	return nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	orgID, actorID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	if userID == actorID {
		return user.ErrInvalidStatusChange
	}

	if _, err := s.getOrgUser(ctx, orgID, userID); err != nil {
		return err
	}

	if err := s.UserRepository.Delete(ctx, userID, orgID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// DeleteMe implements user.UserService. Self-service account removal;
// punch logs, adjustments and leaves are removed with the row.
func (s *UserServiceImpl) DeleteMe(ctx context.Context) error {
	orgID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.UserRepository.Delete(ctx, userID, orgID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
