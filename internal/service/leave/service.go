package leave

import (
	"context"
	"fmt"

	"github.com/clockport/clockport-backend-go/internal/domain/leave"
	"github.com/clockport/clockport-backend-go/internal/domain/notification"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	user.UserRepository
	notificationService notification.NotificationService
}

func NewLeaveService(db *database.DB, leaveRepository leave.LeaveRepository, userRepository user.UserRepository, notificationService notification.NotificationService) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                  db,
		LeaveRepository:     leaveRepository,
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

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	orgID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	overlapping, err := s.LeaveRepository.ExistsOverlapping(ctx, userID, req.StartDate, req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		OrgID:     orgID,
		UserID:    userID,
		Type:      leave.Type(req.Type),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err == nil {
		s.notificationService.NotifyOrgAdmins(ctx, orgID, notification.Notification{
			OrgID: orgID,
			Type:  notification.TypeLeaveRequested,
			Title: "Leave requested",
			Body:  fmt.Sprintf("%s requested %s leave from %s to %s", userData.Name, created.Type, created.StartDate, created.EndDate),
			RefID: &created.ID,
		})
	}

	return leave.ToResponse(created), nil
}

// ListMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyLeaves(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	_, userID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, nil
}

// ListOrgLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListOrgLeaves(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.ListByOrg(ctx, orgID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp := leave.ToResponse(l)
		resp.UserName = names[l.UserID]
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *LeaveServiceImpl) review(ctx context.Context, requestID string, status leave.Status) error {
	orgID, reviewerID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := s.LeaveRepository.GetByID(ctx, requestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to get leave request: %w", err)
	}
	if req.OrgID != orgID {
		return leave.ErrLeaveNotFound
	}
	if req.Status != leave.StatusPending {
		return leave.ErrAlreadyReviewed
	}

	if err := s.LeaveRepository.SetStatus(ctx, requestID, status, &reviewerID); err != nil {
		return fmt.Errorf("failed to review leave request: %w", err)
	}

	verdict := "approved"
	if status == leave.StatusRejected {
		verdict = "rejected"
	}
	s.notificationService.Notify(ctx, notification.Notification{
		OrgID:  orgID,
		UserID: req.UserID,
		Type:   notification.TypeLeaveReviewed,
		Title:  "Leave request reviewed",
		Body:   fmt.Sprintf("Your leave from %s to %s was %s", req.StartDate, req.EndDate, verdict),
		RefID:  &req.ID,
	})

	return nil
}

// ApproveLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, requestID string) error {
	return s.review(ctx, requestID, leave.StatusApproved)
}

// RejectLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeave(ctx context.Context, req leave.RejectLeaveRequest) error {
	return s.review(ctx, req.RequestID, leave.StatusRejected)
}

// CancelLeave implements leave.LeaveService. Only the requester may cancel,
// and only while the request is still pending.
func (s *LeaveServiceImpl) CancelLeave(ctx context.Context, requestID string) error {
	_, userID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	req, err := s.LeaveRepository.GetByID(ctx, requestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to get leave request: %w", err)
	}
	if req.UserID != userID {
		return leave.ErrNotRequestOwner
	}
	if req.Status != leave.StatusPending {
		return leave.ErrNotCancellable
	}

	if err := s.LeaveRepository.SetStatus(ctx, requestID, leave.StatusCancelled, nil); err != nil {
		return fmt.Errorf("failed to cancel leave request: %w", err)
	}

	return nil
}
