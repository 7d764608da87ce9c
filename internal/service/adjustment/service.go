package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/adjustment"
	"github.com/clockport/clockport-backend-go/internal/domain/notification"
	"github.com/clockport/clockport-backend-go/internal/domain/punch"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/clockport/clockport-backend-go/internal/timeledger"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type AdjustmentServiceImpl struct {
	db *database.DB
	adjustment.AdjustmentRepository
	punch.PunchRepository
	user.UserRepository
	notificationService notification.NotificationService
	loc                 *time.Location
}

func NewAdjustmentService(db *database.DB, adjustmentRepository adjustment.AdjustmentRepository, punchRepository punch.PunchRepository, userRepository user.UserRepository, notificationService notification.NotificationService, loc *time.Location) adjustment.AdjustmentService {
	if loc == nil {
		loc = time.UTC
	}
	return &AdjustmentServiceImpl{
		db:                   db,
		AdjustmentRepository: adjustmentRepository,
		PunchRepository:      punchRepository,
		UserRepository:       userRepository,
		notificationService:  notificationService,
		loc:                  loc,
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

// priorPunchTimes snapshots what the raw punches said for the day at
// request time. Returned values are HH:mm in the org's timezone, nil when
// the day has no matching punch.
func (s *AdjustmentServiceImpl) priorPunchTimes(ctx context.Context, userID, date string) (*string, *string, error) {
	punches, err := s.PunchRepository.ListByUserDate(ctx, userID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list punches: %w", err)
	}

	var clockIn, clockOut *string
	for _, p := range punches {
		formatted := time.UnixMilli(p.Timestamp).In(s.loc).Format("15:04")
		switch p.Kind {
		case timeledger.KindClockIn:
			if clockIn == nil {
				v := formatted
				clockIn = &v
			}
		case timeledger.KindClockOut:
			v := formatted
			clockOut = &v
		}
	}
	return clockIn, clockOut, nil
}

// CreateAdjustment implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) CreateAdjustment(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	orgID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	pending, err := s.AdjustmentRepository.ExistsPendingForDay(ctx, userID, req.Date)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to check pending adjustments: %w", err)
	}
	if pending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrPendingExistsForDay
	}

	priorIn, priorOut, err := s.priorPunchTimes(ctx, userID, req.Date)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	created, err := s.AdjustmentRepository.Create(ctx, adjustment.Adjustment{
		OrgID:         orgID,
		UserID:        userID,
		Date:          req.Date,
		ClockIn:       req.ClockIn,
		ClockOut:      req.ClockOut,
		BreakStart:    req.BreakStart,
		BreakEnd:      req.BreakEnd,
		Reason:        req.Reason,
		Status:        adjustment.StatusPending,
		PriorClockIn:  priorIn,
		PriorClockOut: priorOut,
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err == nil {
		s.notificationService.NotifyOrgAdmins(ctx, orgID, notification.Notification{
			OrgID: orgID,
			Type:  notification.TypeAdjustmentRequested,
			Title: "Shift correction requested",
			Body:  fmt.Sprintf("%s requested a correction for %s", userData.Name, req.Date),
			RefID: &created.ID,
		})
	}

	return adjustment.ToResponse(created), nil
}

// ListMyAdjustments implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) ListMyAdjustments(ctx context.Context, filter adjustment.ListFilter) ([]adjustment.AdjustmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	_, userID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.AdjustmentRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		responses = append(responses, adjustment.ToResponse(a))
	}
	return responses, nil
}

// ListOrgAdjustments implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) ListOrgAdjustments(ctx context.Context, filter adjustment.ListFilter) ([]adjustment.AdjustmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	orgID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.AdjustmentRepository.ListByOrg(ctx, orgID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	names, err := s.userNames(ctx, orgID)
	if err != nil {
		return nil, err
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		resp := adjustment.ToResponse(a)
		resp.UserName = names[a.UserID]
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *AdjustmentServiceImpl) userNames(ctx context.Context, orgID string) (map[string]string, error) {
	users, err := s.UserRepository.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

func (s *AdjustmentServiceImpl) review(ctx context.Context, adjustmentID string, status adjustment.Status) error {
	orgID, reviewerID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	adj, err := s.AdjustmentRepository.GetByID(ctx, adjustmentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return adjustment.ErrAdjustmentNotFound
		}
		return fmt.Errorf("failed to get adjustment: %w", err)
	}
	if adj.OrgID != orgID {
		return adjustment.ErrAdjustmentNotFound
	}
	if adj.Status != adjustment.StatusPending {
		return adjustment.ErrAlreadyReviewed
	}

	if err := s.AdjustmentRepository.SetReviewed(ctx, adjustmentID, status, reviewerID); err != nil {
		return fmt.Errorf("failed to review adjustment: %w", err)
	}

	verdict := "approved"
	if status == adjustment.StatusRejected {
		verdict = "rejected"
	}
	s.notificationService.Notify(ctx, notification.Notification{
		OrgID:  orgID,
		UserID: adj.UserID,
		Type:   notification.TypeAdjustmentReviewed,
		Title:  "Shift correction reviewed",
		Body:   fmt.Sprintf("Your correction for %s was %s", adj.Date, verdict),
		RefID:  &adj.ID,
	})

	return nil
}

// ApproveAdjustment implements adjustment.AdjustmentService. Approval is
// what makes the correction visible to reconciliation; until then the raw
// punches stand.
func (s *AdjustmentServiceImpl) ApproveAdjustment(ctx context.Context, adjustmentID string) error {
	return s.review(ctx, adjustmentID, adjustment.StatusApproved)
}

// RejectAdjustment implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) RejectAdjustment(ctx context.Context, req adjustment.RejectAdjustmentRequest) error {
	return s.review(ctx, req.AdjustmentID, adjustment.StatusRejected)
}
