package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/punch"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/clockport/clockport-backend-go/internal/timeledger"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type PunchServiceImpl struct {
	db *database.DB
	punch.PunchRepository
	user.UserRepository
	ledger *timeledger.Ledger
	loc    *time.Location
}

func NewPunchService(db *database.DB, punchRepository punch.PunchRepository, userRepository user.UserRepository, ledger *timeledger.Ledger, loc *time.Location) punch.PunchService {
	if loc == nil {
		loc = time.UTC
	}
	return &PunchServiceImpl{
		db:              db,
		PunchRepository: punchRepository,
		UserRepository:  userRepository,
		ledger:          ledger,
		loc:             loc,
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

// RecordPunch implements punch.PunchService. Any kind is accepted in any
// order; reconciliation sorts out dangling opens when reports are built.
func (s *PunchServiceImpl) RecordPunch(ctx context.Context, req punch.RecordPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	orgID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return punch.PunchResponse{}, user.ErrUserNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.CanPunch() {
		return punch.PunchResponse{}, punch.ErrPunchNotAllowed
	}

	now := time.Now().In(s.loc)
	created, err := s.PunchRepository.Create(ctx, punch.PunchEvent{
		OrgID:     orgID,
		UserID:    userID,
		Kind:      timeledger.KindFromString(req.Kind),
		Timestamp: now.UnixMilli(),
		Date:      now.Format("2006-01-02"),
		Location:  req.Location,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to record punch: %w", err)
	}

	return punch.ToResponse(created), nil
}

// GetStatus implements punch.PunchService.
func (s *PunchServiceImpl) GetStatus(ctx context.Context) (punch.StatusResponse, error) {
	_, userID, err := claimsFromContext(ctx)
	if err != nil {
		return punch.StatusResponse{}, err
	}

	today := time.Now().In(s.loc).Format("2006-01-02")
	punches, err := s.PunchRepository.ListByUserDate(ctx, userID, today)
	if err != nil {
		return punch.StatusResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	events := punch.ToLedgerEvents(punches)
	days := s.ledger.BuildDayAggregates(events)

	resp := punch.StatusResponse{
		Status: timeledger.LastStatus(events).String(),
		Today:  make([]punch.PunchResponse, 0, len(punches)),
	}
	for _, p := range punches {
		resp.Today = append(resp.Today, punch.ToResponse(p))
	}
	if day, ok := days[today]; ok {
		resp.TodayMs = day.TotalMs
	}
	return resp, nil
}

// ListMyDay implements punch.PunchService.
func (s *PunchServiceImpl) ListMyDay(ctx context.Context, date string) ([]punch.PunchResponse, error) {
	query := punch.DayQuery{Date: date}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if date == "" {
		date = time.Now().In(s.loc).Format("2006-01-02")
	}

	_, userID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	punches, err := s.PunchRepository.ListByUserDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, punch.ToResponse(p))
	}
	return responses, nil
}
