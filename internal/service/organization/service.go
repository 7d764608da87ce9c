package organization

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/organization"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type OrganizationServiceImpl struct {
	db *database.DB
	organization.OrganizationRepository
}

func NewOrganizationService(db *database.DB, orgRepository organization.OrganizationRepository) organization.OrganizationService {
	return &OrganizationServiceImpl{
		db:                     db,
		OrganizationRepository: orgRepository,
	}
}

func orgIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	orgID, _ := claims["org_id"].(string)
	return orgID, nil
}

func (s *OrganizationServiceImpl) getOrg(ctx context.Context) (organization.Organization, error) {
	orgID, err := orgIDFromContext(ctx)
	if err != nil {
		return organization.Organization{}, err
	}

	org, err := s.OrganizationRepository.GetByID(ctx, orgID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrgNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// GetMyOrg implements organization.OrganizationService.
func (s *OrganizationServiceImpl) GetMyOrg(ctx context.Context) (organization.OrganizationResponse, error) {
	org, err := s.getOrg(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	return organization.ToResponse(org), nil
}

// UpdateOrg implements organization.OrganizationService.
func (s *OrganizationServiceImpl) UpdateOrg(ctx context.Context, req organization.UpdateOrgRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	org, err := s.getOrg(ctx)
	if err != nil {
		return err
	}

	org.Name = req.Name
	org.VatID = req.VatID
	if err := s.OrganizationRepository.Update(ctx, org); err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}

	return nil
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

// RegenerateCode implements organization.OrganizationService. Invalidates
// the previous join code; employees already joined are unaffected.
func (s *OrganizationServiceImpl) RegenerateCode(ctx context.Context) (organization.OrganizationResponse, error) {
	org, err := s.getOrg(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	for attempt := 0; attempt < 5; attempt++ {
		code, err := randomOrgCode()
		if err != nil {
			return organization.OrganizationResponse{}, fmt.Errorf("failed to generate org code: %w", err)
		}
		taken, err := s.OrganizationRepository.ExistsByCode(ctx, code)
		if err != nil {
			return organization.OrganizationResponse{}, fmt.Errorf("failed to check org code: %w", err)
		}
		if taken {
			continue
		}
		if err := s.OrganizationRepository.UpdateCode(ctx, org.ID, code); err != nil {
			return organization.OrganizationResponse{}, fmt.Errorf("failed to update org code: %w", err)
		}
		org.Code = code
		return organization.ToResponse(org), nil
	}

	return organization.OrganizationResponse{}, fmt.Errorf("failed to generate a unique org code")
}

// GetSubscription implements organization.OrganizationService.
func (s *OrganizationServiceImpl) GetSubscription(ctx context.Context) (organization.SubscriptionResponse, error) {
	org, err := s.getOrg(ctx)
	if err != nil {
		return organization.SubscriptionResponse{}, err
	}

	resp := organization.SubscriptionResponse{
		Status: string(org.SubscriptionStatus),
		Usable: org.SubscriptionUsable(time.Now()),
	}
	if org.TrialEndsAt != nil {
		t := org.TrialEndsAt.Format("2006-01-02 15:04:05")
		resp.TrialEndsAt = &t
	}
	return resp, nil
}

// ActivateSubscription implements organization.OrganizationService.
func (s *OrganizationServiceImpl) ActivateSubscription(ctx context.Context) error {
	org, err := s.getOrg(ctx)
	if err != nil {
		return err
	}

	if err := s.OrganizationRepository.UpdateSubscription(ctx, org.ID, organization.SubscriptionActive); err != nil {
		return fmt.Errorf("failed to activate subscription: %w", err)
	}
	return nil
}

// CancelSubscription implements organization.OrganizationService.
func (s *OrganizationServiceImpl) CancelSubscription(ctx context.Context) error {
	org, err := s.getOrg(ctx)
	if err != nil {
		return err
	}

	if err := s.OrganizationRepository.UpdateSubscription(ctx, org.ID, organization.SubscriptionCancelled); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return nil
}
