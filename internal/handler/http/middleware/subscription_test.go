package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/organization"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrgRepository struct {
	org organization.Organization
	err error
}

func (s *stubOrgRepository) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	return s.org, s.err
}

func (s *stubOrgRepository) GetByCode(ctx context.Context, code string) (organization.Organization, error) {
	return organization.Organization{}, nil
}

func (s *stubOrgRepository) Create(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	return org, nil
}

func (s *stubOrgRepository) Update(ctx context.Context, org organization.Organization) error {
	return nil
}

func (s *stubOrgRepository) UpdateCode(ctx context.Context, id, code string) error {
	return nil
}

func (s *stubOrgRepository) UpdateSubscription(ctx context.Context, id string, status organization.SubscriptionStatus) error {
	return nil
}

func (s *stubOrgRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

func (s *stubOrgRepository) ExpireLapsedTrials(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func claimsContext(t *testing.T, orgID string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": "u-1",
		"org_id":  orgID,
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func serveWithOrg(t *testing.T, org organization.Organization, gate func(*SubscriptionMiddleware) func(http.Handler) http.Handler) *httptest.ResponseRecorder {
	t.Helper()

	mw := NewSubscriptionMiddleware(&stubOrgRepository{org: org})
	handler := gate(mw)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(claimsContext(t, org.ID))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func usableGate(mw *SubscriptionMiddleware) func(http.Handler) http.Handler {
	return mw.RequireUsableSubscription
}

func activeGate(mw *SubscriptionMiddleware) func(http.Handler) http.Handler {
	return mw.RequireActiveSubscription
}

func TestRequireUsableSubscription_TrialWithinWindowPasses(t *testing.T) {
	ends := time.Now().Add(24 * time.Hour)
	org := organization.Organization{
		ID:                 "org-1",
		SubscriptionStatus: organization.SubscriptionTrial,
		TrialEndsAt:        &ends,
	}

	rec := serveWithOrg(t, org, usableGate)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireUsableSubscription_ExpiredRejected(t *testing.T) {
	org := organization.Organization{
		ID:                 "org-1",
		SubscriptionStatus: organization.SubscriptionExpired,
	}

	rec := serveWithOrg(t, org, usableGate)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestRequireActiveSubscription_TrialRejected(t *testing.T) {
	ends := time.Now().Add(24 * time.Hour)
	org := organization.Organization{
		ID:                 "org-1",
		SubscriptionStatus: organization.SubscriptionTrial,
		TrialEndsAt:        &ends,
	}

	// A trial in good standing still may not use paid-tier features.
	rec := serveWithOrg(t, org, activeGate)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestRequireActiveSubscription_ActivePasses(t *testing.T) {
	org := organization.Organization{
		ID:                 "org-1",
		SubscriptionStatus: organization.SubscriptionActive,
	}

	rec := serveWithOrg(t, org, activeGate)
	assert.Equal(t, http.StatusOK, rec.Code)
}
