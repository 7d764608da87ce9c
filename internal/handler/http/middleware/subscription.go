package middleware

import (
	"net/http"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/organization"
	"github.com/clockport/clockport-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// SubscriptionMiddleware gates write operations on the org's billing state.
type SubscriptionMiddleware struct {
	orgRepository organization.OrganizationRepository
}

func NewSubscriptionMiddleware(orgRepository organization.OrganizationRepository) *SubscriptionMiddleware {
	return &SubscriptionMiddleware{orgRepository: orgRepository}
}

// orgFromClaims resolves the caller's organization. On failure it writes
// the error response and reports false.
func (m *SubscriptionMiddleware) orgFromClaims(w http.ResponseWriter, r *http.Request) (organization.Organization, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "unauthorized")
		return organization.Organization{}, false
	}

	orgID, ok := claims["org_id"].(string)
	if !ok || orgID == "" {
		response.Forbidden(w, "no organization associated with this user")
		return organization.Organization{}, false
	}

	org, err := m.orgRepository.GetByID(r.Context(), orgID)
	if err != nil {
		response.HandleError(w, organization.ErrOrgNotFound)
		return organization.Organization{}, false
	}
	return org, true
}

// RequireUsableSubscription rejects requests from organizations whose trial
// has lapsed or whose subscription is expired or cancelled. Login and
// read-only report access are mounted outside this middleware so an admin
// can still see past data and reactivate.
func (m *SubscriptionMiddleware) RequireUsableSubscription(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		org, ok := m.orgFromClaims(w, r)
		if !ok {
			return
		}

		if !org.SubscriptionUsable(time.Now()) {
			response.HandleError(w, organization.ErrSubscriptionExpired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireActiveSubscription admits only organizations on a paid ACTIVE
// subscription. Trial orgs do not qualify; this guards paid-tier features
// such as the Word report export.
func (m *SubscriptionMiddleware) RequireActiveSubscription(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		org, ok := m.orgFromClaims(w, r)
		if !ok {
			return
		}

		if org.SubscriptionStatus != organization.SubscriptionActive {
			response.HandleError(w, organization.ErrSubscriptionInactive)
			return
		}

		next.ServeHTTP(w, r)
	})
}
