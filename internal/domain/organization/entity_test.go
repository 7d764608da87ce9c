package organization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionUsable(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		org  Organization
		want bool
	}{
		{"active", Organization{SubscriptionStatus: SubscriptionActive}, true},
		{"trial running", Organization{SubscriptionStatus: SubscriptionTrial, TrialEndsAt: &future}, true},
		{"trial without end date", Organization{SubscriptionStatus: SubscriptionTrial}, true},
		{"trial lapsed", Organization{SubscriptionStatus: SubscriptionTrial, TrialEndsAt: &past}, false},
		{"expired", Organization{SubscriptionStatus: SubscriptionExpired}, false},
		{"cancelled", Organization{SubscriptionStatus: SubscriptionCancelled, TrialEndsAt: &future}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.org.SubscriptionUsable(now))
		})
	}
}
