package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/organization"
)

// SubscriptionJobs contains subscription-related cron jobs
type SubscriptionJobs struct {
	orgRepository organization.OrganizationRepository
}

// NewSubscriptionJobs creates subscription cron jobs
func NewSubscriptionJobs(orgRepository organization.OrganizationRepository) *SubscriptionJobs {
	return &SubscriptionJobs{
		orgRepository: orgRepository,
	}
}

// RegisterJobs registers all subscription-related cron jobs
func (j *SubscriptionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(
		"expire_lapsed_trials",
		1*time.Hour,
		j.ExpireLapsedTrials,
	)
}

// ExpireLapsedTrials moves trial organizations whose trial period ended
// to EXPIRED. Reads compute usability on the fly; this keeps the stored
// status in sync for reporting and billing exports.
func (j *SubscriptionJobs) ExpireLapsedTrials(ctx context.Context) error {
	n, err := j.orgRepository.ExpireLapsedTrials(ctx, time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("Expired lapsed trials", "count", n)
	}
	return nil
}
