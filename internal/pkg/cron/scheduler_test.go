package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clockport/clockport-backend-go/internal/domain/organization"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnceExecutesEveryJob(t *testing.T) {
	s := NewScheduler()

	var failing, healthy atomic.Int32
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		failing.Add(1)
		return errors.New("boom")
	})
	s.AddJob("healthy", time.Hour, func(ctx context.Context) error {
		healthy.Add(1)
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), failing.Load())
	assert.Equal(t, int32(1), healthy.Load(), "a failing job must not stop later jobs")

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), healthy.Load())
}

func TestScheduler_StartRunsJobImmediately(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on scheduler start")
	}
}

type recordingOrgRepository struct {
	expired int64
	calls   atomic.Int32
}

func (r *recordingOrgRepository) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	return organization.Organization{}, nil
}

func (r *recordingOrgRepository) GetByCode(ctx context.Context, code string) (organization.Organization, error) {
	return organization.Organization{}, nil
}

func (r *recordingOrgRepository) Create(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	return org, nil
}

func (r *recordingOrgRepository) Update(ctx context.Context, org organization.Organization) error {
	return nil
}

func (r *recordingOrgRepository) UpdateCode(ctx context.Context, id, code string) error {
	return nil
}

func (r *recordingOrgRepository) UpdateSubscription(ctx context.Context, id string, status organization.SubscriptionStatus) error {
	return nil
}

func (r *recordingOrgRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

func (r *recordingOrgRepository) ExpireLapsedTrials(ctx context.Context, now time.Time) (int64, error) {
	r.calls.Add(1)
	return r.expired, nil
}

func TestSubscriptionJobs_RunOnceSweepsLapsedTrials(t *testing.T) {
	repo := &recordingOrgRepository{expired: 2}

	s := NewScheduler()
	NewSubscriptionJobs(repo).RegisterJobs(s)
	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), repo.calls.Load())
}
