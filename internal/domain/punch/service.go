package punch

import (
	"context"
)

type PunchService interface {
	RecordPunch(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)
	GetStatus(ctx context.Context) (StatusResponse, error)
	ListMyDay(ctx context.Context, date string) ([]PunchResponse, error)
}
