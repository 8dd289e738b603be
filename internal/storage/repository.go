package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateAnniversary(ctx context.Context, in Anniversary) error
	GetAnniversary(ctx context.Context, id string) (Anniversary, error)
	UpdateAnniversary(ctx context.Context, in Anniversary) error
	ListAnniversaries(ctx context.Context, filter ListFilter) ([]Anniversary, error)

	TrashAnniversary(ctx context.Context, id string, at time.Time) error
	RestoreAnniversary(ctx context.Context, id string) error
	PurgeAnniversary(ctx context.Context, id string) error
	PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
