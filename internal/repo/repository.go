package repo

import (
	"context"
	"time"

	"github.com/upmon/upmon/internal/domain"
)

// Ports (interfaces) — swap in any DB adapter later.

type CheckStore interface {
	Add(ctx context.Context, c *domain.Check) error
	List(ctx context.Context) ([]domain.Check, error)
	ListActive(ctx context.Context) ([]domain.Check, error)
	Get(ctx context.Context, id domain.CheckID) (*domain.Check, error)
	// UpdateStatus refreshes the cached last_status/last_checked_at fields.
	// Independent of ResultStore.Append on purpose; see Recorder.
	UpdateStatus(ctx context.Context, id domain.CheckID, status domain.Status, checkedAt time.Time) error
}

type ResultStore interface {
	Append(ctx context.Context, r *domain.CheckResult) error
	// ListByCheck returns a check's history newest-first.
	ListByCheck(ctx context.Context, id domain.CheckID) ([]domain.CheckResult, error)
	LastByCheck(ctx context.Context, id domain.CheckID) (*domain.CheckResult, error)
}
