package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/upmon/upmon/internal/domain"
	"github.com/upmon/upmon/internal/probe"
	"github.com/upmon/upmon/internal/repo"
)

// Recorder persists a probe outcome: one immutable history row plus a
// refresh of the check's cached status fields. The two writes are
// independent; a crash between them leaves last_status stale for one sweep
// and the history row stays authoritative. Both writes are best-effort —
// a storage error is logged and the sweep moves on.
type Recorder struct {
	Logger  *zap.Logger
	Checks  repo.CheckStore
	Results repo.ResultStore
}

func NewRecorder(logger *zap.Logger, cs repo.CheckStore, rs repo.ResultStore) *Recorder {
	return &Recorder{Logger: logger, Checks: cs, Results: rs}
}

func (r *Recorder) Record(ctx context.Context, c *domain.Check, status domain.Status, out probe.Classification, checkedAt time.Time) {
	row := &domain.CheckResult{
		CheckID:   c.ID,
		CheckedAt: checkedAt,
		Status:    status,
		Error:     out.Error,
	}
	if out.HTTPStatus != 0 {
		v := out.HTTPStatus
		row.HTTPStatus = &v
	}
	if out.LatencyMS != nil {
		v := *out.LatencyMS
		row.LatencyMS = &v
	}

	if err := r.Results.Append(ctx, row); err != nil {
		r.Logger.Warn("result_append_error",
			zap.String("check_id", string(c.ID)),
			zap.String("url", c.URL),
			zap.Error(err),
		)
	}

	if err := r.Checks.UpdateStatus(ctx, c.ID, status, checkedAt); err != nil {
		r.Logger.Warn("status_update_error",
			zap.String("check_id", string(c.ID)),
			zap.Error(err),
		)
	}
}
