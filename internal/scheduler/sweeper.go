package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/upmon/upmon/internal/domain"
	"github.com/upmon/upmon/internal/probe"
	"github.com/upmon/upmon/internal/repo"
)

type SweeperConfig struct {
	Interval    time.Duration // pause between sweeps
	Backoff     time.Duration // pause after a failed check-list load
	Timeout     time.Duration // per-probe deadline
	Concurrency int           // probes in flight within one sweep
}

// Sweeper is the worker loop: load the active checks, probe each one,
// record the outcome, alert on transitions, sleep, repeat. A failure in one
// check's pipeline never stops the rest of the sweep, and the only thing
// that ends the loop is context cancellation.
type Sweeper struct {
	Logger     *zap.Logger
	Checks     repo.CheckStore
	Checker    probe.Checker
	Recorder   *Recorder
	Dispatcher *Dispatcher
	cfg        SweeperConfig
}

func NewSweeper(
	logger *zap.Logger,
	cs repo.CheckStore,
	checker probe.Checker,
	rec *Recorder,
	disp *Dispatcher,
	cfg SweeperConfig,
) *Sweeper {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 5 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Sweeper{
		Logger:     logger,
		Checks:     cs,
		Checker:    checker,
		Recorder:   rec,
		Dispatcher: disp,
		cfg:        cfg,
	}
}

// Run blocks until ctx is cancelled. An immediate sweep happens on start.
func (s *Sweeper) Run(ctx context.Context) {
	for {
		checks, err := s.Checks.ListActive(ctx)
		if err != nil {
			s.Logger.Warn("sweep_load_error", zap.Error(err))
			if !sleepCtx(ctx, s.cfg.Backoff) {
				s.Logger.Info("sweeper_stopped")
				return
			}
			continue
		}

		s.sweep(ctx, checks)

		if !sleepCtx(ctx, s.cfg.Interval) {
			s.Logger.Info("sweeper_stopped")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context, checks []domain.Check) {
	if len(checks) == 0 {
		return
	}

	sem := make(chan struct{}, s.cfg.Concurrency)
	var wg sync.WaitGroup

	for _, c := range checks {
		sem <- struct{}{}
		wg.Add(1)
		go func(c domain.Check) {
			defer func() { <-sem }()
			defer wg.Done()
			s.processCheck(ctx, c)
		}(c)
	}

	wg.Wait()
}

// processCheck runs one check through the probe → decide → record → alert
// pipeline. Every step past the probe is best-effort.
func (s *Sweeper) processCheck(ctx context.Context, c domain.Check) {
	cctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	out := s.Checker.Check(cctx, c.URL)
	next, changed := domain.Decide(c.LastStatus, out.Reachable)
	checkedAt := time.Now().UTC()

	s.Recorder.Record(ctx, &c, next, out, checkedAt)

	s.Logger.Debug("check_probed",
		zap.String("check_id", string(c.ID)),
		zap.String("url", c.URL),
		zap.String("status", string(next)),
		zap.Int("http_status", out.HTTPStatus),
		zap.Int64p("latency_ms", out.LatencyMS),
	)

	if changed {
		s.Logger.Info("status_change",
			zap.String("check", c.Name),
			zap.String("from", string(c.LastStatus)),
			zap.String("to", string(next)),
		)
		s.Dispatcher.Notify(ctx, c, c.LastStatus, next)
	}
}

// sleepCtx waits for d or until ctx is cancelled. Returns false on cancel.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
