package scheduler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/upmon/upmon/internal/domain"
	"github.com/upmon/upmon/internal/notify"
)

// Dispatcher sends an alert when a check's status flips. Delivery is
// best-effort: send failures are logged and swallowed, and a nil Notifier
// makes dispatch a no-op rather than an error.
type Dispatcher struct {
	Logger   *zap.Logger
	Notifier notify.Notifier
}

func NewDispatcher(logger *zap.Logger, n notify.Notifier) *Dispatcher {
	return &Dispatcher{Logger: logger, Notifier: n}
}

func (d *Dispatcher) Notify(ctx context.Context, c domain.Check, prev, next domain.Status) {
	if d.Notifier == nil {
		return
	}

	title := "🔴 Check DOWN"
	if next == domain.StatusUp {
		title = "🟢 Check UP"
	}
	text := fmt.Sprintf("%s\n%s -> %s\n%s", c.Name, prev, next, c.URL)

	if err := d.Notifier.Send(ctx, title, text); err != nil {
		d.Logger.Warn("alert_send_error",
			zap.String("check_id", string(c.ID)),
			zap.String("check", c.Name),
			zap.Error(err),
		)
		return
	}
	d.Logger.Info("alert_sent",
		zap.String("check_id", string(c.ID)),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
	)
}
