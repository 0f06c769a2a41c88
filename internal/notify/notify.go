package notify

import "context"

// Notifier delivers one alert message. Implementations are best-effort
// transports; the dispatcher decides what to do with a returned error.
type Notifier interface {
	Send(ctx context.Context, title, text string) error
}

// Multi fans a message out to every configured sender. Nil entries are
// skipped so unconfigured transports can be passed in directly, and a
// cancelled context stops the fan-out early.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, title, text string) error {
	var firstErr error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			break
		}
		if err := n.Send(ctx, title, text); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
