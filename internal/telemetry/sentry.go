package telemetry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter forwards caught failures to the error collector. A Reporter built
// without a DSN is a safe no-op so the system tolerates an absent collector.
type Reporter struct {
	enabled bool
}

// Init configures the Sentry client. An empty DSN yields a disabled Reporter.
func Init(dsn string) (*Reporter, error) {
	if dsn == "" {
		return &Reporter{}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sentry: %w", err)
	}
	return &Reporter{enabled: true}, nil
}

// CaptureException reports an error. Nil reporters and nil errors are ignored.
func (r *Reporter) CaptureException(err error) {
	if r == nil || !r.enabled || err == nil {
		return
	}
	sentry.CaptureException(err)
}

// CaptureMessage reports a plain message
func (r *Reporter) CaptureMessage(msg string) {
	if r == nil || !r.enabled || msg == "" {
		return
	}
	sentry.CaptureMessage(msg)
}

// Flush drains buffered events, called on shutdown
func (r *Reporter) Flush() {
	if r == nil || !r.enabled {
		return
	}
	sentry.Flush(2 * time.Second)
}
