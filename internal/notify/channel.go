package notify

import "context"

// Status is the outcome of a notification attempt
type Status int

const (
	StatusSent Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSent:
		return "sent"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event carries everything a channel may need to relay a panic alert
type Event struct {
	UserID      string
	Lat         float64
	Lng         float64
	AlertType   string
	Contacts    []string
	DeviceToken string
}

// Channel is one downstream notification capability. Notify never panics and
// returns StatusSkipped when the event lacks the data the channel needs; the
// caller decides what to do with failures.
type Channel interface {
	Name() string
	Notify(ctx context.Context, ev Event) (Status, error)
}

type disabledChannel struct {
	name string
}

// Disabled returns a channel that skips every event, used in place of a
// provider whose credentials are not configured.
func Disabled(name string) Channel {
	return &disabledChannel{name: name}
}

func (c *disabledChannel) Name() string { return c.name }

func (c *disabledChannel) Notify(ctx context.Context, ev Event) (Status, error) {
	return StatusSkipped, nil
}
