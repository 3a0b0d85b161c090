package notify

import "time"

// Kind classifies a notification for presentation purposes.
// The queue itself treats it as an opaque tag.
type Kind string

const (
	KindDefault Kind = "default"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// String returns the kind as a string.
func (k Kind) String() string {
	return string(k)
}

// Action is an optional affordance attached to a record.
// The queue never invokes Do; that is the render surface's job.
type Action struct {
	// Label is the text shown on the action button.
	Label string

	// Do is invoked when the user activates the action.
	Do func()
}

// Record is one queued notification.
type Record struct {
	// ID is assigned at creation, stable for the record's lifetime, and
	// never reused within the process.
	ID string

	// Title is the primary display text.
	Title string

	// Description is optional secondary display text.
	Description string

	// Kind tags the record for presentation (icon, color).
	Kind Kind

	// Duration controls automatic expiry. Zero or negative means the
	// record never expires on its own.
	Duration time.Duration

	// Action is an optional (label, callback) pair.
	Action *Action

	// Closeable reports whether the render surface may offer manual
	// dismissal. The queue does not enforce it.
	Closeable bool

	// CreatedAt is the clock reading when the record was added.
	CreatedAt time.Time
}

// Sticky reports whether the record is exempt from automatic expiry.
func (r Record) Sticky() bool {
	return r.Duration <= 0
}
