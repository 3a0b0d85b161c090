package notify

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultDuration is applied to records added without an explicit duration.
const DefaultDuration = 5 * time.Second

// CenterOption configures a Center at construction time.
type CenterOption func(*centerConfig)

type centerConfig struct {
	clock           Clock
	defaultDuration time.Duration
	logger          *slog.Logger
	registry        prometheus.Registerer
	namespace       string
}

func defaultCenterConfig() centerConfig {
	return centerConfig{
		clock:           SystemClock(),
		defaultDuration: DefaultDuration,
		namespace:       "vangoui",
	}
}

// WithClock sets the time source. Tests use notifytest.NewClock.
func WithClock(clock Clock) CenterOption {
	return func(c *centerConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithDefaultDuration sets the duration applied to records added without an
// explicit WithDuration. Zero or negative makes records sticky by default.
func WithDefaultDuration(d time.Duration) CenterOption {
	return func(c *centerConfig) {
		c.defaultDuration = d
	}
}

// WithLogger enables debug logging of queue operations.
func WithLogger(logger *slog.Logger) CenterOption {
	return func(c *centerConfig) {
		c.logger = logger
	}
}

// WithRegistry enables Prometheus instrumentation, registering the Center's
// collectors with the given registerer.
func WithRegistry(registry prometheus.Registerer) CenterOption {
	return func(c *centerConfig) {
		c.registry = registry
	}
}

// WithNamespace sets the metrics namespace (default: "vangoui").
// Only meaningful together with WithRegistry.
func WithNamespace(namespace string) CenterOption {
	return func(c *centerConfig) {
		if namespace != "" {
			c.namespace = namespace
		}
	}
}

// Option mutates the fields of a record. Add applies options on top of the
// defaults; Update applies them on top of the existing record, so omitted
// fields keep their prior values (shallow merge).
type Option func(*Record)

// WithTitle replaces the title. Add takes the title positionally, so this
// is mainly useful with Update.
func WithTitle(title string) Option {
	return func(r *Record) {
		r.Title = title
	}
}

// WithDescription sets the secondary display text.
func WithDescription(description string) Option {
	return func(r *Record) {
		r.Description = description
	}
}

// WithKind sets the presentation kind.
func WithKind(kind Kind) Option {
	return func(r *Record) {
		r.Kind = kind
	}
}

// WithDuration sets the automatic expiry duration. Zero or negative means
// the record never expires on its own. Passed to Update, it changes the
// stored field only; the expiry timer scheduled at Add time is unaffected.
func WithDuration(d time.Duration) Option {
	return func(r *Record) {
		r.Duration = d
	}
}

// Sticky is shorthand for WithDuration(0): the record stays until removed.
func Sticky() Option {
	return WithDuration(0)
}

// WithAction attaches an action affordance to the record.
func WithAction(label string, do func()) Option {
	return func(r *Record) {
		r.Action = &Action{Label: label, Do: do}
	}
}

// NotCloseable hides the manual dismiss affordance on the render surface.
func NotCloseable() Option {
	return func(r *Record) {
		r.Closeable = false
	}
}
