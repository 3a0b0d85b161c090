package notify

import "context"

// ctxKey is the context key for a Center.
type ctxKey struct{}

// NewContext returns a context carrying the given Center.
//
// The Center itself is constructed once at startup and handed to a root
// scope; the context plumbing exists for request-scoped code paths that
// cannot take a constructor argument.
func NewContext(ctx context.Context, center *Center) context.Context {
	return context.WithValue(ctx, ctxKey{}, center)
}

// FromContext returns the Center carried by ctx.
//
// Panics if the context carries no Center. Reaching a notification access
// point without a Center wired in is a programming error, and the loud
// failure here is the guard for it.
func FromContext(ctx context.Context) *Center {
	center, ok := ctx.Value(ctxKey{}).(*Center)
	if !ok {
		panic("notify: context carries no Center; wrap it with notify.NewContext first")
	}
	return center
}

// FromContextOK returns the Center carried by ctx, or nil and false when
// none is present.
func FromContextOK(ctx context.Context) (*Center, bool) {
	center, ok := ctx.Value(ctxKey{}).(*Center)
	return center, ok
}
