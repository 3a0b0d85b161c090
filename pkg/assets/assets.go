// Package assets resolves storage keys to image URLs for components like
// ui.Avatar.
//
// Components take a ready URL; a Resolver turns an abstract key ("users/42/
// avatar.png") into one. StaticResolver serves keys from a public path
// prefix; S3Resolver produces presigned GET URLs for private buckets.
package assets

import "context"

// Resolver turns a storage key into a fetchable URL.
type Resolver interface {
	// URL resolves key to a URL the browser can load.
	URL(ctx context.Context, key string) (string, error)
}

// StaticResolver prefixes keys with a public path.
//
//	resolver := assets.NewStaticResolver("/public/")
//	resolver.URL(ctx, "avatars/42.png") // "/public/avatars/42.png"
type StaticResolver struct {
	prefix string
}

// NewStaticResolver creates a Resolver that joins keys onto a path prefix.
// Common prefixes are "/public/" and a CDN base URL.
func NewStaticResolver(prefix string) *StaticResolver {
	return &StaticResolver{prefix: prefix}
}

// URL implements Resolver. It never fails.
func (r *StaticResolver) URL(_ context.Context, key string) (string, error) {
	return r.prefix + key, nil
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, key string) (string, error)

// URL implements Resolver.
func (f ResolverFunc) URL(ctx context.Context, key string) (string, error) {
	return f(ctx, key)
}
