// Package render converts vdom trees into HTML strings or streams.
//
// The renderer produces valid, secure HTML output:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Deterministic (sorted) attribute order
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	renderer := render.NewRenderer(render.Config{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.NewRenderer(render.Config{})
//	err := renderer.RenderToWriter(w, node)
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted using
// vdom.Raw nodes, but should only be used with trusted content.
package render
