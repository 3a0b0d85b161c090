// Package ui provides vangoui's presentational components.
//
// Every component is a plain struct with exported props and a
// Render() *vdom.VNode method. Class strings are computed from variant maps
// of utility-first (Tailwind) classes; no styles are generated at runtime.
//
//	btn := ui.Button{Label: "Save", Variant: ui.VariantPrimary}
//	html, _ := render.NewRenderer(render.Config{}).RenderToString(btn.Render())
//
// Components carry no state of their own. The one stateful collaborator is
// notify.Center, which Toaster projects into a toast viewport; see Toaster
// for the wiring.
package ui
