package ui

import "github.com/vango-go/vangoui/pkg/vdom"

const badgeBase = "inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold transition-colors"

var badgeVariants = map[Variant]string{
	VariantDefault:     "border-transparent bg-zinc-900 text-zinc-50",
	VariantPrimary:     "border-transparent bg-blue-600 text-white",
	VariantSecondary:   "border-transparent bg-zinc-100 text-zinc-900",
	VariantDestructive: "border-transparent bg-red-600 text-white",
	VariantOutline:     "border-zinc-300 text-zinc-900",
	VariantGhost:       "border-transparent text-zinc-600",
}

// Badge is a small status descriptor.
type Badge struct {
	// Label is the badge text.
	Label string

	Variant Variant

	// Class is appended after the computed classes.
	Class string
}

// Render implements vdom.Component.
func (b Badge) Render() *vdom.VNode {
	variant := b.Variant
	if variant == "" {
		variant = VariantDefault
	}
	return vdom.Span(
		vdom.Class(cn(badgeBase, badgeVariants[variant], b.Class)),
		vdom.Text(b.Label),
	)
}
