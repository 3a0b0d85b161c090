package ui

import "github.com/vango-go/vangoui/pkg/vdom"

// Variant selects a component's visual treatment.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantPrimary     Variant = "primary"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
)

// Size selects a component's sizing scale.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// buttonBase is shared by every button variant.
const buttonBase = "inline-flex items-center justify-center gap-2 rounded-md font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50"

var buttonVariants = map[Variant]string{
	VariantDefault:     "bg-zinc-900 text-zinc-50 hover:bg-zinc-800",
	VariantPrimary:     "bg-blue-600 text-white hover:bg-blue-700",
	VariantSecondary:   "bg-zinc-100 text-zinc-900 hover:bg-zinc-200",
	VariantDestructive: "bg-red-600 text-white hover:bg-red-700",
	VariantOutline:     "border border-zinc-300 bg-transparent hover:bg-zinc-100",
	VariantGhost:       "bg-transparent hover:bg-zinc-100",
}

var buttonSizes = map[Size]string{
	SizeSmall:  "h-8 px-3 text-xs",
	SizeMedium: "h-10 px-4 text-sm",
	SizeLarge:  "h-12 px-6 text-base",
}

// Button is a clickable action trigger.
type Button struct {
	// Label is the button text.
	Label string

	Variant Variant
	Size    Size

	// Disabled renders the button inert.
	Disabled bool

	// Loading renders a spinner in place of interactivity.
	Loading bool

	// OnClick is bound as the click handler.
	OnClick func()

	// Class is appended after the computed classes.
	Class string
}

// Render implements vdom.Component.
func (b Button) Render() *vdom.VNode {
	variant := b.Variant
	if variant == "" {
		variant = VariantDefault
	}
	size := b.Size
	if size == "" {
		size = SizeMedium
	}

	return vdom.Button(
		vdom.Type("button"),
		vdom.Class(cn(buttonBase, buttonVariants[variant], buttonSizes[size], b.Class)),
		vdom.AttrIf(b.Disabled || b.Loading, vdom.Disabled()),
		vdom.AttrIf(b.Loading, vdom.AriaBusy(true)),
		vdom.If(b.Loading, spinnerIcon("h-4 w-4 animate-spin")),
		clickHandler(b.OnClick, b.Disabled || b.Loading),
		vdom.Text(b.Label),
	)
}

// clickHandler returns the click binding, or nil when inert.
func clickHandler(fn func(), inert bool) any {
	if fn == nil || inert {
		return nil
	}
	return vdom.OnClick(fn)
}
