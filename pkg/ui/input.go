package ui

import (
	"fmt"

	"github.com/vango-go/vangoui/pkg/vdom"
)

const inputBase = "flex h-10 w-full rounded-md border border-zinc-300 bg-white px-3 py-2 text-sm placeholder:text-zinc-400 focus-visible:outline-none focus-visible:ring-2 disabled:cursor-not-allowed disabled:opacity-50"

// Input is a single-line text field with label, error text, and an
// optional character counter.
type Input struct {
	// ID links the label to the field. Required when Label is set.
	ID string

	Label       string
	Placeholder string
	Value       string

	// Type is the input type; defaults to "text".
	Type string

	// Error renders the field in its invalid state with the message below.
	Error string

	// MaxLength enables the character counter and the maxlength attribute.
	MaxLength int

	Disabled bool
	Required bool

	// OnInput is bound as the input handler.
	OnInput func(value string)

	// Class is appended after the computed classes on the input element.
	Class string
}

// Render implements vdom.Component.
func (in Input) Render() *vdom.VNode {
	typ := in.Type
	if typ == "" {
		typ = "text"
	}

	return vdom.Div(
		vdom.Class("space-y-1.5"),
		vdom.If(in.Label != "", vdom.Label(
			vdom.For(in.ID),
			vdom.Class("text-sm font-medium leading-none"),
			vdom.Text(in.Label),
		)),
		vdom.Input(
			vdom.AttrIf(in.ID != "", vdom.ID(in.ID)),
			vdom.Type(typ),
			vdom.Class(cn(inputBase, cnIf(in.Error != "", "border-red-500 focus-visible:ring-red-500"), in.Class)),
			vdom.AttrIf(in.Placeholder != "", vdom.Placeholder(in.Placeholder)),
			vdom.AttrIf(in.Value != "", vdom.Value(in.Value)),
			vdom.AttrIf(in.MaxLength > 0, vdom.MaxLength(in.MaxLength)),
			vdom.AttrIf(in.Disabled, vdom.Disabled()),
			vdom.AttrIf(in.Required, vdom.Required()),
			vdom.AttrIf(in.Error != "", vdom.Data("invalid", "true")),
			inputHandler(in.OnInput),
		),
		characterCounter(len([]rune(in.Value)), in.MaxLength),
		vdom.If(in.Error != "", vdom.P(
			vdom.Class("text-sm text-red-600"),
			vdom.Role("alert"),
			vdom.Text(in.Error),
		)),
	)
}

// characterCounter renders "used/max", or nil when no limit is set.
func characterCounter(used, max int) *vdom.VNode {
	if max <= 0 {
		return nil
	}
	return vdom.P(
		vdom.Class(cn("text-right text-xs text-zinc-400", cnIf(used >= max, "text-red-600"))),
		vdom.AriaLive("polite"),
		vdom.Text(fmt.Sprintf("%d/%d", used, max)),
	)
}

// inputHandler returns the input binding, or nil when absent.
func inputHandler(fn func(string)) any {
	if fn == nil {
		return nil
	}
	return vdom.OnInput(fn)
}
