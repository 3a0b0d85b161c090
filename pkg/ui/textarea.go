package ui

import (
	"github.com/vango-go/vangoui/pkg/ui/hooks"
	"github.com/vango-go/vangoui/pkg/vdom"
)

const textareaBase = "flex min-h-[80px] w-full rounded-md border border-zinc-300 bg-white px-3 py-2 text-sm placeholder:text-zinc-400 focus-visible:outline-none focus-visible:ring-2 disabled:cursor-not-allowed disabled:opacity-50"

// TextArea is a multi-line text field with optional auto-resize behavior
// and character counter.
type TextArea struct {
	// ID links the label to the field. Required when Label is set.
	ID string

	Label       string
	Placeholder string
	Value       string

	// Rows is the initial row count; defaults to 3.
	Rows int

	// AutoResize grows the field to fit its content (client hook).
	AutoResize bool

	// MaxRows caps auto-resize growth; 0 means unbounded.
	MaxRows int

	// MaxLength enables the character counter and the maxlength attribute.
	MaxLength int

	// Error renders the field in its invalid state with the message below.
	Error string

	Disabled bool

	// OnInput is bound as the input handler.
	OnInput func(value string)

	// Class is appended after the computed classes on the textarea element.
	Class string
}

// Render implements vdom.Component.
func (ta TextArea) Render() *vdom.VNode {
	rows := ta.Rows
	if rows <= 0 {
		rows = 3
	}

	return vdom.Div(
		vdom.Class("space-y-1.5"),
		vdom.If(ta.Label != "", vdom.Label(
			vdom.For(ta.ID),
			vdom.Class("text-sm font-medium leading-none"),
			vdom.Text(ta.Label),
		)),
		vdom.Textarea(
			vdom.AttrIf(ta.ID != "", vdom.ID(ta.ID)),
			vdom.Rows(rows),
			vdom.Class(cn(textareaBase, cnIf(ta.Error != "", "border-red-500 focus-visible:ring-red-500"), ta.Class)),
			vdom.AttrIf(ta.Placeholder != "", vdom.Placeholder(ta.Placeholder)),
			vdom.AttrIf(ta.MaxLength > 0, vdom.MaxLength(ta.MaxLength)),
			vdom.AttrIf(ta.Disabled, vdom.Disabled()),
			vdom.AttrIf(ta.AutoResize, hooks.AutoResize(hooks.AutoResizeConfig{MaxRows: ta.MaxRows})),
			inputHandler(ta.OnInput),
			vdom.Text(ta.Value),
		),
		characterCounter(len([]rune(ta.Value)), ta.MaxLength),
		vdom.If(ta.Error != "", vdom.P(
			vdom.Class("text-sm text-red-600"),
			vdom.Role("alert"),
			vdom.Text(ta.Error),
		)),
	)
}
