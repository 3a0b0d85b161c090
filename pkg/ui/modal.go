package ui

import (
	"github.com/vango-go/vangoui/pkg/ui/hooks"
	"github.com/vango-go/vangoui/pkg/vdom"
)

// Modal is a dialog overlay. Rendering with Open false produces nothing,
// so callers can render it unconditionally and toggle the flag.
type Modal struct {
	Open bool

	Title       string
	Description string

	// Body is the dialog content.
	Body *vdom.VNode

	// Footer typically holds the action buttons.
	Footer *vdom.VNode

	// Dismissable shows the close affordance and enables Escape/backdrop
	// dismissal via the Modal hook.
	Dismissable bool

	// OnClose is bound to the close button.
	OnClose func()

	// Class is appended after the computed classes on the dialog panel.
	Class string
}

// Render implements vdom.Component.
func (m Modal) Render() *vdom.VNode {
	if !m.Open {
		return vdom.Nothing()
	}

	return vdom.Div(
		vdom.Class("fixed inset-0 z-50 flex items-center justify-center"),
		vdom.Div(
			vdom.Class("fixed inset-0 bg-black/50"),
			vdom.AriaHidden(true),
			vdom.Data("modal-backdrop", "true"),
		),
		vdom.Div(
			vdom.Role("dialog"),
			vdom.AriaModal(true),
			vdom.AttrIf(m.Title != "", vdom.AriaLabel(m.Title)),
			vdom.Class(cn("relative z-50 w-full max-w-lg rounded-lg border border-zinc-200 bg-white p-6 shadow-lg", m.Class)),
			hooks.Modal(hooks.ModalConfig{
				CloseOnEscape:   m.Dismissable,
				CloseOnBackdrop: m.Dismissable,
				TrapFocus:       true,
			}),
			vdom.If(m.Title != "", vdom.H2(
				vdom.Class("text-lg font-semibold leading-none tracking-tight"),
				vdom.Text(m.Title),
			)),
			vdom.If(m.Description != "", vdom.P(
				vdom.Class("mt-1.5 text-sm text-zinc-500"),
				vdom.Text(m.Description),
			)),
			vdom.If(m.Body != nil, vdom.Div(vdom.Class("mt-4"), m.Body)),
			vdom.If(m.Footer != nil, vdom.Div(
				vdom.Class("mt-6 flex justify-end gap-2"),
				m.Footer,
			)),
			vdom.When(m.Dismissable, func() *vdom.VNode {
				return vdom.Button(
					vdom.Type("button"),
					vdom.Class("absolute right-4 top-4 rounded-sm text-zinc-400 hover:text-zinc-900"),
					vdom.AriaLabel("Close"),
					clickHandler(m.OnClose, false),
					closeIcon("h-4 w-4"),
				)
			}),
		),
	)
}
