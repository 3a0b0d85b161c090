package ui

import "github.com/vango-go/vangoui/pkg/vdom"

// Card is a bordered content container with optional header and footer
// sections.
type Card struct {
	// Title and Description populate the header section. An empty Title
	// omits the header entirely.
	Title       string
	Description string

	// Body is the main content.
	Body *vdom.VNode

	// Footer is the optional footer content.
	Footer *vdom.VNode

	// Class is appended after the computed classes.
	Class string
}

// Render implements vdom.Component.
func (c Card) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class(cn("rounded-lg border border-zinc-200 bg-white shadow-sm", c.Class)),
		vdom.When(c.Title != "", func() *vdom.VNode {
			return vdom.Div(
				vdom.Class("flex flex-col space-y-1.5 p-6"),
				vdom.H3(
					vdom.Class("text-lg font-semibold leading-none tracking-tight"),
					vdom.Text(c.Title),
				),
				vdom.If(c.Description != "", vdom.P(
					vdom.Class("text-sm text-zinc-500"),
					vdom.Text(c.Description),
				)),
			)
		}),
		vdom.If(c.Body != nil, vdom.Div(
			vdom.Class(cn("p-6", cnIf(c.Title != "", "pt-0"))),
			c.Body,
		)),
		vdom.If(c.Footer != nil, vdom.Div(
			vdom.Class("flex items-center p-6 pt-0"),
			c.Footer,
		)),
	)
}
