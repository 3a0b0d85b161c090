// Package vdom provides the virtual DOM substrate for vangoui components.
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers. Attr and EventHandler are used to build Props.
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"),
//	    H2(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// The package is intentionally smaller than a full framework VDOM: there is
// no diff engine and no hydration pass. vangoui components are rendered on
// the server with pkg/render; interactivity is expressed through event
// marker attributes and serialized hook configs (pkg/ui/hooks) that a host
// page's script binds to.
package vdom
