package ui

import (
	"github.com/vango-go/vangoui/pkg/ui/hooks"
	"github.com/vango-go/vangoui/pkg/vdom"
)

// DropdownItem is one entry in a dropdown menu.
type DropdownItem struct {
	Label string

	// Destructive renders the item in the danger treatment.
	Destructive bool

	// Disabled renders the item inert.
	Disabled bool

	// OnSelect is bound as the click handler.
	OnSelect func()

	// Separator renders a divider instead of an item; other fields are
	// ignored when set.
	Separator bool
}

// Dropdown is a trigger button with a menu of items.
type Dropdown struct {
	// Label is the trigger text.
	Label string

	Items []DropdownItem

	// Open renders the menu; closed dropdowns render the trigger only.
	Open bool

	// Class is appended after the computed classes on the root element.
	Class string
}

// Render implements vdom.Component.
func (d Dropdown) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class(cn("relative inline-block text-left", d.Class)),
		hooks.Dropdown(hooks.DropdownConfig{CloseOnEscape: true, CloseOnClick: true}),
		vdom.Button(
			vdom.Type("button"),
			vdom.Class(cn(buttonBase, buttonVariants[VariantOutline], buttonSizes[SizeMedium])),
			vdom.AriaHasPopup("menu"),
			vdom.AriaExpanded(d.Open),
			vdom.Text(d.Label),
			chevronDownIcon("h-4 w-4"),
		),
		vdom.When(d.Open, func() *vdom.VNode {
			return vdom.Div(
				vdom.Role("menu"),
				vdom.Class("absolute left-0 z-10 mt-2 w-48 origin-top-left rounded-md border border-zinc-200 bg-white p-1 shadow-md"),
				vdom.Range(d.Items, func(item DropdownItem, i int) *vdom.VNode {
					return renderDropdownItem(item)
				}),
			)
		}),
	)
}

func renderDropdownItem(item DropdownItem) *vdom.VNode {
	if item.Separator {
		return vdom.Div(
			vdom.Role("separator"),
			vdom.Class("my-1 h-px bg-zinc-200"),
		)
	}

	return vdom.Button(
		vdom.Type("button"),
		vdom.Role("menuitem"),
		vdom.Class(cn(
			"flex w-full items-center rounded-sm px-2 py-1.5 text-left text-sm hover:bg-zinc-100",
			cnIf(item.Destructive, "text-red-600 hover:bg-red-50"),
			cnIf(item.Disabled, "pointer-events-none opacity-50"),
		)),
		vdom.AttrIf(item.Disabled, vdom.Disabled()),
		clickHandler(item.OnSelect, item.Disabled),
		vdom.Text(item.Label),
	)
}
