package ui

import (
	"github.com/vango-go/vangoui/pkg/notify"
	"github.com/vango-go/vangoui/pkg/vdom"
)

// Position places the toast viewport in the page.
type Position string

const (
	PositionTopLeft     Position = "top-left"
	PositionTopRight    Position = "top-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionBottomRight Position = "bottom-right"
)

var positionClasses = map[Position]string{
	PositionTopLeft:     "top-4 left-4 items-start",
	PositionTopRight:    "top-4 right-4 items-end",
	PositionBottomLeft:  "bottom-4 left-4 items-start",
	PositionBottomRight: "bottom-4 right-4 items-end",
}

// ParsePosition returns the Position named by s.
// It reports false for values that name no known placement.
func ParsePosition(s string) (Position, bool) {
	p := Position(s)
	_, ok := positionClasses[p]
	return p, ok
}

var toastKindClasses = map[notify.Kind]string{
	notify.KindDefault: "border-zinc-200 bg-white text-zinc-900",
	notify.KindSuccess: "border-green-200 bg-green-50 text-green-900",
	notify.KindError:   "border-red-200 bg-red-50 text-red-900",
	notify.KindWarning: "border-amber-200 bg-amber-50 text-amber-900",
	notify.KindInfo:    "border-blue-200 bg-blue-50 text-blue-900",
}

// Toaster is the render surface for a notify.Center: it projects the
// Center's current list into a toast viewport.
//
// The Toaster owns no state. It reads the list at render time; hosts
// re-render it from a Center.Subscribe listener. Dismiss buttons call
// Center.Remove and action buttons invoke the record's callback, which is
// the full extent of the queue's contract with its render surface.
type Toaster struct {
	Center *notify.Center

	// Position places the viewport; defaults to bottom-right.
	Position Position

	// MaxVisible caps how many records render at once; the newest win.
	// Zero means no cap.
	MaxVisible int

	// Class is appended after the computed classes on the viewport.
	Class string
}

// Render implements vdom.Component.
func (t Toaster) Render() *vdom.VNode {
	position := t.Position
	if _, ok := positionClasses[position]; !ok {
		position = PositionBottomRight
	}

	var records []notify.Record
	if t.Center != nil {
		records = t.Center.List()
	}
	if t.MaxVisible > 0 && len(records) > t.MaxVisible {
		records = records[len(records)-t.MaxVisible:]
	}

	return vdom.Div(
		vdom.Class(cn("pointer-events-none fixed z-50 flex w-full max-w-sm flex-col gap-2", positionClasses[position], t.Class)),
		vdom.Role("region"),
		vdom.AriaLabel("Notifications"),
		vdom.AriaLive("polite"),
		vdom.Data("toaster", string(position)),
		vdom.Range(records, func(rec notify.Record, i int) *vdom.VNode {
			return t.renderToast(rec)
		}),
	)
}

// renderToast renders a single record.
func (t Toaster) renderToast(rec notify.Record) *vdom.VNode {
	id := rec.ID
	return vdom.Div(
		vdom.Key(id),
		vdom.Role("status"),
		vdom.Data("toast-id", id),
		vdom.Data("toast-kind", rec.Kind.String()),
		vdom.Class(cn("pointer-events-auto flex w-full items-start gap-3 rounded-lg border p-4 shadow-lg", toastKindClasses[rec.Kind])),
		kindIcon(rec.Kind, "h-5 w-5 shrink-0"),
		vdom.Div(
			vdom.Class("flex-1 space-y-1"),
			vdom.Div(
				vdom.Class("text-sm font-semibold"),
				vdom.Text(rec.Title),
			),
			vdom.If(rec.Description != "", vdom.Div(
				vdom.Class("text-sm opacity-80"),
				vdom.Text(rec.Description),
			)),
			vdom.When(rec.Action != nil, func() *vdom.VNode {
				action := rec.Action
				return vdom.Button(
					vdom.Type("button"),
					vdom.Class("mt-1 text-sm font-medium underline underline-offset-2"),
					vdom.Data("toast-action", id),
					clickHandler(action.Do, false),
					vdom.Text(action.Label),
				)
			}),
		),
		vdom.When(rec.Closeable, func() *vdom.VNode {
			return vdom.Button(
				vdom.Type("button"),
				vdom.Class("shrink-0 rounded-sm opacity-60 hover:opacity-100"),
				vdom.AriaLabel("Dismiss"),
				vdom.Data("toast-dismiss", id),
				clickHandler(func() { t.Center.Remove(id) }, false),
				closeIcon("h-4 w-4"),
			)
		}),
	)
}
