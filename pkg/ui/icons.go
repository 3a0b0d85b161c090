package ui

import (
	"github.com/vango-go/vangoui/pkg/notify"
	"github.com/vango-go/vangoui/pkg/vdom"
)

// icon renders a 24x24 stroke icon from path data.
func icon(class string, pathData string) *vdom.VNode {
	return vdom.Svg(
		vdom.Class(class),
		vdom.ViewBox("0 0 24 24"),
		vdom.Fill("none"),
		vdom.Stroke("currentColor"),
		vdom.StrokeWidth("2"),
		vdom.AriaHidden(true),
		vdom.Path(vdom.D(pathData)),
	)
}

// spinnerIcon renders the loading spinner arc.
func spinnerIcon(class string) *vdom.VNode {
	return icon(class, "M21 12a9 9 0 1 1-6.219-8.56")
}

// closeIcon renders the dismiss cross.
func closeIcon(class string) *vdom.VNode {
	return icon(class, "M18 6 6 18M6 6l12 12")
}

// chevronDownIcon renders the dropdown caret.
func chevronDownIcon(class string) *vdom.VNode {
	return icon(class, "m6 9 6 6 6-6")
}

// kindIconPaths maps notification kinds to their icon path data.
var kindIconPaths = map[notify.Kind]string{
	notify.KindSuccess: "M20 6 9 17l-5-5",
	notify.KindError:   "M12 8v4m0 4h.01M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20z",
	notify.KindWarning: "m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3zM12 9v4m0 4h.01",
	notify.KindInfo:    "M12 16v-4m0-4h.01M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20z",
}

// kindIcon renders the icon for a notification kind, or nil for the
// default kind, which is rendered without an icon.
func kindIcon(kind notify.Kind, class string) *vdom.VNode {
	pathData, ok := kindIconPaths[kind]
	if !ok {
		return nil
	}
	return icon(class, pathData)
}
