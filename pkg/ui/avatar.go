package ui

import (
	"strings"

	"github.com/vango-go/vangoui/pkg/vdom"
)

var avatarSizes = map[Size]string{
	SizeSmall:  "h-8 w-8 text-xs",
	SizeMedium: "h-10 w-10 text-sm",
	SizeLarge:  "h-14 w-14 text-lg",
}

// Avatar displays a user image with an initials fallback.
//
// Src is a resolved URL; use pkg/assets to produce one from a storage key.
// When Src is empty the avatar falls back to the initials derived from Name.
type Avatar struct {
	// Src is the image URL. Empty means initials fallback.
	Src string

	// Name is the display name behind the avatar, used for the alt text
	// and the initials fallback.
	Name string

	Size Size

	// Class is appended after the computed classes.
	Class string
}

// Render implements vdom.Component.
func (a Avatar) Render() *vdom.VNode {
	size := a.Size
	if size == "" {
		size = SizeMedium
	}
	base := cn("relative flex shrink-0 overflow-hidden rounded-full bg-zinc-100", avatarSizes[size], a.Class)

	if a.Src != "" {
		return vdom.Span(
			vdom.Class(base),
			vdom.Img(
				vdom.Class("aspect-square h-full w-full object-cover"),
				vdom.Src(a.Src),
				vdom.Alt(a.Name),
				vdom.Loading("lazy"),
			),
		)
	}

	return vdom.Span(
		vdom.Class(cn(base, "items-center justify-center font-medium text-zinc-600")),
		vdom.AttrIf(a.Name != "", vdom.AriaLabel(a.Name)),
		vdom.Text(Initials(a.Name)),
	)
}

// Initials derives up to two uppercase initials from a display name.
// Empty input yields "?" so the fallback never renders blank.
func Initials(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(firstRune(fields[0]))
	default:
		return strings.ToUpper(firstRune(fields[0]) + firstRune(fields[len(fields)-1]))
	}
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
