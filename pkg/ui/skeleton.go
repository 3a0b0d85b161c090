package ui

import "github.com/vango-go/vangoui/pkg/vdom"

// SkeletonShape selects the placeholder silhouette.
type SkeletonShape string

const (
	SkeletonLine   SkeletonShape = "line"
	SkeletonCircle SkeletonShape = "circle"
	SkeletonBlock  SkeletonShape = "block"
)

var skeletonShapes = map[SkeletonShape]string{
	SkeletonLine:   "h-4 w-full rounded",
	SkeletonCircle: "h-10 w-10 rounded-full",
	SkeletonBlock:  "h-24 w-full rounded-md",
}

// Skeleton is a loading placeholder.
type Skeleton struct {
	Shape SkeletonShape

	// Lines renders that many stacked line placeholders; only meaningful
	// with SkeletonLine. Zero means a single line.
	Lines int

	// Class is appended after the computed classes.
	Class string
}

// Render implements vdom.Component.
func (s Skeleton) Render() *vdom.VNode {
	shape := s.Shape
	if shape == "" {
		shape = SkeletonLine
	}
	base := cn("animate-pulse bg-zinc-200", skeletonShapes[shape], s.Class)

	if shape == SkeletonLine && s.Lines > 1 {
		return vdom.Div(
			vdom.Class("space-y-2"),
			vdom.AriaBusy(true),
			vdom.Repeat(s.Lines, func(i int) *vdom.VNode {
				// Shorten the last line, like text naturally ends.
				return vdom.Div(vdom.Class(cn(base, cnIf(i == s.Lines-1, "w-3/5"))))
			}),
		)
	}

	return vdom.Div(
		vdom.Class(base),
		vdom.AriaBusy(true),
	)
}
