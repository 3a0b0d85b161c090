package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string,
// or EventHandler. Nil and empty values are skipped, which keeps conditional
// attributes and children ergonomic at call sites.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		applyArg(node, arg)
	}

	return node
}

// applyArg applies a single constructor argument to the node.
func applyArg(node *VNode, arg any) {
	switch v := arg.(type) {
	case nil:
		// Ignore nil (allows conditional attributes)

	case Attr:
		setAttr(node, v)

	case []Attr:
		for _, a := range v {
			setAttr(node, a)
		}

	case EventHandler:
		node.Props[v.Event] = v.Handler

	case *VNode:
		if v != nil {
			node.Children = append(node.Children, v)
		}

	case []*VNode:
		for _, c := range v {
			if c != nil {
				node.Children = append(node.Children, c)
			}
		}

	case string:
		node.Children = append(node.Children, Text(v))

	case Component:
		node.Children = append(node.Children, &VNode{
			Kind: KindComponent,
			Comp: v,
		})
	}
}

// setAttr stores an attribute on the node. The reconciliation key is kept
// out of Props; a repeated "class" accumulates instead of overwriting, so
// Class(...) and ClassIf(...) compose.
func setAttr(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	if a.Key == "class" {
		if existing, ok := node.Props["class"].(string); ok && existing != "" {
			if add, ok := a.Value.(string); ok && add != "" {
				node.Props["class"] = existing + " " + add
			}
			return
		}
	}
	node.Props[a.Key] = a.Value
}

// Document structure

func Div(args ...any) *VNode     { return createElement("div", args) }
func Span(args ...any) *VNode    { return createElement("span", args) }
func P(args ...any) *VNode       { return createElement("p", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Aside(args ...any) *VNode   { return createElement("aside", args) }

// Headings

func H1(args ...any) *VNode { return createElement("h1", args) }
func H2(args ...any) *VNode { return createElement("h2", args) }
func H3(args ...any) *VNode { return createElement("h3", args) }
func H4(args ...any) *VNode { return createElement("h4", args) }

// Lists

func Ul(args ...any) *VNode { return createElement("ul", args) }
func Ol(args ...any) *VNode { return createElement("ol", args) }
func Li(args ...any) *VNode { return createElement("li", args) }

// Inline

func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Em(args ...any) *VNode     { return createElement("em", args) }
func Small(args ...any) *VNode  { return createElement("small", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }
func Br(args ...any) *VNode     { return createElement("br", args) }
func Hr(args ...any) *VNode     { return createElement("hr", args) }

// Forms

func Form(args ...any) *VNode     { return createElement("form", args) }
func Label(args ...any) *VNode    { return createElement("label", args) }
func Input(args ...any) *VNode    { return createElement("input", args) }
func Textarea(args ...any) *VNode { return createElement("textarea", args) }
func Button(args ...any) *VNode   { return createElement("button", args) }
func Select(args ...any) *VNode   { return createElement("select", args) }
func Option(args ...any) *VNode   { return createElement("option", args) }
func Fieldset(args ...any) *VNode { return createElement("fieldset", args) }

// Media

func Img(args ...any) *VNode    { return createElement("img", args) }
func Svg(args ...any) *VNode    { return createElement("svg", args) }
func Path(args ...any) *VNode   { return createElement("path", args) }
func Figure(args ...any) *VNode { return createElement("figure", args) }

// Interactive

func Dialog(args ...any) *VNode  { return createElement("dialog", args) }
func Details(args ...any) *VNode { return createElement("details", args) }
func Summary(args ...any) *VNode { return createElement("summary", args) }

// Document head (used by the preview server's page shell)

func Html(args ...any) *VNode   { return createElement("html", args) }
func Head(args ...any) *VNode   { return createElement("head", args) }
func Body(args ...any) *VNode   { return createElement("body", args) }
func Title(args ...any) *VNode  { return createElement("title", args) }
func Meta(args ...any) *VNode   { return createElement("meta", args) }
func LinkEl(args ...any) *VNode { return createElement("link", args) }
func Script(args ...any) *VNode { return createElement("script", args) }

// El creates an element with an arbitrary tag. Use this for tags without a
// dedicated constructor.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }
