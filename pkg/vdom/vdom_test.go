package vdom_test

import (
	"testing"

	"github.com/vango-go/vangoui/pkg/vdom"
)

func TestCreateElementBasics(t *testing.T) {
	node := vdom.Div(
		vdom.ID("main"),
		vdom.Class("card"),
		vdom.H2(vdom.Text("Title")),
		"plain text",
	)

	if node.Kind != vdom.KindElement || node.Tag != "div" {
		t.Fatalf("expected div element, got %v %q", node.Kind, node.Tag)
	}
	if node.Props["id"] != "main" {
		t.Errorf("expected id prop, got %v", node.Props["id"])
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.Children))
	}
	if node.Children[1].Kind != vdom.KindText || node.Children[1].Text != "plain text" {
		t.Error("expected bare strings to become text nodes")
	}
}

func TestNilArgumentsIgnored(t *testing.T) {
	node := vdom.Div(
		nil,
		vdom.If(false, vdom.Span()),
		vdom.AttrIf(false, vdom.Disabled()),
	)

	if len(node.Children) != 0 {
		t.Errorf("expected no children, got %d", len(node.Children))
	}
	if len(node.Props) != 0 {
		t.Errorf("expected no props, got %v", node.Props)
	}
}

func TestClassAttrsAccumulate(t *testing.T) {
	node := vdom.Div(
		vdom.Class("a"),
		vdom.ClassIf(true, "b"),
		vdom.ClassIf(false, "c"),
	)

	if node.Props["class"] != "a b" {
		t.Errorf("expected class \"a b\", got %v", node.Props["class"])
	}
}

func TestClassesMerging(t *testing.T) {
	a := vdom.Classes("base", []string{"x", ""}, map[string]bool{"active": true, "hidden": false})
	got, _ := a.Value.(string)

	for _, want := range []string{"base", "x", "active"} {
		found := false
		for _, part := range splitClasses(got) {
			if part == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected class %q in %q", want, got)
		}
	}
	for _, part := range splitClasses(got) {
		if part == "hidden" || part == "" {
			t.Errorf("unexpected class %q in %q", part, got)
		}
	}
}

func splitClasses(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if r == ' ' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func TestKeyStaysOutOfProps(t *testing.T) {
	node := vdom.Li(vdom.Key(7), vdom.Text("item"))

	if node.Key != "7" {
		t.Errorf("expected key 7, got %q", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key must not appear in Props")
	}
}

func TestEventHandlerArgs(t *testing.T) {
	node := vdom.Button(vdom.OnClick(func() {}))

	if node.Props["onclick"] == nil {
		t.Fatal("expected onclick handler in Props")
	}
	if !node.IsInteractive() {
		t.Error("expected node with handler to be interactive")
	}
	if vdom.Div().IsInteractive() {
		t.Error("expected bare div to not be interactive")
	}
}

func TestFragmentFlattening(t *testing.T) {
	frag := vdom.Fragment(
		vdom.Span(vdom.Text("a")),
		[]*vdom.VNode{vdom.Span(vdom.Text("b")), nil},
		"c",
		nil,
	)

	if frag.Kind != vdom.KindFragment {
		t.Fatalf("expected fragment, got %v", frag.Kind)
	}
	if len(frag.Children) != 3 {
		t.Errorf("expected 3 children, got %d", len(frag.Children))
	}
}

func TestConditionalHelpers(t *testing.T) {
	yes := vdom.Span()
	no := vdom.Div()

	if vdom.If(true, yes) != yes || vdom.If(false, yes) != nil {
		t.Error("If misbehaved")
	}
	if vdom.IfElse(false, yes, no) != no {
		t.Error("IfElse misbehaved")
	}
	if vdom.Unless(false, yes) != yes || vdom.Unless(true, yes) != nil {
		t.Error("Unless misbehaved")
	}

	called := false
	vdom.When(false, func() *vdom.VNode {
		called = true
		return yes
	})
	if called {
		t.Error("When must not evaluate its function when false")
	}
}

func TestRangeSkipsNil(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := vdom.Range(items, func(item string, i int) *vdom.VNode {
		if item == "b" {
			return nil
		}
		return vdom.Li(vdom.Text(item))
	})

	if len(nodes) != 2 {
		t.Errorf("expected 2 nodes, got %d", len(nodes))
	}
}

func TestFuncComponent(t *testing.T) {
	comp := vdom.Func(func() *vdom.VNode {
		return vdom.Span(vdom.Text("hi"))
	})

	out := comp.Render()
	if out.Tag != "span" {
		t.Errorf("expected span, got %q", out.Tag)
	}
}

func TestVoidElements(t *testing.T) {
	for _, tag := range []string{"input", "br", "img", "hr", "meta"} {
		if !vdom.IsVoidElement(tag) {
			t.Errorf("expected %q to be void", tag)
		}
	}
	if vdom.IsVoidElement("div") {
		t.Error("div is not void")
	}
}
