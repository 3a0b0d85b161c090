// Package hooks expresses client-side component behavior as serialized
// attributes.
//
// vangoui ships no JavaScript runtime. Behaviors that must run in the
// browser (dismissing a dropdown on Escape, auto-resizing a textarea,
// observing an infinite-scroll sentinel) are declared on the element as a
// v-hook attribute whose value is "Name:{json config}". The host page's
// script reads these attributes and binds the matching behavior:
//
//	document.querySelectorAll("[v-hook]").forEach((el) => {
//	    const [name, config] = splitHook(el.getAttribute("v-hook"));
//	    hookRegistry[name]?.(el, JSON.parse(config));
//	});
//
// Events coming back from hooks arrive as HookEvent with loosely typed
// payloads; the accessors coerce values the way JSON decoding delivers them.
package hooks

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vango-go/vangoui/pkg/vdom"
)

// Hook creates a hook attribute for an element.
// The config is serialized to JSON and sent to the client.
func Hook(name string, config any) vdom.Attr {
	b, _ := json.Marshal(config)
	return vdom.Attr{
		Key:   "v-hook",
		Value: fmt.Sprintf("%s:%s", name, string(b)),
	}
}

// OnEvent creates an event handler attribute for a hook event.
func OnEvent(name string, handler func(HookEvent)) vdom.EventHandler {
	return vdom.EventHandler{
		Event:   name,
		Handler: handler,
	}
}

// HookEvent represents an event triggered by a client hook.
type HookEvent struct {
	Name string
	Data map[string]any
}

// String returns the named payload field as a string.
func (e HookEvent) String(key string) string {
	if v, ok := e.Data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Int returns the named payload field as an int.
// JSON numbers arrive as float64 and are truncated.
func (e HookEvent) Int(key string) int {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		case string:
			i, _ := strconv.Atoi(val)
			return i
		}
	}
	return 0
}

// Bool returns the named payload field as a bool.
func (e HookEvent) Bool(key string) bool {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case bool:
			return val
		case string:
			return val == "true"
		}
	}
	return false
}
