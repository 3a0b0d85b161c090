package hooks

import "github.com/vango-go/vangoui/pkg/vdom"

// DropdownConfig configures the Dropdown hook.
type DropdownConfig struct {
	CloseOnEscape bool `json:"closeOnEscape,omitempty"`
	CloseOnClick  bool `json:"closeOnClick,omitempty"`
}

// Dropdown creates a Dropdown hook attribute.
// The client closes the dropdown on Escape and on outside clicks according
// to the config.
func Dropdown(config DropdownConfig) vdom.Attr {
	return Hook("Dropdown", map[string]any{
		"closeOnEscape": config.CloseOnEscape,
		"closeOnClick":  config.CloseOnClick,
	})
}

// ModalConfig configures the Modal hook.
type ModalConfig struct {
	CloseOnEscape   bool `json:"closeOnEscape,omitempty"`
	CloseOnBackdrop bool `json:"closeOnBackdrop,omitempty"`
	TrapFocus       bool `json:"trapFocus,omitempty"`
}

// Modal creates a Modal hook attribute.
// The client traps focus inside the dialog and closes it on Escape or a
// backdrop click according to the config.
func Modal(config ModalConfig) vdom.Attr {
	return Hook("Modal", map[string]any{
		"closeOnEscape":   config.CloseOnEscape,
		"closeOnBackdrop": config.CloseOnBackdrop,
		"trapFocus":       config.TrapFocus,
	})
}

// AutoResizeConfig configures the AutoResize hook for textareas.
type AutoResizeConfig struct {
	// MaxRows caps growth; 0 means unbounded.
	MaxRows int `json:"maxRows,omitempty"`
}

// AutoResize creates an AutoResize hook attribute.
// The client grows the textarea to fit its content on every input event.
func AutoResize(config AutoResizeConfig) vdom.Attr {
	return Hook("AutoResize", map[string]any{
		"maxRows": config.MaxRows,
	})
}

// InfiniteScrollConfig configures the InfiniteScroll hook.
type InfiniteScrollConfig struct {
	// Margin is the IntersectionObserver rootMargin (e.g. "200px").
	Margin string `json:"margin,omitempty"`

	// Once disconnects the observer after the first intersection.
	Once bool `json:"once,omitempty"`
}

// InfiniteScroll creates an InfiniteScroll hook attribute.
// The client observes the element with an IntersectionObserver and emits a
// "loadmore" hook event each time it enters the viewport.
func InfiniteScroll(config InfiniteScrollConfig) vdom.Attr {
	return Hook("InfiniteScroll", map[string]any{
		"margin": config.Margin,
		"once":   config.Once,
	})
}
