package ui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/vango-go/vangoui/pkg/notify"
	"github.com/vango-go/vangoui/pkg/notify/notifytest"
	"github.com/vango-go/vangoui/pkg/ui"
	"github.com/vango-go/vangoui/pkg/uitest"
)

func newToasterFixture(t *testing.T) (*notify.Center, *notifytest.Clock) {
	t.Helper()
	clock := notifytest.NewClock()
	center := notify.NewCenter(notify.WithClock(clock))
	t.Cleanup(center.Close)
	return center, clock
}

func TestToasterEmptyViewport(t *testing.T) {
	center, _ := newToasterFixture(t)
	toaster := ui.Toaster{Center: center}

	uitest.ExpectAttribute(t, toaster.Render(), "role", "region")
	uitest.ExpectAttribute(t, toaster.Render(), "aria-live", "polite")
	uitest.ExpectAttribute(t, toaster.Render(), "data-toaster", "bottom-right")
}

func TestToasterRendersRecordsInOrder(t *testing.T) {
	center, _ := newToasterFixture(t)
	center.Success("first saved")
	center.Error("then failed")

	html := uitest.RenderToString(ui.Toaster{Center: center}.Render())

	first := strings.Index(html, "first saved")
	second := strings.Index(html, "then failed")
	if first < 0 || second < 0 {
		t.Fatalf("expected both toasts in output:\n%s", html)
	}
	if first > second {
		t.Error("expected insertion order preserved in the viewport")
	}
}

func TestToasterKindTreatment(t *testing.T) {
	center, _ := newToasterFixture(t)
	center.Warning("disk almost full")

	toaster := ui.Toaster{Center: center}
	uitest.ExpectAttribute(t, toaster.Render(), "data-toast-kind", "warning")
	uitest.ExpectContains(t, toaster.Render(), "border-amber-200")
}

func TestToasterDescriptionAndAction(t *testing.T) {
	center, _ := newToasterFixture(t)

	fired := false
	center.Info("update available",
		notify.WithDescription("Version 2.1 is ready to install"),
		notify.WithAction("Install", func() { fired = true }),
	)

	toaster := ui.Toaster{Center: center}
	uitest.ExpectContains(t, toaster.Render(), "Version 2.1 is ready to install")
	uitest.ExpectContains(t, toaster.Render(), "Install")

	// The action callback belongs to the page, not the render pass.
	if fired {
		t.Error("render must not invoke the action callback")
	}
}

func TestToasterDismissRemovesRecord(t *testing.T) {
	center, _ := newToasterFixture(t)
	id := center.Add("dismiss me", notify.Sticky())

	toaster := ui.Toaster{Center: center}
	uitest.ExpectAttribute(t, toaster.Render(), "data-toast-dismiss", id)

	// Simulate the close affordance the way the client would drive it.
	center.Remove(id)
	uitest.ExpectNotContains(t, toaster.Render(), "dismiss me")
}

func TestToasterNotCloseableHidesDismiss(t *testing.T) {
	center, _ := newToasterFixture(t)
	center.Add("sticky banner", notify.NotCloseable(), notify.Sticky())

	uitest.ExpectNotContains(t, ui.Toaster{Center: center}.Render(), "data-toast-dismiss")
}

func TestToasterMaxVisibleKeepsNewest(t *testing.T) {
	center, _ := newToasterFixture(t)
	center.Add("alpha", notify.Sticky())
	center.Add("bravo", notify.Sticky())
	center.Add("charlie", notify.Sticky())

	toaster := ui.Toaster{Center: center, MaxVisible: 2}
	html := uitest.RenderToString(toaster.Render())

	// Match rendered text nodes, not bare substrings: a title could
	// otherwise collide with markup such as the icons' fill="none".
	if strings.Contains(html, ">alpha<") {
		t.Error("expected oldest record hidden beyond the cap")
	}
	if !strings.Contains(html, ">bravo<") || !strings.Contains(html, ">charlie<") {
		t.Error("expected the newest records visible")
	}
}

func TestToasterReflectsExpiry(t *testing.T) {
	center, clock := newToasterFixture(t)
	center.Add("ephemeral", notify.WithDuration(2*time.Second))

	toaster := ui.Toaster{Center: center}
	uitest.ExpectContains(t, toaster.Render(), "ephemeral")

	clock.Advance(2 * time.Second)
	uitest.ExpectNotContains(t, toaster.Render(), "ephemeral")
}

func TestToasterPositions(t *testing.T) {
	center, _ := newToasterFixture(t)

	tests := []struct {
		position ui.Position
		class    string
	}{
		{ui.PositionTopLeft, "top-4 left-4"},
		{ui.PositionTopRight, "top-4 right-4"},
		{ui.PositionBottomLeft, "bottom-4 left-4"},
		{ui.PositionBottomRight, "bottom-4 right-4"},
	}

	for _, tt := range tests {
		toaster := ui.Toaster{Center: center, Position: tt.position}
		html := uitest.RenderToString(toaster.Render())
		if !strings.Contains(html, tt.class) {
			t.Errorf("position %s: expected classes %q", tt.position, tt.class)
		}
	}
}

func TestToasterUnknownPositionFallsBack(t *testing.T) {
	center, _ := newToasterFixture(t)

	toaster := ui.Toaster{Center: center, Position: ui.Position("top")}
	html := uitest.RenderToString(toaster.Render())

	if !strings.Contains(html, "bottom-4 right-4") {
		t.Errorf("expected bottom-right placement for an unknown position, got:\n%s", html)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want ui.Position
		ok   bool
	}{
		{"top-left", ui.PositionTopLeft, true},
		{"top-right", ui.PositionTopRight, true},
		{"bottom-left", ui.PositionBottomLeft, true},
		{"bottom-right", ui.PositionBottomRight, true},
		{"top", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ui.ParsePosition(tt.in)
		if ok != tt.ok {
			t.Errorf("ParsePosition(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Errorf("ParsePosition(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
