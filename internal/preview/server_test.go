package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-go/vangoui/pkg/render"
	"github.com/vango-go/vangoui/pkg/ui"
)

func TestGalleryPage(t *testing.T) {
	srv := New(WithRegistry(prometheus.NewRegistry()))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}

	body := readBody(t, resp)
	for _, want := range []string{
		"<title>vangoui gallery</title>",
		"Buttons",
		"Toasts (live)",
		`id="toast-root"`,
		"data-demo-toast",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in gallery page", want)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := New(WithRegistry(prometheus.NewRegistry()))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestWSClientApply(t *testing.T) {
	client := newWSClient(ui.PositionBottomRight, render.NewRenderer(render.Config{}))
	defer client.center.Close()

	if err := client.apply(clientMessage{Op: "toast", Title: "saved", Kind: "success"}); err != nil {
		t.Fatalf("toast: %v", err)
	}
	if client.center.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", client.center.Len())
	}

	records := client.center.List()
	if records[0].Kind.String() != "success" {
		t.Errorf("expected success kind, got %s", records[0].Kind)
	}

	if err := client.apply(clientMessage{Op: "dismiss", ID: records[0].ID}); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if client.center.Len() != 0 {
		t.Errorf("expected empty center after dismiss")
	}

	client.apply(clientMessage{Op: "toast", Title: "a"})
	client.apply(clientMessage{Op: "toast", Title: "b"})
	if err := client.apply(clientMessage{Op: "clear"}); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if client.center.Len() != 0 {
		t.Errorf("expected empty center after clear")
	}
}

func TestWSClientApplyRejectsBadMessages(t *testing.T) {
	client := newWSClient(ui.PositionBottomRight, render.NewRenderer(render.Config{}))
	defer client.center.Close()

	if err := client.apply(clientMessage{Op: "toast"}); err == nil {
		t.Error("expected error for toast without title")
	}
	if err := client.apply(clientMessage{Op: "dismiss"}); err == nil {
		t.Error("expected error for dismiss without id")
	}
	if err := client.apply(clientMessage{Op: "teleport"}); err == nil {
		t.Error("expected error for unknown op")
	}
	if client.center.Len() != 0 {
		t.Errorf("rejected messages must not touch the center")
	}
}

func TestWSClientSticky(t *testing.T) {
	client := newWSClient(ui.PositionBottomRight, render.NewRenderer(render.Config{}))
	defer client.center.Close()

	client.apply(clientMessage{Op: "toast", Title: "pinned", Sticky: true, DurationMS: 1000})

	records := client.center.List()
	if len(records) != 1 || !records[0].Sticky() {
		t.Error("expected sticky to win over duration")
	}
}

func TestWSClientViewportFrame(t *testing.T) {
	client := newWSClient(ui.PositionTopLeft, render.NewRenderer(render.Config{}))
	defer client.center.Close()

	client.apply(clientMessage{Op: "toast", Title: "hello toast"})

	frame, err := client.viewportFrame()
	if err != nil {
		t.Fatalf("viewportFrame: %v", err)
	}
	payload := string(frame)
	if !strings.Contains(payload, `"type":"toasts"`) {
		t.Errorf("expected toasts frame type, got %s", payload)
	}
	if !strings.Contains(payload, "hello toast") {
		t.Errorf("expected toast content in frame, got %s", payload)
	}
	if !strings.Contains(payload, "top-4 left-4") {
		t.Errorf("expected configured position in frame, got %s", payload)
	}
}

func TestOpLabelBucketsUnknownOps(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"toast", "toast"},
		{"dismiss", "dismiss"},
		{"clear", "clear"},
		{"", "unknown"},
		{"teleport", "unknown"},
		{"toast2", "unknown"},
	}
	for _, tt := range tests {
		if got := opLabel(tt.in); got != tt.want {
			t.Errorf("opLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"success", "success"},
		{"error", "error"},
		{"warning", "warning"},
		{"info", "info"},
		{"", "default"},
		{"bogus", "default"},
	}
	for _, tt := range tests {
		if got := parseKind(tt.in).String(); got != tt.want {
			t.Errorf("parseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWebSocketRoundTrip(t *testing.T) {
	srv := New(WithRegistry(prometheus.NewRegistry()))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	msg := `{"op":"toast","title":"over the wire","kind":"info"}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("write: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	payload := string(frame)
	if !strings.Contains(payload, `"type":"toasts"`) {
		t.Errorf("expected toasts frame, got %s", payload)
	}
	if !strings.Contains(payload, "over the wire") {
		t.Errorf("expected pushed toast in frame, got %s", payload)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}
