package preview

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-go/vangoui/pkg/notify"
	"github.com/vango-go/vangoui/pkg/render"
	"github.com/vango-go/vangoui/pkg/ui"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsWriteTimeout = 10 * time.Second

	// sendBuffer bounds the outbound frame queue per connection. A slow
	// browser drops intermediate fragments; the next change resends the
	// whole viewport anyway.
	sendBuffer = 16
)

// clientMessage is one operation sent by the gallery page.
type clientMessage struct {
	// Op is "toast", "dismiss", or "clear".
	Op string `json:"op"`

	// ID targets an existing record (dismiss).
	ID string `json:"id,omitempty"`

	// Toast fields.
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"kind,omitempty"`

	// DurationMS overrides the default expiry in milliseconds.
	DurationMS int64 `json:"duration,omitempty"`

	// Sticky disables automatic expiry regardless of DurationMS.
	Sticky bool `json:"sticky,omitempty"`
}

// serverFrame is one message pushed to the gallery page.
type serverFrame struct {
	// Type is always "toasts" for viewport updates.
	Type string `json:"type"`

	// HTML is the rendered toast viewport fragment.
	HTML string `json:"html"`
}

// wsClient is the server side of one gallery connection.
// Each connection owns a private notification center so two browser tabs
// never see each other's toasts.
type wsClient struct {
	id       string
	center   *notify.Center
	position ui.Position
	renderer *render.Renderer

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func newWSClient(position ui.Position, renderer *render.Renderer) *wsClient {
	return &wsClient{
		id:       uuid.NewString(),
		center:   notify.NewCenter(),
		position: position,
		renderer: renderer,
		send:     make(chan []byte, sendBuffer),
	}
}

// apply executes one client operation against the connection's center.
func (c *wsClient) apply(msg clientMessage) error {
	switch msg.Op {
	case "toast":
		if msg.Title == "" {
			return fmt.Errorf("toast requires a title")
		}
		opts := []notify.Option{
			notify.WithKind(parseKind(msg.Kind)),
		}
		if msg.Description != "" {
			opts = append(opts, notify.WithDescription(msg.Description))
		}
		if msg.Sticky {
			opts = append(opts, notify.Sticky())
		} else if msg.DurationMS > 0 {
			opts = append(opts, notify.WithDuration(time.Duration(msg.DurationMS)*time.Millisecond))
		}
		c.center.Add(msg.Title, opts...)
		return nil

	case "dismiss":
		if msg.ID == "" {
			return fmt.Errorf("dismiss requires an id")
		}
		c.center.Remove(msg.ID)
		return nil

	case "clear":
		c.center.Clear()
		return nil

	default:
		return fmt.Errorf("unknown op %q", msg.Op)
	}
}

// viewportFrame renders the current toast viewport as a push frame.
// The toaster reads the live list from the center itself.
func (c *wsClient) viewportFrame() ([]byte, error) {
	toaster := ui.Toaster{Center: c.center, Position: c.position}
	html, err := c.renderer.RenderToString(toaster.Render())
	if err != nil {
		return nil, err
	}
	return json.Marshal(serverFrame{Type: "toasts", HTML: html})
}

// enqueue pushes a frame to the write loop, dropping it if the client is
// too far behind or already closing. An expiry timer can still publish
// between unsubscribe and teardown, so the closed check is load-bearing.
func (c *wsClient) enqueue(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// closeSend stops the write loop. Safe to call once teardown begins.
func (c *wsClient) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// opLabel buckets a client-supplied op into the fixed label set. Metric
// labels and span names must not grow with whatever a client sends.
func opLabel(op string) string {
	switch op {
	case "toast", "dismiss", "clear":
		return op
	default:
		return "unknown"
	}
}

func parseKind(s string) notify.Kind {
	switch notify.Kind(s) {
	case notify.KindSuccess, notify.KindError, notify.KindWarning, notify.KindInfo:
		return notify.Kind(s)
	default:
		return notify.KindDefault
	}
}

// handleWebSocket upgrades the connection and runs the read loop.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	s.metrics.connections.Inc()

	client := newWSClient(s.position, s.renderer)
	logger := s.logger.With("conn_id", client.id)
	logger.Info("gallery connected", "remote", r.RemoteAddr)

	unsubscribe := client.center.Subscribe(func([]notify.Record) {
		frame, err := client.viewportFrame()
		if err != nil {
			logger.Error("viewport render failed", "error", err)
			return
		}
		if !client.enqueue(frame) {
			logger.Warn("dropping frame, client behind")
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for frame := range client.send {
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				logger.Error("write error", "error", err)
				return
			}
		}
	}()

	defer func() {
		unsubscribe()
		client.center.Close()
		client.closeSend()
		<-done
		conn.Close()
		logger.Info("gallery disconnected")
	}()

	for {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				logger.Error("read error", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Error("message decode error", "error", err)
			continue
		}
		op := opLabel(msg.Op)
		s.metrics.messages.WithLabelValues(op).Inc()

		_, span := s.tracer.Start(r.Context(),
			fmt.Sprintf("preview.%s", op),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("preview.conn_id", client.id),
				attribute.String("preview.op", msg.Op),
			),
		)
		if err := client.apply(msg); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Warn("message rejected", "op", msg.Op, "error", err)
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.SetAttributes(attribute.Int("preview.active_toasts", client.center.Len()))
		span.End()
	}
}
