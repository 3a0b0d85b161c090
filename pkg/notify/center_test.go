package notify_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-go/vangoui/pkg/notify"
	"github.com/vango-go/vangoui/pkg/notify/notifytest"
)

// newCenter returns a Center on a manual clock.
func newCenter(t *testing.T, opts ...notify.CenterOption) (*notify.Center, *notifytest.Clock) {
	t.Helper()
	clock := notifytest.NewClock()
	opts = append([]notify.CenterOption{notify.WithClock(clock)}, opts...)
	c := notify.NewCenter(opts...)
	t.Cleanup(c.Close)
	return c, clock
}

func titles(records []notify.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestAddPreservesInsertionOrderAndDistinctIDs(t *testing.T) {
	c, _ := newCenter(t)

	seen := make(map[string]bool)
	want := []string{"A", "B", "C", "D"}
	for _, title := range want {
		id := c.Add(title, notify.Sticky())
		if id == "" {
			t.Fatal("Add returned empty id")
		}
		if seen[id] {
			t.Fatalf("Add returned duplicate id %q", id)
		}
		seen[id] = true
	}

	got := titles(c.List())
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAddDefaults(t *testing.T) {
	c, _ := newCenter(t)

	id := c.Add("hello")
	rec, ok := c.Get(id)
	if !ok {
		t.Fatal("record not found after Add")
	}
	if rec.Duration != 5*time.Second {
		t.Errorf("expected default duration 5s, got %v", rec.Duration)
	}
	if rec.Kind != notify.KindDefault {
		t.Errorf("expected default kind, got %v", rec.Kind)
	}
	if !rec.Closeable {
		t.Error("expected new records to be closeable by default")
	}
}

func TestKindShortcuts(t *testing.T) {
	c, _ := newCenter(t)

	tests := []struct {
		add  func(string, ...notify.Option) string
		want notify.Kind
	}{
		{c.Success, notify.KindSuccess},
		{c.Error, notify.KindError},
		{c.Warning, notify.KindWarning},
		{c.Info, notify.KindInfo},
	}

	for _, tt := range tests {
		id := tt.add("x")
		rec, ok := c.Get(id)
		if !ok {
			t.Fatalf("record not found for kind %v", tt.want)
		}
		if rec.Kind != tt.want {
			t.Errorf("expected kind %v, got %v", tt.want, rec.Kind)
		}
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	c, _ := newCenter(t)

	id := c.Add("A", notify.Sticky())
	c.Remove(id)
	if c.Len() != 0 {
		t.Fatalf("expected empty list after Remove, got %d records", c.Len())
	}

	// Second removal of the same id changes nothing and does not panic.
	c.Remove(id)
	if c.Len() != 0 {
		t.Errorf("expected list to stay empty, got %d records", c.Len())
	}
	c.Remove("never-existed")
}

func TestUpdateShallowMerge(t *testing.T) {
	c, _ := newCenter(t)

	id := c.Add("old title",
		notify.WithDescription("desc"),
		notify.WithKind(notify.KindInfo),
		notify.WithDuration(3*time.Second),
	)

	c.Update(id, notify.WithTitle("X"))

	rec, ok := c.Get(id)
	if !ok {
		t.Fatal("record missing after Update")
	}
	if rec.Title != "X" {
		t.Errorf("expected title X, got %q", rec.Title)
	}
	if rec.Description != "desc" {
		t.Errorf("expected description preserved, got %q", rec.Description)
	}
	if rec.Kind != notify.KindInfo {
		t.Errorf("expected kind preserved, got %v", rec.Kind)
	}
	if rec.Duration != 3*time.Second {
		t.Errorf("expected duration preserved, got %v", rec.Duration)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	c, _ := newCenter(t)

	c.Add("A", notify.Sticky())
	before := c.List()

	c.Update("nonexistent", notify.WithTitle("X"))

	after := c.List()
	if len(after) != len(before) {
		t.Fatalf("expected list unchanged, had %d now %d", len(before), len(after))
	}
	if after[0].Title != "A" {
		t.Errorf("expected record untouched, got title %q", after[0].Title)
	}
}

func TestUpdateNeverReinserts(t *testing.T) {
	c, _ := newCenter(t)

	id := c.Add("A", notify.Sticky())
	c.Remove(id)
	c.Update(id, notify.WithTitle("resurrected"))

	if c.Len() != 0 {
		t.Error("Update re-inserted a removed record")
	}
}

func TestStickyRecordNeverExpires(t *testing.T) {
	c, clock := newCenter(t)

	c.Add("forever", notify.WithDuration(0))
	clock.Advance(10_000_000 * time.Millisecond)

	if c.Len() != 1 {
		t.Fatalf("sticky record was removed, list has %d records", c.Len())
	}
}

func TestExpiryBoundary(t *testing.T) {
	c, clock := newCenter(t)

	c.Add("A", notify.WithDuration(3000*time.Millisecond))

	clock.Advance(2999 * time.Millisecond)
	if c.Len() != 1 {
		t.Fatal("record expired before its duration elapsed")
	}

	clock.Advance(time.Millisecond)
	if c.Len() != 0 {
		t.Fatal("record still present after its duration elapsed")
	}
}

func TestStaggeredExpiry(t *testing.T) {
	c, clock := newCenter(t)

	c.Add("A", notify.WithDuration(1000*time.Millisecond))
	c.Add("B", notify.WithDuration(2000*time.Millisecond))

	got := titles(c.List())
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected [A B], got %v", got)
	}

	clock.Advance(1000 * time.Millisecond)
	got = titles(c.List())
	if len(got) != 1 || got[0] != "B" {
		t.Fatalf("after 1000ms expected [B], got %v", got)
	}

	clock.Advance(1000 * time.Millisecond)
	if c.Len() != 0 {
		t.Fatalf("after 2000ms expected empty list, got %v", titles(c.List()))
	}
}

func TestRemoveBeforeExpiryCancelsCleanly(t *testing.T) {
	c, clock := newCenter(t)

	id := c.Add("X") // default 5s duration
	c.Remove(id)
	if c.Len() != 0 {
		t.Fatal("expected empty list after Remove")
	}

	// Advancing past the original expiry is a no-op, not a panic.
	clock.Advance(5000 * time.Millisecond)
	if c.Len() != 0 {
		t.Errorf("expected list to stay empty, got %d records", c.Len())
	}
	if clock.Pending() != 0 {
		t.Errorf("expected expiry timer cancelled, %d still pending", clock.Pending())
	}
}

func TestClearEmptiesEverything(t *testing.T) {
	c, clock := newCenter(t)

	c.Add("A", notify.WithDuration(time.Second))
	c.Add("B", notify.WithDuration(2*time.Second))
	c.Add("C", notify.Sticky())

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty list after Clear, got %d", c.Len())
	}

	// Former timers are gone; advancing time changes nothing.
	clock.Advance(time.Hour)
	if c.Len() != 0 {
		t.Error("expected list to stay empty after advancing time")
	}
}

func TestClearOnEmptyIsNoOp(t *testing.T) {
	c, _ := newCenter(t)

	calls := 0
	unsubscribe := c.Subscribe(func([]notify.Record) { calls++ })
	defer unsubscribe()

	c.Clear()
	if calls != 0 {
		t.Errorf("Clear on empty queue notified listeners %d times", calls)
	}
}

func TestUpdateDoesNotRescheduleTimer(t *testing.T) {
	c, clock := newCenter(t)

	id := c.Add("A", notify.WithDuration(2*time.Second))

	clock.Advance(1900 * time.Millisecond)
	c.Update(id, notify.WithDuration(time.Hour))

	// The stored field changed but the add-time timer still fires.
	clock.Advance(100 * time.Millisecond)
	if c.Len() != 0 {
		t.Error("expected record to expire on its original schedule")
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	c, _ := newCenter(t)

	var last []notify.Record
	calls := 0
	unsubscribe := c.Subscribe(func(records []notify.Record) {
		last = records
		calls++
	})

	id := c.Add("A", notify.Sticky())
	if calls != 1 || len(last) != 1 {
		t.Fatalf("after Add expected 1 call with 1 record, got %d calls, %d records", calls, len(last))
	}

	c.Update(id, notify.WithTitle("B"))
	if calls != 2 || last[0].Title != "B" {
		t.Fatalf("after Update expected updated snapshot, got %v", titles(last))
	}

	c.Remove(id)
	if calls != 3 || len(last) != 0 {
		t.Fatalf("after Remove expected empty snapshot, got %v", titles(last))
	}

	unsubscribe()
	c.Add("C", notify.Sticky())
	if calls != 3 {
		t.Error("listener called after unsubscribe")
	}
}

func TestListenerMayReenterCenter(t *testing.T) {
	c, clock := newCenter(t)

	// A render surface reacting to expiry by reading the list must not
	// deadlock against the expiry path.
	var observed int
	c.Subscribe(func([]notify.Record) {
		observed = c.Len()
	})

	c.Add("A", notify.WithDuration(time.Second))
	clock.Advance(time.Second)

	if observed != 0 {
		t.Errorf("expected re-entrant Len of 0 after expiry, got %d", observed)
	}
}

func TestActionAndCloseableArePreserved(t *testing.T) {
	c, _ := newCenter(t)

	fired := false
	id := c.Add("undo available",
		notify.WithAction("Undo", func() { fired = true }),
		notify.NotCloseable(),
		notify.Sticky(),
	)

	rec, ok := c.Get(id)
	if !ok {
		t.Fatal("record missing")
	}
	if rec.Closeable {
		t.Error("expected record to be not closeable")
	}
	if rec.Action == nil || rec.Action.Label != "Undo" {
		t.Fatalf("expected Undo action, got %+v", rec.Action)
	}

	// The queue never invokes the callback itself.
	if fired {
		t.Error("action callback fired without user activation")
	}
	rec.Action.Do()
	if !fired {
		t.Error("action callback did not run when invoked")
	}
}

func TestDefaultDurationOption(t *testing.T) {
	c, clock := newCenter(t, notify.WithDefaultDuration(time.Second))

	c.Add("quick")
	clock.Advance(time.Second)
	if c.Len() != 0 {
		t.Error("expected record to expire after the configured default duration")
	}
}

func TestCloseStopsNewRecords(t *testing.T) {
	c, _ := newCenter(t)

	c.Add("A", notify.Sticky())
	c.Close()
	if c.Len() != 0 {
		t.Fatal("Close did not clear the queue")
	}

	c.Add("B", notify.Sticky())
	if c.Len() != 0 {
		t.Error("Add after Close inserted a record")
	}
}

func TestMetricsRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, clock := newCenter(t, notify.WithRegistry(registry))

	c.Add("A", notify.WithDuration(time.Second))
	c.Add("B", notify.Sticky())
	clock.Advance(time.Second)
	c.Clear()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	want := map[string]bool{
		"vangoui_notify_records_added_total":   false,
		"vangoui_notify_records_expired_total": false,
		"vangoui_notify_records_cleared_total": false,
		"vangoui_notify_records_active":        false,
	}
	for _, mf := range families {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("metric %s not registered", name)
		}
	}
}
