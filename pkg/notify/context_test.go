package notify_test

import (
	"context"
	"testing"

	"github.com/vango-go/vangoui/pkg/notify"
)

func TestFromContextRoundTrip(t *testing.T) {
	center := notify.NewCenter()
	defer center.Close()

	ctx := notify.NewContext(context.Background(), center)
	if got := notify.FromContext(ctx); got != center {
		t.Error("FromContext returned a different Center")
	}
}

func TestFromContextPanicsWithoutCenter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected FromContext to panic on a bare context")
		}
	}()
	notify.FromContext(context.Background())
}

func TestFromContextOK(t *testing.T) {
	if _, ok := notify.FromContextOK(context.Background()); ok {
		t.Error("expected ok=false on a bare context")
	}

	center := notify.NewCenter()
	defer center.Close()
	ctx := notify.NewContext(context.Background(), center)

	got, ok := notify.FromContextOK(ctx)
	if !ok || got != center {
		t.Error("expected the stored Center back")
	}
}
