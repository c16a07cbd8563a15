package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/arko-chat/webshare/internal/webshare"
)

func newTestService(bridge webshare.Bridge) *ShareService {
	return NewShareService(bridge, slog.New(slog.DiscardHandler))
}

func recordingBridge(got *[]any, code string) webshare.Bridge {
	return webshare.BridgeFunc(func(target, method string, args []any, success func(any), failure func(string)) {
		*got = append(*got, args...)
		if code != "" {
			failure(code)
			return
		}
		success("ok")
	})
}

func boolPtr(b bool) *bool { return &b }

func TestShareServiceResolvesAgainstBase(t *testing.T) {
	var got []any
	svc := newTestService(recordingBridge(&got, ""))

	v, err := svc.Share(context.Background(), Call{
		Data:    map[string]any{"url": "/post/1"},
		Focused: boolPtr(true),
		Base:    "https://example.com/feed",
	})
	if err != nil || v != "ok" {
		t.Fatalf("share: %v, %v", v, err)
	}
	if len(got) != 1 || got[0].(webshare.ShareData).URL != "https://example.com/post/1" {
		t.Fatalf("dispatched %#v", got)
	}
	if svc.Stats()["resolved"] != 1 {
		t.Fatalf("stats = %v", svc.Stats())
	}
}

func TestShareServiceUnfocused(t *testing.T) {
	var got []any
	svc := newTestService(recordingBridge(&got, ""))

	_, err := svc.Share(context.Background(), Call{Data: map[string]any{"text": "x"}, Focused: boolPtr(false)})
	if !errors.Is(err, webshare.ErrNotAllowed) {
		t.Fatalf("expected NotAllowedError, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unexpected dispatch")
	}
	if svc.Stats()["NotAllowedError"] != 1 {
		t.Fatalf("stats = %v", svc.Stats())
	}
}

func TestShareServiceIgnoresBadBase(t *testing.T) {
	var got []any
	svc := newTestService(recordingBridge(&got, ""))

	_, err := svc.Share(context.Background(), Call{Data: map[string]any{"url": "/x"}, Base: "relative/only"})
	if !errors.Is(err, webshare.ErrType) {
		t.Fatalf("expected TypeError without a usable base, got %v", err)
	}
}

func TestShareServiceCountsNativeFailures(t *testing.T) {
	var got []any
	svc := newTestService(recordingBridge(&got, "Cancel"))
	for range 2 {
		if _, err := svc.Share(context.Background(), Call{Data: map[string]any{"text": "x"}}); !errors.Is(err, webshare.ErrAbort) {
			t.Fatalf("expected AbortError, got %v", err)
		}
	}
	if n := svc.Stats()["AbortError"]; n != 2 {
		t.Fatalf("AbortError count = %d", n)
	}
}

func TestShareServiceWaitBoundedByContext(t *testing.T) {
	never := webshare.BridgeFunc(func(string, string, []any, func(any), func(string)) {})
	svc := newTestService(never)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := svc.Share(ctx, Call{Data: map[string]any{"text": "x"}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline, got %v", err)
	}
	if len(svc.Stats()) != 0 {
		t.Fatalf("timeouts should not be counted: %v", svc.Stats())
	}
}
