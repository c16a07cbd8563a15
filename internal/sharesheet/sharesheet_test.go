package sharesheet

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/arko-chat/webshare/internal/webshare"
)

func newTestPlugin(open func(string) error) *Plugin {
	return New(slog.New(slog.DiscardHandler)).WithOpener(open)
}

func TestComposeURL(t *testing.T) {
	cases := []struct {
		in   webshare.ShareData
		want string
	}{
		{webshare.ShareData{Text: "hello world"}, "mailto:?body=hello%20world"},
		{webshare.ShareData{Title: "Hi", Text: "t", URL: "https://a.b/?x=1"}, "mailto:?body=https%3A%2F%2Fa.b%2F%3Fx%3D1&subject=Hi"},
		{webshare.ShareData{}, "mailto:?"},
	}
	for _, tc := range cases {
		if got := ComposeURL(tc.in); got != tc.want {
			t.Fatalf("ComposeURL(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPluginOpensComposeWindow(t *testing.T) {
	var opened string
	p := newTestPlugin(func(u string) error { opened = u; return nil })

	res := webshare.New(p.asBridge()).Share(map[string]any{"text": "hi"})
	if _, err := res.Wait(context.Background()); err != nil {
		t.Fatalf("share: %v", err)
	}
	if opened != "mailto:?body=hi" {
		t.Fatalf("opened %q", opened)
	}
}

func TestPluginRejectsConcurrentShare(t *testing.T) {
	var inner error
	var p *Plugin
	p = newTestPlugin(func(string) error {
		_, inner = webshare.New(p.asBridge()).Share(map[string]any{"text": "again"}).Wait(context.Background())
		return nil
	})

	if _, err := webshare.New(p.asBridge()).Share(map[string]any{"text": "first"}).Wait(context.Background()); err != nil {
		t.Fatalf("first share: %v", err)
	}
	if !errors.Is(inner, webshare.ErrInvalidState) {
		t.Fatalf("expected InvalidStateError for nested share, got %v", inner)
	}

	// The slot is free again afterwards.
	p.WithOpener(func(string) error { return nil })
	if _, err := webshare.New(p.asBridge()).Share(map[string]any{"text": "third"}).Wait(context.Background()); err != nil {
		t.Fatalf("third share: %v", err)
	}
}

func TestPluginOpenFailure(t *testing.T) {
	p := newTestPlugin(func(string) error { return errors.New("no browser") })
	_, err := webshare.New(p.asBridge()).Share(map[string]any{"text": "hi"}).Wait(context.Background())
	if !errors.Is(err, webshare.ErrUnknown) {
		t.Fatalf("expected UnknownError, got %v", err)
	}
}

func TestPluginUnknownMethod(t *testing.T) {
	p := newTestPlugin(func(string) error { t.Fatalf("opened"); return nil })
	var code string
	p.Exec("canShare", nil, func(any) {}, func(c string) { code = c })
	if code != codeInvalidAction {
		t.Fatalf("code = %q", code)
	}
}

func TestPluginAcceptsDecodedPayload(t *testing.T) {
	var opened string
	p := newTestPlugin(func(u string) error { opened = u; return nil })
	p.Exec("share", []any{map[string]any{"title": "T", "text": "x"}}, func(any) {}, func(c string) { t.Fatalf("failure %q", c) })
	if opened != "mailto:?body=x&subject=T" {
		t.Fatalf("opened %q", opened)
	}
}

func (p *Plugin) asBridge() webshare.Bridge {
	return webshare.BridgeFunc(func(target, method string, args []any, success func(any), failure func(string)) {
		p.Exec(method, args, success, failure)
	})
}
