package webview

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	webview "github.com/webview/webview_go"

	"github.com/arko-chat/webshare/internal/assets"
	"github.com/arko-chat/webshare/internal/service"
	"github.com/arko-chat/webshare/internal/webshare"
)

const (
	baseTitle   = "webshare"
	bindingName = "__webshare"
)

type Options struct {
	URL    string
	Debug  bool
	Width  int
	Height int
}

// window is the part of webview.WebView used once the window is running.
// Dispatch is the only method safe to call off the UI thread.
type window interface {
	Dispatch(f func())
	Eval(js string)
	Terminate()
}

// Host is the desktop window exposing navigator.share to its page.
type Host struct {
	svc    *service.ShareService
	logger *slog.Logger

	mu           sync.Mutex
	window       window
	closePending bool
}

func NewHost(svc *service.ShareService, logger *slog.Logger) *Host {
	return &Host{svc: svc, logger: logger}
}

// Run opens the window and blocks until it is closed. A Close that arrives
// before the window is up makes Run return without showing it.
func (h *Host) Run(ctx context.Context, opts Options) error {
	w := webview.New(opts.Debug)
	if w == nil {
		return errors.New("webview: failed to create window")
	}
	defer w.Destroy()

	w.SetTitle(baseTitle)
	w.SetSize(opts.Width, opts.Height, webview.HintMin)
	w.Init(assets.Polyfill())

	if err := w.Bind(bindingName, h.binding(ctx, w)); err != nil {
		return err
	}

	if !h.attach(w) {
		h.logger.Info("close requested before window opened")
		return nil
	}
	defer h.detach()

	h.logger.Info("opening window", "url", opts.URL)
	w.Navigate(opts.URL)
	w.Run()
	return nil
}

// Close asks a running window to shut down, or stops the next Run from
// opening one.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.window == nil {
		h.closePending = true
		return
	}
	w := h.window
	w.Dispatch(func() {
		w.Terminate()
	})
}

func (h *Host) attach(w window) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closePending {
		return false
	}
	h.window = w
	return true
}

func (h *Host) detach() {
	h.mu.Lock()
	h.window = nil
	h.mu.Unlock()
}

// binding is what the page calls through window.__webshare. It returns at
// once; the UI thread must not wait on the native share sheet. The outcome
// is delivered later through the polyfill's settle function, rejections in
// the JSON form the polyfill rebuilds into TypeError/DOMException.
func (h *Host) binding(ctx context.Context, w window) func(id string, data any, focused *bool, base string) {
	return func(id string, data any, focused *bool, base string) {
		go func() {
			result, err := h.svc.Share(ctx, service.Call{Data: data, Focused: focused, Base: base})
			h.settle(w, id, result, err)
		}()
	}
}

func (h *Host) settle(w window, id string, result any, err error) {
	script, sErr := settleScript(id, result, err)
	if sErr != nil {
		h.logger.Error("failed to encode share outcome", "id", id, "err", sErr)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.window != w {
		h.logger.Debug("window gone, dropping share outcome", "id", id)
		return
	}
	w.Dispatch(func() {
		w.Eval(script)
	})
}

func settleScript(id string, result any, err error) (string, error) {
	if err != nil {
		return assets.SettleScript(id, false, webshare.ToWire(err))
	}
	script, mErr := assets.SettleScript(id, true, result)
	if mErr != nil {
		return assets.SettleScript(id, false, webshare.ToWire(&webshare.Error{
			Kind:    webshare.KindUnknown,
			Message: "share result could not be encoded",
			Err:     mErr,
		}))
	}
	return script, nil
}
