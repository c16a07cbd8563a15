// Package sharesheet is the desktop stand-in for the mobile share sheet.
// Desktops have no system share UI, so a share opens a mail compose window
// through the default browser.
package sharesheet

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/toqueteos/webbrowser"

	"github.com/arko-chat/webshare/internal/webshare"
)

const (
	codeInvalidAction = "InvalidAction"
	codeOpenFailed    = "OpenFailed"
)

type Plugin struct {
	sharing atomic.Bool
	open    func(string) error
	logger  *slog.Logger
}

func New(logger *slog.Logger) *Plugin {
	return &Plugin{open: webbrowser.Open, logger: logger}
}

// WithOpener replaces the function used to open the compose URL.
func (p *Plugin) WithOpener(open func(string) error) *Plugin {
	p.open = open
	return p
}

func (p *Plugin) Exec(method string, args []any, success func(any), failure func(string)) {
	if method != webshare.MethodShare {
		failure(codeInvalidAction)
		return
	}
	if !p.sharing.CompareAndSwap(false, true) {
		failure(string(webshare.CodeAlreadySharing))
		return
	}
	defer p.sharing.Store(false)

	data, err := firstPayload(args)
	if err != nil {
		p.logger.Warn("share payload rejected", "err", err)
		failure(codeInvalidAction)
		return
	}

	target := ComposeURL(data)
	p.logger.Debug("opening share target", "url", target)
	if err := p.open(target); err != nil {
		p.logger.Error("failed to open share target", "err", err)
		failure(codeOpenFailed)
		return
	}
	success(nil)
}

// ComposeURL builds the mailto link for a payload. The URL is preferred
// over the text as the body, the title becomes the subject.
func ComposeURL(d webshare.ShareData) string {
	q := url.Values{}
	if d.Title != "" {
		q.Set("subject", d.Title)
	}
	body := d.Text
	if d.URL != "" {
		body = d.URL
	}
	if body != "" {
		q.Set("body", body)
	}
	// mailto wants %20, not +.
	return "mailto:?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}

func firstPayload(args []any) (webshare.ShareData, error) {
	if len(args) == 0 {
		return webshare.ShareData{}, fmt.Errorf("missing share payload")
	}
	switch d := args[0].(type) {
	case webshare.ShareData:
		return d, nil
	case *webshare.ShareData:
		if d != nil {
			return *d, nil
		}
	case map[string]any:
		var out webshare.ShareData
		out.Title, _ = d["title"].(string)
		out.Text, _ = d["text"].(string)
		out.URL, _ = d["url"].(string)
		return out, nil
	}
	return webshare.ShareData{}, fmt.Errorf("unexpected share payload %T", args[0])
}
