// Package webshare implements navigator.share on top of a native bridge.
//
// A Validator checks and normalizes a share payload and, when it is valid,
// makes exactly one bridge call to the "share" method of the "WebShareAPI"
// target. The bridge answers through a success or a failure callback, which
// settles the returned Result.
package webshare

import (
	"log/slog"
	"maps"
	"reflect"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

const (
	Target      = "WebShareAPI"
	MethodShare = "share"
)

// Bridge is the generic native call. Implementations invoke at most one of
// success or failure, possibly from another goroutine.
type Bridge interface {
	Exec(target, method string, args []any, success func(any), failure func(string))
}

// BridgeFunc adapts a function to Bridge.
type BridgeFunc func(target, method string, args []any, success func(any), failure func(string))

func (f BridgeFunc) Exec(target, method string, args []any, success func(any), failure func(string)) {
	f(target, method, args, success, failure)
}

type Validator struct {
	bridge  Bridge
	focused func() bool
	base    *whatwg.Url
	logger  *slog.Logger
}

type Option func(*Validator)

// WithFocus installs the host's "document has focus" predicate. Without
// it the host is treated as having no focus concept and the check is
// skipped.
func WithFocus(fn func() bool) Option {
	return func(v *Validator) { v.focused = fn }
}

// WithBase sets the location relative URLs are resolved against. See
// ParseBase.
func WithBase(base *whatwg.Url) Option {
	return func(v *Validator) { v.base = base }
}

func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

func New(bridge Bridge, opts ...Option) *Validator {
	v := &Validator{
		bridge: bridge,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Share validates data and dispatches it to the native layer. Validation
// failures come back as an already rejected Result; no bridge call is
// made in that case.
func (v *Validator) Share(data any) *Result {
	payload, err := v.Normalize(data)
	if err != nil {
		v.logger.Debug("share rejected", "kind", KindOf(err), "err", err)
		return rejected(err)
	}
	if v.bridge == nil {
		return rejected(&Error{Kind: KindUnknown, Message: "no native bridge available"})
	}

	res := newResult()
	v.logger.Debug("share dispatched", "target", Target, "method", MethodShare)
	v.bridge.Exec(Target, MethodShare, []any{payload},
		func(value any) {
			if !res.resolve(value) {
				v.logger.Warn("ignoring late share success callback")
			}
		},
		func(code string) {
			if !res.reject(Code(code).Err()) {
				v.logger.Warn("ignoring late share failure callback", "code", code)
			}
		},
	)
	return res
}

// Normalize runs every check Share runs and returns the payload that would
// be dispatched. It has no side effects.
func (v *Validator) Normalize(data any) (ShareData, error) {
	var f fields
	switch d := data.(type) {
	case map[string]any:
		if d == nil {
			return ShareData{}, typeError("", "expected a dictionary as first parameter")
		}
		f = fieldsFromMap(d)
	case map[string]string:
		if d == nil {
			return ShareData{}, typeError("", "expected a dictionary as first parameter")
		}
		m := make(map[string]any, len(d))
		for k, s := range d {
			m[k] = s
		}
		f = fieldsFromMap(m)
	case ShareData:
		f = fieldsFromData(d)
	case *ShareData:
		if d == nil {
			return ShareData{}, typeError("", "expected a dictionary as first parameter")
		}
		f = fieldsFromData(*d)
	default:
		return ShareData{}, typeError("", "expected a dictionary as first parameter")
	}

	title, err := optionalString("title", f.title)
	if err != nil {
		return ShareData{}, err
	}
	text, err := optionalString("text", f.text)
	if err != nil {
		return ShareData{}, err
	}
	rawURL, err := optionalString("url", f.url)
	if err != nil {
		return ShareData{}, err
	}

	if v.focused != nil && !v.focused() {
		return ShareData{}, &Error{Kind: KindNotAllowed, Message: "sharing is not allowed while the document is unfocused"}
	}

	// A title on its own is not enough for any share target.
	if rawURL == "" && text == "" && f.files == nil {
		return ShareData{}, typeError("", "missing content to share")
	}

	if f.files != nil {
		rv := reflect.ValueOf(f.files)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return ShareData{}, typeError("files", "'files' must be an array")
		}
		if rv.Len() == 0 {
			return ShareData{}, typeError("files", "'files' must have at least 1 item")
		}
		return ShareData{}, typeError("files", "sharing of files is unsupported")
	}

	out := ShareData{
		Title: title,
		Text:  text,
		URL:   rawURL,
		Extra: maps.Clone(f.extra),
	}

	if rawURL != "" {
		u, err := resolveURL(v.base, rawURL)
		if err != nil {
			return ShareData{}, &Error{Kind: KindType, Field: "url", Message: "could not parse URL: " + err.Error(), Err: err}
		}
		if u.Scheme() != "http" && u.Scheme() != "https" {
			return ShareData{}, typeError("url", "invalid protocol %q: only http and https URLs can be shared", u.Scheme())
		}
		out.URL = u.Href(false)
	}

	return out, nil
}

func optionalString(name string, v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", typeError(name, "%s must be a non empty string", name)
	}
	return s, nil
}
