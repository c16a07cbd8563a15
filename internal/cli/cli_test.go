package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/arko-chat/webshare/internal/webshare"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckPrintsNormalizedPayload(t *testing.T) {
	out, err := runCommand(t, "check", "--title", "Docs", "--url", "/guide", "--base", "https://Example.com/app/")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got["url"] != "https://example.com/guide" || got["title"] != "Docs" {
		t.Fatalf("payload = %#v", got)
	}
	if _, ok := got["text"]; ok {
		t.Fatalf("absent text was emitted: %#v", got)
	}
}

func TestCheckRejections(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"check", "--title", "only"}, "missing content"},
		{[]string{"check", "--text", ""}, "text must be a non empty string"},
		{[]string{"check", "--text", "x", "--file", "a.png"}, "unsupported"},
		{[]string{"check", "--url", "ftp://x"}, "invalid protocol"},
		{[]string{"check", "--url", "/x"}, "could not parse URL"},
	}
	for _, tc := range cases {
		_, err := runCommand(t, tc.args...)
		if !errors.Is(err, webshare.ErrType) || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%v: expected %q, got %v", tc.args, tc.want, err)
		}
	}
}

func TestCheckRejectsRelativeBase(t *testing.T) {
	_, err := runCommand(t, "check", "--url", "/x", "--base", "relative")
	if err == nil || !strings.Contains(err.Error(), "--base") {
		t.Fatalf("expected base error, got %v", err)
	}
}

func TestShareDispatchesOnce(t *testing.T) {
	var calls int
	v := webshare.New(webshare.BridgeFunc(func(target, method string, args []any, success func(any), failure func(string)) {
		calls++
		success(nil)
	}))
	var out bytes.Buffer
	if err := share(context.Background(), v, map[string]any{"text": "hi"}, &out); err != nil {
		t.Fatalf("share: %v", err)
	}
	if calls != 1 || strings.TrimSpace(out.String()) != "shared" {
		t.Fatalf("calls=%d out=%q", calls, out.String())
	}
}

func TestShareSurfacesCancel(t *testing.T) {
	v := webshare.New(webshare.BridgeFunc(func(target, method string, args []any, success func(any), failure func(string)) {
		failure("Cancel")
	}))
	err := share(context.Background(), v, map[string]any{"text": "hi"}, &bytes.Buffer{})
	if !errors.Is(err, webshare.ErrAbort) {
		t.Fatalf("expected AbortError, got %v", err)
	}
}
