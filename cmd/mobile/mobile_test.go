package mobile

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/arko-chat/webshare/internal/bridge"
)

type nativeShare struct {
	argsJSON string
}

func (n *nativeShare) Exec(target string, method string, argsJSON string, cb bridge.Callback) {
	n.argsJSON = argsJSON
	cb.Error("Cancel")
}

func TestStartServesThroughNativeBridge(t *testing.T) {
	native := &nativeShare{}
	RegisterBridge(native)

	addr, err := Start(t.TempDir())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(Stop)

	if _, err := Start(t.TempDir()); err == nil {
		t.Fatalf("expected already running error")
	}

	resp, err := http.Post(addr+"/api/share", "application/json",
		strings.NewReader(`{"data":{"url":"/a"},"base":"https://example.com/"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Name != "AbortError" {
		t.Fatalf("name = %q", body.Name)
	}
	if native.argsJSON != `[{"url":"https://example.com/a"}]` {
		t.Fatalf("native args = %s", native.argsJSON)
	}
}
