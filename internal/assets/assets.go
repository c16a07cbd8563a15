package assets

import (
	"embed"
	"encoding/json"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// SettleFunc is the page function the polyfill installs to receive share
// outcomes from a window binding.
const SettleFunc = "__webshareSettle"

// Polyfill is the navigator.share shim injected into pages.
func Polyfill() string {
	b, _ := staticFiles.ReadFile("static/webshare.js")
	return string(b)
}

// StaticFS serves the polyfill and the demo page.
func StaticFS() fs.FS {
	sub, _ := fs.Sub(staticFiles, "static")
	return sub
}

// SettleScript is the script that settles the pending share id on the
// page. value is the resolved result when ok, the wire error otherwise.
func SettleScript(id string, ok bool, value any) (string, error) {
	args, err := json.Marshal([]any{id, ok, value})
	if err != nil {
		return "", err
	}
	return "window." + SettleFunc + ".apply(null, " + string(args) + ")", nil
}
