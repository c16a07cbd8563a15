package bridge

import (
	"encoding/json"

	"github.com/arko-chat/webshare/internal/webshare"
)

// NativeBridge is implemented by the native side (Swift/Kotlin) through
// gomobile, so it carries only strings and the Callback interface. Results
// and failures travel through the callback, never as return values.
type NativeBridge interface {
	// Exec runs method on the named native target. argsJSON is a JSON
	// array. Exactly one of cb.Success or cb.Error must be called, once.
	Exec(target string, method string, argsJSON string, cb Callback)
}

// Callback is handed to native code for a single Exec call.
type Callback interface {
	// Success takes the JSON encoded result, or "" for no result.
	Success(resultJSON string)

	// Error takes a native error code such as "Cancel".
	Error(code string)
}

const codeInvalidArgs = "InvalidArgs"

type callback struct {
	success func(any)
	failure func(string)
}

func (c *callback) Success(resultJSON string) {
	if resultJSON == "" {
		c.success(nil)
		return
	}
	var v any
	if err := json.Unmarshal([]byte(resultJSON), &v); err != nil {
		// Not JSON; hand the raw string through.
		c.success(resultJSON)
		return
	}
	c.success(v)
}

func (c *callback) Error(code string) {
	c.failure(code)
}

// FromNative adapts a NativeBridge to the Go side bridge call.
func FromNative(nb NativeBridge) webshare.Bridge {
	return webshare.BridgeFunc(func(target, method string, args []any, success func(any), failure func(string)) {
		raw, err := json.Marshal(args)
		if err != nil {
			failure(codeInvalidArgs)
			return
		}
		nb.Exec(target, method, string(raw), &callback{success: success, failure: failure})
	})
}

// Plugin is a bridge target living on the Go side.
type Plugin interface {
	Exec(method string, args []any, success func(any), failure func(string))
}

// NativePlugin exposes one target of a NativeBridge as a Plugin.
func NativePlugin(nb NativeBridge, target string) Plugin {
	return &nativePlugin{bridge: FromNative(nb), target: target}
}

type nativePlugin struct {
	bridge webshare.Bridge
	target string
}

func (p *nativePlugin) Exec(method string, args []any, success func(any), failure func(string)) {
	p.bridge.Exec(p.target, method, args, success, failure)
}
