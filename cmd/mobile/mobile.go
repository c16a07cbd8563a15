package mobile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/arko-chat/webshare/internal/bridge"
	"github.com/arko-chat/webshare/internal/logger"
	"github.com/arko-chat/webshare/internal/server"
	"github.com/arko-chat/webshare/internal/webshare"
)

var (
	mu       sync.Mutex
	stopFunc func()
)

// RegisterBridge installs the native share implementation. Call it before
// Start.
func RegisterBridge(b bridge.NativeBridge) {
	bridge.Default().Replace(webshare.Target, bridge.NativePlugin(b, webshare.Target))
}

// Start serves the polyfill and share endpoint on a loopback port and
// returns its base URL. Logs go to dataDir/webshare.log.
func Start(dataDir string) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if stopFunc != nil {
		return "", fmt.Errorf("server already running")
	}

	reg := bridge.Default()
	if _, ok := reg.Lookup(webshare.Target); !ok {
		return "", fmt.Errorf("call RegisterBridge before Start: bridge: no %s target registered", webshare.Target)
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(dataDir, "webshare.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}
	slogger := logger.New(logFile, "debug")

	srv, err := server.Start("127.0.0.1:0", reg, slogger)
	if err != nil {
		logFile.Close()
		return "", err
	}

	stopFunc = func() {
		srv.Close()
		logFile.Close()
	}

	return srv.URL(), nil
}

func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if stopFunc != nil {
		stopFunc()
		stopFunc = nil
	}
}
