package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/arko-chat/webshare/internal/cli"
)

func init() {
	// The webview event loop must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(newServeCommand).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "webshare:", err)
		stop()
		os.Exit(1)
	}
}
