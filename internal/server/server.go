package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/arko-chat/webshare/internal/bridge"
	"github.com/arko-chat/webshare/internal/handlers"
	"github.com/arko-chat/webshare/internal/router"
	"github.com/arko-chat/webshare/internal/service"
)

// Server is the local HTTP surface the page talks to.
type Server struct {
	Shares *service.ShareService

	srv    *http.Server
	addr   string
	done   chan error
	logger *slog.Logger
}

// Start listens on addr and serves the share routes backed by reg. origins
// lists extra page origins allowed to call the share API.
func Start(addr string, reg *bridge.Registry, logger *slog.Logger, origins ...string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	shares := service.NewShareService(reg, logger)
	mux := router.New(handlers.New(shares, logger), origins...)

	s := &Server{
		Shares: shares,
		srv:    &http.Server{Handler: mux},
		addr:   fmt.Sprintf("http://%s", listener.Addr().String()),
		done:   make(chan error, 1),
		logger: logger,
	}

	go func() {
		err := s.srv.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			logger.Error("server error", "err", err)
		}
		s.done <- err
	}()

	logger.Info("server starting", "addr", s.addr)
	return s, nil
}

// URL is the base URL of the running server.
func (s *Server) URL() string {
	return s.addr
}

// Wait blocks until the server stops and returns its serve error.
func (s *Server) Wait() error {
	return <-s.done
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server stopping", "addr", s.addr)
	return s.srv.Shutdown(ctx)
}

// Close stops the server immediately.
func (s *Server) Close() error {
	return s.srv.Close()
}
