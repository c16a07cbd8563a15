package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/arko-chat/webshare/internal/assets"
	"github.com/arko-chat/webshare/internal/handlers"
	"github.com/arko-chat/webshare/internal/middleware"
)

// New builds the routes. Pages served from origins other than this server
// may call the share API only if listed in origins.
func New(h *handlers.Handler, origins ...string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)

	static := http.FileServer(http.FS(assets.StaticFS()))
	r.Get("/", static.ServeHTTP)
	r.Get("/webshare.js", static.ServeHTTP)

	r.Route("/api/share", func(r chi.Router) {
		r.Use(middleware.SameOrigin(origins...))
		r.Post("/", h.HandleShare)
		r.Get("/stats", h.HandleStats)
	})

	return r
}
