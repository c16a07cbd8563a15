package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/arko-chat/webshare/internal/service"
	"github.com/arko-chat/webshare/internal/webshare"
)

type Handler struct {
	svc    *service.ShareService
	logger *slog.Logger
}

func New(svc *service.ShareService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

var statusByKind = map[webshare.Kind]int{
	webshare.KindType:         http.StatusBadRequest,
	webshare.KindNotAllowed:   http.StatusForbidden,
	webshare.KindInvalidState: http.StatusConflict,
	webshare.KindAbort:        http.StatusUnprocessableEntity,
	webshare.KindUnknown:      http.StatusBadGateway,
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to write response", "err", err)
	}
}

func (h *Handler) shareError(w http.ResponseWriter, err error) {
	status, ok := statusByKind[webshare.KindOf(err)]
	if !ok {
		h.logger.Error("handler error", "err", err)
		status = http.StatusInternalServerError
	}
	h.writeJSON(w, status, webshare.ToWire(err))
}
