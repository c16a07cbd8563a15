package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arko-chat/webshare/internal/service"
	"github.com/arko-chat/webshare/internal/webshare"
)

const maxShareBody = 1 << 20

type shareResponse struct {
	Result any `json:"result"`
}

func (h *Handler) HandleShare(w http.ResponseWriter, r *http.Request) {
	var call service.Call
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxShareBody))
	if err := dec.Decode(&call); err != nil {
		h.shareError(w, &webshare.Error{
			Kind:    webshare.KindType,
			Message: "malformed share request: " + err.Error(),
			Err:     err,
		})
		return
	}

	result, err := h.svc.Share(r.Context(), call)
	if err != nil {
		h.shareError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, shareResponse{Result: result})
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Stats())
}
