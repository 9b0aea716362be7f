package handler

import (
	"context"
	"net/http"
	"time"

	internal_errors "github.com/itchan-dev/agora/shared/errors"
	"github.com/itchan-dev/agora/shared/utils"
)

const readyTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports that the process serves requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{Status: "ok"})
}

// Ready pings storage. Feeds and search cannot be built without it, so a failed
// ping is answered like any other StorageUnavailable error.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.StorageUnavailable(err))
		return
	}
	writeJSON(w, healthResponse{Status: "ready"})
}
