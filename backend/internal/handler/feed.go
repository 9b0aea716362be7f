package handler

import (
	"net/http"

	"github.com/itchan-dev/agora/shared/api"
	"github.com/itchan-dev/agora/shared/utils"
)

// GetHome handles GET /v1/threads
func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	threads, err := h.feed.Home(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.NewFeedResponse(threads))
}

// GetStats handles GET /v1/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	threads, err := h.feed.Stats(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.NewFeedResponse(threads))
}

// Search handles GET /v1/search?q=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.feed.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.NewSearchResponse(res))
}
