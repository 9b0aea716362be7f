package handler

import (
	"net/http"

	"github.com/itchan-dev/agora/shared/api"
	"github.com/itchan-dev/agora/shared/domain"
	mw "github.com/itchan-dev/agora/shared/middleware"
	"github.com/itchan-dev/agora/shared/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId, err := h.thread.Create(r.Context(), domain.ThreadCreationData{
		Author:      *user,
		Title:       domain.ThreadTitle(body.Title),
		Description: body.Description,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONWithStatus(w, http.StatusCreated, api.IdResponse{Id: threadId})
}

// GetThread returns the thread page and counts a view.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(r, "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	page, err := h.thread.Get(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewThreadResponse(page))
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId, err := parseIdParam(r, "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Delete(r.Context(), threadId, *user); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RandomThread handles GET /v1/random
func (h *Handler) RandomThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := h.thread.Random(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.IdResponse{Id: threadId})
}
