package handler

import (
	"net/http"

	"github.com/itchan-dev/agora/shared/api"
	"github.com/itchan-dev/agora/shared/domain"
	mw "github.com/itchan-dev/agora/shared/middleware"
	"github.com/itchan-dev/agora/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	commentId, err := h.comment.Create(r.Context(), domain.CommentCreationData{
		ThreadId: threadId,
		Author:   *user,
		Content:  domain.CommentText(body.Content),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONWithStatus(w, http.StatusCreated, api.IdResponse{Id: commentId})
}

func (h *Handler) EditComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	commentId, err := parseIdParam(r, "comment")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.EditCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.Edit(r.Context(), commentId, *user, domain.CommentText(body.Content)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	commentId, err := parseIdParam(r, "comment")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.Delete(r.Context(), commentId, *user); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
