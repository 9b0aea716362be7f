package handler

import (
	"net/http"

	"github.com/itchan-dev/agora/shared/api"
	"github.com/itchan-dev/agora/shared/domain"
	mw "github.com/itchan-dev/agora/shared/middleware"
	"github.com/itchan-dev/agora/shared/utils"
)

// ToggleThreadLike handles POST /v1/threads/{thread}/like
func (h *Handler) ToggleThreadLike(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, domain.LikeThread, "thread")
}

// ToggleCommentLike handles POST /v1/comments/{comment}/like
func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, domain.LikeComment, "comment")
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request, target domain.LikeTarget, param string) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := parseIdParam(r, param)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	res, err := h.like.Toggle(r.Context(), target, id, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.LikeResponse{Liked: res.Liked, Likes: res.Likes})
}
