package api

import (
	"time"

	"github.com/itchan-dev/agora/shared/domain"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type EditCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type CommentResponse struct {
	Id         domain.CommentId   `json:"id"`
	ThreadId   domain.ThreadId    `json:"thread_id"`
	Author     UserResponse       `json:"author"`
	Content    domain.CommentText `json:"content"`
	Likes      int64              `json:"likes"`
	CreatedAt  time.Time          `json:"created_at"`
	ModifiedAt *time.Time         `json:"modified_at,omitempty"`
}

func NewCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		Id:         c.Id,
		ThreadId:   c.ThreadId,
		Author:     NewUserResponse(c.Author),
		Content:    c.Content,
		Likes:      c.Likes,
		CreatedAt:  c.CreatedAt,
		ModifiedAt: c.ModifiedAt,
	}
}
