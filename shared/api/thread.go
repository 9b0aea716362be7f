package api

import (
	"time"

	"github.com/itchan-dev/agora/shared/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// Response DTOs

type UserResponse struct {
	Id       domain.UserId   `json:"id"`
	Username domain.Username `json:"username"`
}

type EngagementResponse struct {
	ThreadLikes  int64 `json:"thread_likes"`
	CommentLikes int64 `json:"comment_likes"`
	CommentCount int64 `json:"comment_count"`
	TotalLikes   int64 `json:"total_likes"`
}

// ThreadMetadataResponse is a thread without its comments, as listed in feeds.
type ThreadMetadataResponse struct {
	Id          domain.ThreadId    `json:"id"`
	Author      UserResponse       `json:"author"`
	Title       domain.ThreadTitle `json:"title"`
	Description string             `json:"description"`
	Likes       int64              `json:"likes"`
	Views       int64              `json:"views"`
	CreatedAt   time.Time          `json:"created_at"`
	Engagement  EngagementResponse `json:"engagement"`
}

// ThreadResponse wraps a full thread page with comments
type ThreadResponse struct {
	ThreadMetadataResponse
	Comments []CommentResponse `json:"comments"`
}

type IdResponse struct {
	Id int64 `json:"id"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{Id: u.Id, Username: u.Username}
}

func NewEngagementResponse(e domain.Engagement) EngagementResponse {
	return EngagementResponse(e)
}

func NewThreadMetadataResponse(t domain.Thread, e domain.Engagement) ThreadMetadataResponse {
	return ThreadMetadataResponse{
		Id:          t.Id,
		Author:      NewUserResponse(t.Author),
		Title:       t.Title,
		Description: t.Description,
		Likes:       t.Likes,
		Views:       t.Views,
		CreatedAt:   t.CreatedAt,
		Engagement:  NewEngagementResponse(e),
	}
}

func NewThreadResponse(page domain.ThreadPage) ThreadResponse {
	comments := make([]CommentResponse, len(page.Comments))
	for i, c := range page.Comments {
		comments[i] = NewCommentResponse(c)
	}
	return ThreadResponse{
		ThreadMetadataResponse: NewThreadMetadataResponse(page.Thread, page.Engagement),
		Comments:               comments,
	}
}
