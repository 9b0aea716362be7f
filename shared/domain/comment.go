package domain

import "time"

type CommentCreationData struct {
	ThreadId ThreadId
	Author   User
	Content  CommentText
}

type Comment struct {
	Id         CommentId
	ThreadId   ThreadId
	Author     User
	Content    CommentText
	Likes      int64
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

// CommentOwnership is what authorization decisions about a comment need.
type CommentOwnership struct {
	CommentId     CommentId
	ThreadId      ThreadId
	AuthorId      UserId
	ThreadOwnerId UserId
}
