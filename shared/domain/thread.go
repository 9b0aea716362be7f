package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Author      User
	Title       ThreadTitle
	Description string
}

type Thread struct {
	Id          ThreadId
	Author      User
	Title       ThreadTitle
	Description string
	Likes       int64 // thread level likes only
	Views       int64
	CreatedAt   time.Time
}

// Engagement is derived on demand and never stored.
type Engagement struct {
	ThreadLikes  int64
	CommentLikes int64 // sum over attached comments
	CommentCount int64
	TotalLikes   int64
}

// ThreadPage is a thread with everything shown on its own page.
type ThreadPage struct {
	Thread
	Engagement Engagement
	Comments   []Comment
}
