package domain

type LikeTarget string

const (
	LikeThread  LikeTarget = "thread"
	LikeComment LikeTarget = "comment"
)

type LikeResult struct {
	Liked bool
	Likes int64 // counter value after the toggle
}
