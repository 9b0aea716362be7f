package ranking

import (
	"github.com/itchan-dev/agora/shared/domain"
)

// NewEngagement combines stored counters into a thread's engagement snapshot.
// Counters below zero can only come from a malformed record and are treated as zero.
func NewEngagement(threadLikes, commentLikes, commentCount int64) domain.Engagement {
	threadLikes = max(threadLikes, 0)
	commentLikes = max(commentLikes, 0)
	commentCount = max(commentCount, 0)
	return domain.Engagement{
		ThreadLikes:  threadLikes,
		CommentLikes: commentLikes,
		CommentCount: commentCount,
		TotalLikes:   threadLikes + commentLikes,
	}
}

// AggregateComments computes engagement from the comments of a thread already loaded in memory.
func AggregateComments(thread domain.Thread, comments []domain.Comment) domain.Engagement {
	var likes, count int64
	for _, c := range comments {
		likes += max(c.Likes, 0)
		count++
	}
	return NewEngagement(thread.Likes, likes, count)
}
