package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
)

type LikeService interface {
	Toggle(ctx context.Context, target domain.LikeTarget, id int64, userId domain.UserId) (domain.LikeResult, error)
}

type Like struct {
	storage LikeStorage
}

// LikeStorage toggles are atomic: concurrent toggles by different users never
// lose an update and a double toggle by one user restores the original state.
type LikeStorage interface {
	ToggleThreadLike(ctx context.Context, id domain.ThreadId, userId domain.UserId) (domain.LikeResult, error)
	ToggleCommentLike(ctx context.Context, id domain.CommentId, userId domain.UserId) (domain.LikeResult, error)
}

func NewLike(storage LikeStorage) LikeService {
	return &Like{storage}
}

func (l *Like) Toggle(ctx context.Context, target domain.LikeTarget, id int64, userId domain.UserId) (domain.LikeResult, error) {
	var (
		res domain.LikeResult
		err error
	)
	switch target {
	case domain.LikeThread:
		res, err = l.storage.ToggleThreadLike(ctx, id, userId)
	case domain.LikeComment:
		res, err = l.storage.ToggleCommentLike(ctx, id, userId)
	default:
		return domain.LikeResult{}, internal_errors.Validation(fmt.Sprintf("Unknown like target %q", target))
	}
	if err != nil {
		return domain.LikeResult{}, err
	}

	outcome := "unliked"
	if res.Liked {
		outcome = "liked"
	}
	likeToggles.WithLabelValues(string(target), outcome).Inc()
	return res, nil
}
