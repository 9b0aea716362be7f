package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
	sharedpg "github.com/itchan-dev/agora/shared/storage/pg"
)

// likeTable names the counter table and the relation table of a likeable entity.
// Values are compile time constants and safe to interpolate.
type likeTable struct {
	entity   string
	relation string
	fk       string
	name     string
}

var (
	threadLikes  = likeTable{entity: "threads", relation: "thread_likes", fk: "thread_id", name: "Thread"}
	commentLikes = likeTable{entity: "comments", relation: "comment_likes", fk: "comment_id", name: "Comment"}
)

func (s *Storage) ToggleThreadLike(ctx context.Context, id domain.ThreadId, userId domain.UserId) (domain.LikeResult, error) {
	return s.toggleLike(ctx, threadLikes, id, userId)
}

func (s *Storage) ToggleCommentLike(ctx context.Context, id domain.CommentId, userId domain.UserId) (domain.LikeResult, error) {
	return s.toggleLike(ctx, commentLikes, id, userId)
}

// toggleLike flips the (entity, user) like relation and moves the counter with it
// in one transaction. The entity row lock serializes concurrent toggles on the
// same entity, so the counter always equals the size of the relation.
func (s *Storage) toggleLike(ctx context.Context, t likeTable, id, userId int64) (domain.LikeResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var res domain.LikeResult
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var likes int64
		err := tx.QueryRowContext(ctx,
			fmt.Sprintf("SELECT likes FROM %s WHERE id = $1 FOR UPDATE", t.entity), id,
		).Scan(&likes)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound(t.name)
			}
			return fmt.Errorf("failed to lock %s: %w", t.entity, err)
		}

		result, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND user_id = $2", t.relation, t.fk), id, userId,
		)
		if err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}
		removed, err := result.RowsAffected()
		if err != nil {
			return err
		}

		update := "UPDATE %s SET likes = likes + 1 WHERE id = $1 RETURNING likes"
		if removed > 0 {
			update = "UPDATE %s SET likes = GREATEST(likes - 1, 0) WHERE id = $1 RETURNING likes"
		} else {
			_, err = tx.ExecContext(ctx,
				fmt.Sprintf("INSERT INTO %s (%s, user_id) VALUES ($1, $2)", t.relation, t.fk), id, userId,
			)
			if err != nil {
				return fmt.Errorf("failed to add like: %w", err)
			}
		}
		if err := tx.QueryRowContext(ctx, fmt.Sprintf(update, t.entity), id).Scan(&res.Likes); err != nil {
			return fmt.Errorf("failed to update like counter: %w", err)
		}
		res.Liked = removed == 0
		return nil
	})
	if err != nil {
		return domain.LikeResult{}, wrapErr("toggle "+t.name+" like", err)
	}
	return res, nil
}
