package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
	sharedpg "github.com/itchan-dev/agora/shared/storage/pg"
	"github.com/lib/pq"
)

func (s *Storage) CreateComment(ctx context.Context, creationData domain.CommentCreationData) (domain.CommentId, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var id domain.CommentId
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		// FOR SHARE keeps the thread from being deleted until the comment is in
		var threadId domain.ThreadId
		err := tx.QueryRowContext(ctx, "SELECT id FROM threads WHERE id = $1 FOR SHARE", creationData.ThreadId).Scan(&threadId)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Thread")
			}
			return fmt.Errorf("failed to lock thread: %w", err)
		}
		if err := upsertUser(ctx, tx, creationData.Author); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, `
            INSERT INTO comments (thread_id, author_id, content)
            VALUES ($1, $2, $3)
            RETURNING id
        `, creationData.ThreadId, creationData.Author.Id, creationData.Content).Scan(&id)
	})
	if err != nil {
		return -1, wrapErr("create comment", err)
	}
	return id, nil
}

func (s *Storage) GetCommentOwnership(ctx context.Context, id domain.CommentId) (domain.CommentOwnership, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o := domain.CommentOwnership{CommentId: id}
	err := s.db.QueryRowContext(ctx, `
        SELECT c.thread_id, c.author_id, t.author_id
        FROM comments c JOIN threads t ON t.id = c.thread_id
        WHERE c.id = $1
    `, id).Scan(&o.ThreadId, &o.AuthorId, &o.ThreadOwnerId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CommentOwnership{}, internal_errors.NotFound("Comment")
		}
		return domain.CommentOwnership{}, wrapErr("get comment ownership", err)
	}
	return o, nil
}

func (s *Storage) EditComment(ctx context.Context, id domain.CommentId, content domain.CommentText) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `
        UPDATE comments SET content = $2, modified_at = NOW()
        WHERE id = $1
    `, id, content)
	if err != nil {
		return wrapErr("edit comment", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Comment")
	}
	return nil
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return wrapErr("delete comment", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Comment")
	}
	return nil
}

// commentsOf loads the comments of several threads in one query, grouped by thread.
func commentsOf(ctx context.Context, q sharedpg.Querier, threadIds []domain.ThreadId) (map[domain.ThreadId][]domain.Comment, error) {
	out := make(map[domain.ThreadId][]domain.Comment, len(threadIds))
	if len(threadIds) == 0 {
		return out, nil
	}
	rows, err := q.QueryContext(ctx, `
        SELECT c.id, c.thread_id, c.author_id, u.username, c.content, c.likes, c.created_at, c.modified_at
        FROM comments c JOIN users u ON u.id = c.author_id
        WHERE c.thread_id = ANY($1)
        ORDER BY c.thread_id, c.created_at, c.id
    `, pq.Array(threadIds))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.Id, &c.ThreadId, &c.Author.Id, &c.Author.Username,
			&c.Content, &c.Likes, &c.CreatedAt, &c.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		out[c.ThreadId] = append(out[c.ThreadId], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}
