package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
	sharedpg "github.com/itchan-dev/agora/shared/storage/pg"
)

const threadColumns = `t.id, t.author_id, u.username, t.title, t.description, t.likes, t.views, t.created_at`

func scanThread(row rowScanner, dest ...any) (domain.Thread, error) {
	var t domain.Thread
	fields := []any{&t.Id, &t.Author.Id, &t.Author.Username, &t.Title, &t.Description, &t.Likes, &t.Views, &t.CreatedAt}
	err := row.Scan(append(fields, dest...)...)
	return t, err
}

func (s *Storage) CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var id domain.ThreadId
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := upsertUser(ctx, tx, creationData.Author); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, `
            INSERT INTO threads (author_id, title, description)
            VALUES ($1, $2, $3)
            RETURNING id
        `, creationData.Author.Id, creationData.Title, creationData.Description).Scan(&id)
	})
	if err != nil {
		return -1, wrapErr("create thread", err)
	}
	return id, nil
}

// GetThread counts a view and returns the thread with its comments in creation order.
func (s *Storage) GetThread(ctx context.Context, id domain.ThreadId) (domain.ThreadPage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var page domain.ThreadPage
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		thread, err := scanThread(tx.QueryRowContext(ctx, `
            WITH t AS (
                UPDATE threads SET views = views + 1
                WHERE id = $1
                RETURNING *
            )
            SELECT `+threadColumns+`
            FROM t JOIN users u ON u.id = t.author_id
        `, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Thread")
			}
			return err
		}

		comments, err := commentsOf(ctx, tx, []domain.ThreadId{id})
		if err != nil {
			return err
		}
		page = domain.ThreadPage{Thread: thread, Comments: comments[id]}
		return nil
	})
	if err != nil {
		return domain.ThreadPage{}, wrapErr("get thread", err)
	}
	return page, nil
}

func (s *Storage) GetThreadAuthor(ctx context.Context, id domain.ThreadId) (domain.UserId, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var author domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT author_id FROM threads WHERE id = $1", id).Scan(&author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, internal_errors.NotFound("Thread")
		}
		return -1, wrapErr("get thread author", err)
	}
	return author, nil
}

func (s *Storage) RandomThreadId(ctx context.Context) (domain.ThreadId, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var id domain.ThreadId
	err := s.db.QueryRowContext(ctx, "SELECT id FROM threads ORDER BY random() LIMIT 1").Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, internal_errors.NotFound("Thread")
		}
		return -1, wrapErr("random thread", err)
	}
	return id, nil
}

// DeleteThread removes the thread. Comments and likes cascade via foreign keys.
func (s *Storage) DeleteThread(ctx context.Context, id domain.ThreadId) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.db.ExecContext(ctx, "DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return wrapErr("delete thread", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Thread")
	}
	return nil
}
