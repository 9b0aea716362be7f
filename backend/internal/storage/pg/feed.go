package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/agora/backend/internal/ranking"
	"github.com/itchan-dev/agora/shared/domain"
	sharedpg "github.com/itchan-dev/agora/shared/storage/pg"
	"github.com/lib/pq"
)

// ListThreadsWithStats returns every thread with its engagement.
// Comment sums come from a single grouped pass joined back to threads.
func (s *Storage) ListThreadsWithStats(ctx context.Context) ([]domain.RankedThread, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
        SELECT `+threadColumns+`,
            COALESCE(c.comment_likes, 0), COALESCE(c.comment_count, 0)
        FROM threads t
        JOIN users u ON u.id = t.author_id
        LEFT JOIN (
            SELECT thread_id, SUM(likes)::BIGINT AS comment_likes, COUNT(*) AS comment_count
            FROM comments
            GROUP BY thread_id
        ) c ON c.thread_id = t.id
    `)
	if err != nil {
		return nil, wrapErr("list threads", err)
	}
	defer rows.Close()

	var threads []domain.RankedThread
	for rows.Next() {
		var commentLikes, commentCount int64
		thread, err := scanThread(rows, &commentLikes, &commentCount)
		if err != nil {
			return nil, wrapErr("list threads", fmt.Errorf("failed to scan thread: %w", err))
		}
		threads = append(threads, domain.RankedThread{
			Thread:     thread,
			Engagement: ranking.NewEngagement(thread.Likes, commentLikes, commentCount),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list threads", err)
	}
	return threads, nil
}

// SearchCorpus loads every thread whose title, description, author username or
// any comment contains at least one of patterns (already lowercase), together with
// all comments of those threads and the forum wide totals. Everything is read
// from one snapshot.
func (s *Storage) SearchCorpus(ctx context.Context, patterns []string) (domain.SearchCorpus, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var corpus domain.SearchCorpus
	err := sharedpg.WithReadTx(ctx, s.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
            SELECT (SELECT COUNT(*) FROM threads), (SELECT COUNT(*) FROM comments)
        `).Scan(&corpus.TotalThreads, &corpus.TotalComments)
		if err != nil {
			return fmt.Errorf("failed to count corpus: %w", err)
		}
		if len(patterns) == 0 {
			return nil
		}

		threads, err := candidateThreads(ctx, tx, patterns)
		if err != nil {
			return err
		}
		ids := make([]domain.ThreadId, 0, len(threads))
		for _, t := range threads {
			ids = append(ids, t.Id)
		}
		comments, err := commentsOf(ctx, tx, ids)
		if err != nil {
			return err
		}

		corpus.Documents = make([]domain.SearchDocument, 0, len(threads))
		for _, t := range threads {
			corpus.Documents = append(corpus.Documents, domain.SearchDocument{Thread: t, Comments: comments[t.Id]})
		}
		return nil
	})
	if err != nil {
		return domain.SearchCorpus{}, wrapErr("search corpus", err)
	}
	return corpus, nil
}

func candidateThreads(ctx context.Context, q sharedpg.Querier, patterns []string) ([]domain.Thread, error) {
	rows, err := q.QueryContext(ctx, `
        WITH p AS (SELECT unnest($1::text[]) AS pat),
        commented AS (
            SELECT DISTINCT c.thread_id
            FROM comments c, p
            WHERE strpos(lower(c.content), p.pat) > 0
        )
        SELECT `+threadColumns+`
        FROM threads t
        JOIN users u ON u.id = t.author_id
        WHERE t.id IN (SELECT thread_id FROM commented)
            OR EXISTS (
                SELECT 1 FROM p
                WHERE strpos(lower(t.title), p.pat) > 0
                    OR strpos(lower(t.description), p.pat) > 0
                    OR strpos(lower(u.username), p.pat) > 0
            )
        ORDER BY t.id
    `, pq.Array(patterns))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}
