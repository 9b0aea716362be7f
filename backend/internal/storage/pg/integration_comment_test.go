package pg

import (
	"context"
	"testing"

	"github.com/itchan-dev/agora/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	truncate(t)
	ctx := context.Background()

	t.Run("ThreadNotFound", func(t *testing.T) {
		_, err := storage.CreateComment(ctx, domain.CommentCreationData{ThreadId: -1, Author: user(1), Content: "hi"})
		requireNotFoundError(t, err)
	})

	t.Run("Ownership", func(t *testing.T) {
		threadId := createThread(t, user(1), "thread", "")
		id := createComment(t, threadId, user(2), "reply")

		o, err := storage.GetCommentOwnership(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.CommentOwnership{CommentId: id, ThreadId: threadId, AuthorId: 2, ThreadOwnerId: 1}, o)
	})
}

func TestEditComment(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	threadId := createThread(t, user(1), "thread", "")
	id := createComment(t, threadId, user(2), "typo")

	require.NoError(t, storage.EditComment(ctx, id, "fixed"))

	page, err := storage.GetThread(ctx, threadId)
	require.NoError(t, err)
	require.Len(t, page.Comments, 1)
	assert.Equal(t, "fixed", page.Comments[0].Content)
	assert.NotNil(t, page.Comments[0].ModifiedAt)

	requireNotFoundError(t, storage.EditComment(ctx, -1, "nothing"))
}

func TestDeleteComment(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	threadId := createThread(t, user(1), "thread", "")
	id := createComment(t, threadId, user(2), "bye")
	_, err := storage.ToggleCommentLike(ctx, id, 5)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteComment(ctx, id))

	page, err := storage.GetThread(ctx, threadId)
	require.NoError(t, err)
	assert.Empty(t, page.Comments)
	requireNotFoundError(t, storage.DeleteComment(ctx, id))
}
