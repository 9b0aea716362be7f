package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/itchan-dev/agora/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchResponse(t *testing.T) {
	threads := []domain.RankedThread{{
		Thread:     domain.Thread{Id: 1, Title: "Node.js", Author: domain.User{Id: 2, Username: "gurshaan"}},
		Engagement: domain.Engagement{ThreadLikes: 1, TotalLikes: 7},
		Relevance:  domain.Relevance{FreqScore: 2, FtScore: 1.5},
	}}

	t.Run("scored search carries relevance", func(t *testing.T) {
		res := NewSearchResponse(domain.SearchResult{Query: "node", Mode: domain.ModeNatural, Threads: threads})

		require.Len(t, res.Threads, 1)
		require.NotNil(t, res.Threads[0].Relevance)
		assert.Equal(t, 2, res.Threads[0].Relevance.FreqScore)
		assert.Equal(t, int64(7), res.Threads[0].Engagement.TotalLikes)
		assert.Equal(t, "gurshaan", res.Threads[0].Author.Username)
	})

	t.Run("unscored search omits relevance", func(t *testing.T) {
		res := NewSearchResponse(domain.SearchResult{Mode: domain.ModeNone, Threads: threads})

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "relevance")
		assert.Contains(t, string(raw), `"mode":"none"`)
	})

	t.Run("empty result encodes as empty array", func(t *testing.T) {
		raw, err := json.Marshal(NewSearchResponse(domain.SearchResult{Mode: domain.ModeNatural}))
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"threads":[]`)
	})
}

func TestNewThreadResponse(t *testing.T) {
	edited := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	page := domain.ThreadPage{
		Thread:     domain.Thread{Id: 3, Title: "t"},
		Engagement: domain.Engagement{CommentCount: 2},
		Comments: []domain.Comment{
			{Id: 1, ThreadId: 3, Content: "a"},
			{Id: 2, ThreadId: 3, Content: "b", ModifiedAt: &edited},
		},
	}

	res := NewThreadResponse(page)

	assert.Equal(t, domain.ThreadId(3), res.Id)
	require.Len(t, res.Comments, 2)
	assert.Nil(t, res.Comments[0].ModifiedAt)
	assert.Equal(t, &edited, res.Comments[1].ModifiedAt)
	assert.Equal(t, int64(2), res.Engagement.CommentCount)
}
