package service

import (
	"context"
	"strings"
	"time"

	"github.com/itchan-dev/agora/backend/internal/ranking"
	"github.com/itchan-dev/agora/shared/domain"
	"github.com/itchan-dev/agora/shared/logger"
)

type FeedService interface {
	Home(ctx context.Context) ([]domain.RankedThread, error)
	Stats(ctx context.Context) ([]domain.RankedThread, error)
	Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error)
}

// Feed assembles the three read views of the forum. Every call recomputes
// engagement and relevance from storage; nothing is cached between requests.
type Feed struct {
	storage   FeedStorage
	scorer    ranking.Scorer
	validator QueryValidator
}

type FeedStorage interface {
	ListThreadsWithStats(ctx context.Context) ([]domain.RankedThread, error)
	SearchCorpus(ctx context.Context, patterns []string) (domain.SearchCorpus, error)
}

type QueryValidator interface {
	Query(query domain.SearchQuery) error
}

func NewFeed(storage FeedStorage, scorer ranking.Scorer, validator QueryValidator) FeedService {
	return &Feed{storage: storage, scorer: scorer, validator: validator}
}

// Home lists every thread, newest first.
func (f *Feed) Home(ctx context.Context) ([]domain.RankedThread, error) {
	threads, err := f.storage.ListThreadsWithStats(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(threads, ranking.Chronological, 0), nil
}

// Stats lists the most engaging threads.
func (f *Feed) Stats(ctx context.Context) ([]domain.RankedThread, error) {
	threads, err := f.storage.ListThreadsWithStats(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(threads, ranking.ByEngagement, ranking.MaxRankedResults), nil
}

// Search ranks the threads matching query. A blank query degrades to the home feed.
func (f *Feed) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		threads, err := f.Home(ctx)
		if err != nil {
			return domain.SearchResult{}, err
		}
		return domain.SearchResult{Mode: domain.ModeNone, Threads: threads}, nil
	}
	if err := f.validator.Query(query); err != nil {
		return domain.SearchResult{}, err
	}

	start := time.Now()
	corpus, err := f.storage.SearchCorpus(ctx, f.scorer.Patterns(query))
	if err != nil {
		return domain.SearchResult{}, err
	}
	candidates := ranking.ScoreCandidates(f.scorer, query, corpus)
	threads := ranking.Rank(candidates, ranking.ByRelevance, ranking.MaxRankedResults)

	mode := f.scorer.Mode()
	searchDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	searchResults.Observe(float64(len(threads)))
	logger.FromContext(ctx).Debug("search done", "mode", mode, "candidates", len(corpus.Documents), "results", len(threads))

	return domain.SearchResult{Query: query, Mode: mode, Threads: threads}, nil
}
