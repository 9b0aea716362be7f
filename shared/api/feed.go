package api

import "github.com/itchan-dev/agora/shared/domain"

type RelevanceResponse struct {
	FreqScore int     `json:"freq_score"`
	FtScore   float64 `json:"ft_score"`
}

type RankedThreadResponse struct {
	ThreadMetadataResponse
	// only set for search results
	Relevance *RelevanceResponse `json:"relevance,omitempty"`
}

type FeedResponse struct {
	Threads []RankedThreadResponse `json:"threads"`
}

type SearchResponse struct {
	Query   domain.SearchQuery     `json:"query"`
	Mode    domain.RelevanceMode   `json:"mode"`
	Threads []RankedThreadResponse `json:"threads"`
}

func NewFeedResponse(threads []domain.RankedThread) FeedResponse {
	return FeedResponse{Threads: rankedThreads(threads, false)}
}

func NewSearchResponse(res domain.SearchResult) SearchResponse {
	return SearchResponse{
		Query:   res.Query,
		Mode:    res.Mode,
		Threads: rankedThreads(res.Threads, res.Mode != domain.ModeNone),
	}
}

func rankedThreads(threads []domain.RankedThread, withRelevance bool) []RankedThreadResponse {
	out := make([]RankedThreadResponse, len(threads))
	for i, t := range threads {
		out[i].ThreadMetadataResponse = NewThreadMetadataResponse(t.Thread, t.Engagement)
		if withRelevance {
			out[i].Relevance = &RelevanceResponse{FreqScore: t.Relevance.FreqScore, FtScore: t.Relevance.FtScore}
		}
	}
	return out
}
