package ranking

import (
	"fmt"

	"github.com/itchan-dev/agora/shared/domain"
)

// Scorer computes the two relevance signals of a candidate thread.
// A thread is part of the search result iff FreqScore > 0 or FtScore > 0
// under the scorer that produced the scores.
type Scorer interface {
	Mode() domain.RelevanceMode
	// Patterns returns lowercase fragments used by storage to preselect candidates.
	// Every document scoring above zero contains at least one of them.
	Patterns(query string) []string
	Score(query string, corpus *Corpus, doc domain.SearchDocument) domain.Relevance
}

// NewScorer returns the scorer for a configured mode. Empty mode means natural.
func NewScorer(mode domain.RelevanceMode) (Scorer, error) {
	switch mode {
	case "", domain.ModeNatural:
		return RichScorer{}, nil
	case domain.ModeSubstring:
		return FallbackScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown relevance mode %q", mode)
	}
}

// Included reports whether scores admit a candidate into search results.
func Included(r domain.Relevance) bool {
	return r.FreqScore > 0 || r.FtScore > 0
}

// ScoreCandidates scores every document of the corpus, attaches engagement
// computed from the loaded comments and drops documents that score zero.
func ScoreCandidates(scorer Scorer, query string, sc domain.SearchCorpus) []domain.RankedThread {
	corpus := NewCorpus(sc)
	out := make([]domain.RankedThread, 0, len(sc.Documents))
	for _, doc := range sc.Documents {
		rel := scorer.Score(query, corpus, doc)
		if !Included(rel) {
			continue
		}
		out = append(out, domain.RankedThread{
			Thread:     doc.Thread,
			Engagement: AggregateComments(doc.Thread, doc.Comments),
			Relevance:  rel,
		})
	}
	return out
}
