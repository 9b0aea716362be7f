package ranking

import (
	"strings"

	"github.com/itchan-dev/agora/shared/domain"
)

// FallbackScorer is used when natural-language relevance is unavailable.
// Both signals collapse to the same containment check: 1 if the query is a
// case-insensitive substring of the title, the description, the author's
// username or any comment, 0 otherwise.
type FallbackScorer struct{}

func (FallbackScorer) Mode() domain.RelevanceMode { return domain.ModeSubstring }

func (FallbackScorer) Patterns(query string) []string {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}
	return []string{q}
}

func (FallbackScorer) Score(query string, _ *Corpus, doc domain.SearchDocument) domain.Relevance {
	if !contains(query, doc) {
		return domain.Relevance{}
	}
	return domain.Relevance{FreqScore: 1, FtScore: 1}
}

func contains(query string, doc domain.SearchDocument) bool {
	q := strings.ToLower(query)
	if q == "" {
		return false
	}
	fields := []string{doc.Title, doc.Description, doc.Author.Username}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, c := range doc.Comments {
		if strings.Contains(strings.ToLower(c.Content), q) {
			return true
		}
	}
	return false
}
