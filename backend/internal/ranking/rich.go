package ranking

import (
	"math"
	"strings"

	"github.com/itchan-dev/agora/shared/domain"
)

// saturation constant of the term frequency component
const bm25K1 = 1.2

// RichScorer is the natural-language relevance mode.
//
// FreqScore counts whole-word occurrences of the query phrase in the title,
// the description and every comment. FtScore is a BM25 style score: each query
// term contributes saturated term frequency times inverse document frequency,
// computed separately for the thread index (title + description) and the
// comment index, with comment scores summed into the thread.
type RichScorer struct{}

func (RichScorer) Mode() domain.RelevanceMode { return domain.ModeNatural }

func (RichScorer) Patterns(query string) []string {
	if ts := uniqueTerms(query); len(ts) > 0 {
		return ts
	}
	// no word runes: only the phrase itself can match
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return nil
	}
	longest := fields[0]
	for _, f := range fields[1:] {
		if len(f) > len(longest) {
			longest = f
		}
	}
	return []string{longest}
}

func (RichScorer) Score(query string, corpus *Corpus, doc domain.SearchDocument) domain.Relevance {
	return domain.Relevance{
		FreqScore: phraseFrequency(query, doc),
		FtScore:   naturalScore(query, corpus, doc),
	}
}

func phraseFrequency(query string, doc domain.SearchDocument) int {
	m := newPhraseMatcher(query)
	if m == nil {
		return 0
	}
	n := m.Count(doc.Title) + m.Count(doc.Description)
	for _, c := range doc.Comments {
		n += m.Count(c.Content)
	}
	return n
}

func naturalScore(query string, corpus *Corpus, doc domain.SearchDocument) float64 {
	qterms := uniqueTerms(query)
	if len(qterms) == 0 {
		return 0
	}
	if corpus == nil {
		corpus = NewCorpus(domain.SearchCorpus{Documents: []domain.SearchDocument{doc}})
	}
	a := corpus.lookup(doc)

	score := 0.0
	for _, t := range qterms {
		if tf := a.thread[t]; tf > 0 {
			score += saturate(tf) * idf(corpus.totalThreads, corpus.threadDF[t])
		}
		commentIdf := idf(corpus.totalComments, corpus.commentDF[t])
		for _, ctf := range a.comments {
			if tf := ctf[t]; tf > 0 {
				score += saturate(tf) * commentIdf
			}
		}
	}
	return score
}

func saturate(tf int) float64 {
	f := float64(tf)
	return f * (bm25K1 + 1) / (f + bm25K1)
}

// idf is strictly positive for any term present in at least one document
// and decreases as the term gets more common.
func idf(n, df int64) float64 {
	if df <= 0 {
		return 0
	}
	n = max(n, df)
	return math.Log(1 + (float64(n-df)+0.5)/(float64(df)+0.5))
}
