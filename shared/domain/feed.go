package domain

// Relevance is valid only for the lifetime of one search request.
type Relevance struct {
	FreqScore int
	FtScore   float64
}

// RankedThread is a feed candidate annotated with everything the ranking engine sorts by.
type RankedThread struct {
	Thread
	Engagement Engagement
	Relevance  Relevance
}

// SearchDocument is a candidate thread together with the text of all its comments.
type SearchDocument struct {
	Thread
	Comments []Comment
}

// SearchCorpus is what storage hands to the relevance scorer.
// Totals cover the whole forum, not just the candidates.
type SearchCorpus struct {
	Documents     []SearchDocument
	TotalThreads  int64
	TotalComments int64
}

type SearchResult struct {
	Query   SearchQuery
	Mode    RelevanceMode
	Threads []RankedThread
}
