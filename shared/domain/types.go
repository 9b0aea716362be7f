package domain

type (
	UserId    = int64
	Username  = string
	ThreadId  = int64
	CommentId = int64

	ThreadTitle   = string
	CommentText   = string
	SearchQuery   = string
	RelevanceMode = string
)

const (
	// natural-language relevance over the candidate corpus
	ModeNatural RelevanceMode = "natural"
	// degraded containment matching
	ModeSubstring RelevanceMode = "substring"
	// empty query, no scoring performed
	ModeNone RelevanceMode = "none"
)
