package ranking

import (
	"cmp"
	"slices"

	"github.com/itchan-dev/agora/shared/domain"
)

// MaxRankedResults caps engagement and relevance ranked views.
const MaxRankedResults = 100

type SortKey int

// All keys sort descending.
const (
	ByFreqScore SortKey = iota
	ByFtScore
	ByTotalLikes
	ByViews
	ByCreatedAt
)

func (k SortKey) String() string {
	switch k {
	case ByFreqScore:
		return "freq_score"
	case ByFtScore:
		return "ft_score"
	case ByTotalLikes:
		return "total_likes"
	case ByViews:
		return "views"
	case ByCreatedAt:
		return "created_at"
	default:
		return "unknown"
	}
}

// compare returns a negative number when a must precede b.
func (k SortKey) compare(a, b *domain.RankedThread) int {
	switch k {
	case ByFreqScore:
		return cmp.Compare(b.Relevance.FreqScore, a.Relevance.FreqScore)
	case ByFtScore:
		return cmp.Compare(b.Relevance.FtScore, a.Relevance.FtScore)
	case ByTotalLikes:
		return cmp.Compare(b.Engagement.TotalLikes, a.Engagement.TotalLikes)
	case ByViews:
		return cmp.Compare(b.Views, a.Views)
	case ByCreatedAt:
		return b.CreatedAt.Compare(a.CreatedAt)
	default:
		return 0
	}
}

// Order is a list of active sort keys in priority order.
// Ties left after every key are broken by ascending thread id.
type Order []SortKey

var (
	Chronological = Order{ByCreatedAt}
	ByEngagement  = Order{ByTotalLikes, ByViews, ByCreatedAt}
	ByRelevance   = Order{ByFreqScore, ByFtScore, ByTotalLikes, ByViews, ByCreatedAt}
)

func (o Order) Compare(a, b domain.RankedThread) int {
	for _, k := range o {
		if c := k.compare(&a, &b); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Id, b.Id)
}

// Rank returns a sorted copy of candidates. limit <= 0 means uncapped.
func Rank(candidates []domain.RankedThread, order Order, limit int) []domain.RankedThread {
	out := slices.Clone(candidates)
	if out == nil {
		out = []domain.RankedThread{}
	}
	slices.SortStableFunc(out, order.Compare)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
