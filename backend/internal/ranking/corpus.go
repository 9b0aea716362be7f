package ranking

import (
	"github.com/itchan-dev/agora/shared/domain"
)

// analyzedDoc holds term frequencies of a thread document and of each of its comments.
type analyzedDoc struct {
	thread   map[string]int
	comments []map[string]int
}

// Corpus is the per-request statistics view over the candidate documents.
//
// Document frequencies are counted over the candidates only. That is exact because
// any document containing a query term also contains it as a substring and therefore
// passed the storage preselection.
type Corpus struct {
	docs          map[domain.ThreadId]*analyzedDoc
	threadDF      map[string]int64
	commentDF     map[string]int64
	totalThreads  int64
	totalComments int64
}

func NewCorpus(sc domain.SearchCorpus) *Corpus {
	c := &Corpus{
		docs:      make(map[domain.ThreadId]*analyzedDoc, len(sc.Documents)),
		threadDF:  make(map[string]int64),
		commentDF: make(map[string]int64),
	}
	var comments int64
	for _, doc := range sc.Documents {
		a := analyze(doc)
		c.docs[doc.Id] = a
		for t := range a.thread {
			c.threadDF[t]++
		}
		for _, ctf := range a.comments {
			for t := range ctf {
				c.commentDF[t]++
			}
		}
		comments += int64(len(a.comments))
	}
	// totals may lag behind the candidates if they were read outside the snapshot
	c.totalThreads = max(sc.TotalThreads, int64(len(sc.Documents)))
	c.totalComments = max(sc.TotalComments, comments)
	return c
}

func analyze(doc domain.SearchDocument) *analyzedDoc {
	a := &analyzedDoc{
		thread:   termFrequencies(doc.Title + " " + doc.Description),
		comments: make([]map[string]int, 0, len(doc.Comments)),
	}
	for _, c := range doc.Comments {
		a.comments = append(a.comments, termFrequencies(c.Content))
	}
	return a
}

func (c *Corpus) lookup(doc domain.SearchDocument) *analyzedDoc {
	if c != nil {
		if a, ok := c.docs[doc.Id]; ok {
			return a
		}
	}
	return analyze(doc)
}
