package ranking

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// terms splits text into lowercase word runs. Order and duplicates are preserved.
func terms(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool { return !isWordRune(r) })
}

func uniqueTerms(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range terms(text) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func termFrequencies(text string) map[string]int {
	tf := make(map[string]int)
	for _, t := range terms(text) {
		tf[t]++
	}
	return tf
}

// phraseMatcher counts whole-word, case-insensitive occurrences of a query phrase.
// Whitespace inside the phrase matches any run of whitespace in the text.
// Phrase and text are folded with strings.ToLower, the same folding terms uses.
type phraseMatcher struct {
	re          *regexp.Regexp
	checkBefore bool // phrase starts with a word rune
	checkAfter  bool // phrase ends with a word rune
}

func newPhraseMatcher(query string) *phraseMatcher {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return nil
	}
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}
	phrase := strings.Join(fields, " ")
	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)
	return &phraseMatcher{
		re:          regexp.MustCompile(strings.Join(quoted, `\s+`)),
		checkBefore: isWordRune(first),
		checkAfter:  isWordRune(last),
	}
}

// Count returns the number of non-overlapping whole-word matches in text.
func (m *phraseMatcher) Count(text string) int {
	if m == nil || text == "" {
		return 0
	}
	text = strings.ToLower(text)
	n := 0
	for pos := 0; pos < len(text); {
		loc := m.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if m.bounded(text, start, end) {
			n++
			pos = end
			continue
		}
		// a match embedded in a longer word may hide a valid one starting inside it
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return n
}

func (m *phraseMatcher) bounded(text string, start, end int) bool {
	if m.checkBefore && start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if m.checkAfter && end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}
