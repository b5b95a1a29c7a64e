package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TermCount is one ranked term
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

func (t TermCount) String() string { return fmt.Sprintf("%s(%d)", t.Term, t.Count) }

// stopwords is the standard stopword list
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "with": {}, "you": {},
	"this": {}, "from": {}, "have": {}, "are": {}, "your": {}, "was": {},
	"will": {}, "can": {}, "all": {}, "not": {}, "but": {}, "has": {},
	"its": {}, "they": {}, "what": {}, "when": {}, "where": {}, "how": {},
	"why": {}, "then": {}, "into": {}, "about": {}, "there": {}, "their": {},
	"them": {}, "just": {}, "more": {}, "some": {}, "out": {}, "any": {},
}

// IsStopword reports whether w is filtered from term ranking
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

// word is an alphabetic run of at least two characters, allowing inner ' and -
var word = regexp.MustCompile(`[a-z][a-z'-]+`)

// casers are not safe for concurrent use
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// lower maps rune by rune without folding expansions, so "ß" stays "ß"
// and only the ASCII part of "Straße" forms a token
func lower(s string) string {
	c := lowerPool.Get().(*cases.Caser)
	out := c.String(s)
	lowerPool.Put(c)
	return out
}

// Words returns every lower-cased word token in text, stopwords included
func Words(text string) []string {
	if text == "" {
		return nil
	}
	return word.FindAllString(lower(text), -1)
}

// TopTerms ranks the non-stopword terms of text by count, ties in first-seen order
func TopTerms(text string, k int) []TermCount {
	return rank(Words(text), k)
}

func rank(words []string, k int) []TermCount {
	if k <= 0 {
		return []TermCount{}
	}
	idx := make(map[string]int)
	terms := make([]TermCount, 0)
	for _, w := range words {
		if IsStopword(w) {
			continue
		}
		if i, ok := idx[w]; ok {
			terms[i].Count++
			continue
		}
		idx[w] = len(terms)
		terms = append(terms, TermCount{Term: w, Count: 1})
	}
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].Count > terms[j].Count })
	if len(terms) > k {
		terms = terms[:k]
	}
	return terms
}

// FormatTerms renders terms as "a(3), b(2)"
func FormatTerms(terms []TermCount) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
