// Package extract derives structured signals from normalized screen text.
// Everything here is a pure function of its input
package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultTopK is how many terms a SignalSet carries
const DefaultTopK = 8

// SignalSet is everything the extractor finds in one text
type SignalSet struct {
	CharCount      int         `json:"char_count"`
	WordCount      int         `json:"word_count"`
	QuestionCount  int         `json:"question_count"`
	TopWords       []TermCount `json:"top_words"`
	URLs           []string    `json:"urls"`
	Emails         []string    `json:"emails"`
	TaskSignals    []string    `json:"task_signals"`
	UrgencySignals []string    `json:"urgency_signals"`
	AlertThemes    []string    `json:"alert_themes"`
}

// rule is one fixed pattern whose matches are collected as a sorted set
type rule struct {
	name  string
	re    *regexp.Regexp
	lower bool
	clean func(string) string
}

var (
	urlRule = rule{
		name:  "url",
		re:    regexp.MustCompile(`https?://[^\s)]+`),
		clean: trimURL,
	}
	emailRule = rule{
		name: "email",
		re:   regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
	}
	taskRule = rule{
		name:  "task",
		re:    regexp.MustCompile(`(?i)\b(todo|to do|fixme|action item|deadline|due|follow up|next step)\b`),
		lower: true,
	}
	urgencyRule = rule{
		name:  "urgency",
		re:    regexp.MustCompile(`(?i)\b(urgent|asap|immediately|critical|blocker|high priority)\b`),
		lower: true,
	}
)

// Extract runs every rule over text
func Extract(text string) SignalSet {
	words := Words(text)
	return SignalSet{
		CharCount:      utf8.RuneCountInString(text),
		WordCount:      len(words),
		QuestionCount:  strings.Count(text, "?"),
		TopWords:       rank(words, DefaultTopK),
		URLs:           urlRule.collect(text),
		Emails:         emailRule.collect(text),
		TaskSignals:    taskRule.collect(text),
		UrgencySignals: urgencyRule.collect(text),
		AlertThemes:    Themes(text),
	}
}

// collect returns the deduplicated, lexicographically sorted matches
func (r rule) collect(text string) []string {
	matches := r.re.FindAllString(text, -1)
	if len(matches) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if r.lower {
			m = lower(m)
		}
		if r.clean != nil {
			m = r.clean(m)
		}
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// trimURL drops sentence punctuation glued to the end of a link
func trimURL(u string) string {
	u = strings.TrimRight(u, `.,;:!?'"`)
	if strings.HasSuffix(u, "://") {
		return ""
	}
	return u
}
