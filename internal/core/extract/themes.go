package extract

import "regexp"

// theme is a labelled alternation; table order is output order
type theme struct {
	label string
	re    *regexp.Regexp
}

var themes = []theme{
	{"error", regexp.MustCompile(`(?i)\berror\b|\bexception\b|\bfail(?:ed|ure)?\b`)},
	{"auth", regexp.MustCompile(`(?i)\blogin\b|\bpassword\b|\bauth(?:entication)?\b`)},
	{"payment", regexp.MustCompile(`(?i)\bpayment\b|\bcard\b|\bbilling\b`)},
	{"deadline", regexp.MustCompile(`(?i)\bdue\b|\bdeadline\b|\bexpires?\b`)},
}

// Themes returns the labels whose pattern occurs in text
func Themes(text string) []string {
	out := []string{}
	for _, th := range themes {
		if th.re.MatchString(text) {
			out = append(out, th.label)
		}
	}
	return out
}

// ThemeLabels lists every label in table order
func ThemeLabels() []string {
	out := make([]string, len(themes))
	for i, th := range themes {
		out[i] = th.label
	}
	return out
}
