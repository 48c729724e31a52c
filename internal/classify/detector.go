package classify

import (
	"regexp"
	"strings"
)

// detector is a binary topic detector combining strong keywords, weak
// keywords that need corroboration, phrase-level context patterns, and
// anti-patterns that suppress false positives.
type detector struct {
	core      []string
	secondary []string
	context   []*regexp.Regexp
	anti      []*regexp.Regexp
	// minCore is how many core hits alone classify positive; detectors
	// with a generic vocabulary set it higher.
	minCore int
}

func (d detector) match(text string) bool {
	if text == "" {
		return false
	}
	// An anti-pattern hit demands stronger corroboration than usual,
	// and the colliding phrase itself must not supply it: hits are
	// recounted with every anti-pattern match scrubbed out.
	if scrubbed, hit := d.scrubAnti(text); hit {
		lower := strings.ToLower(scrubbed)
		return countKeywords(lower, d.core) >= 2 || countPatterns(scrubbed, d.context) >= 1
	}

	lower := strings.ToLower(text)
	if countKeywords(lower, d.core) >= d.minCore {
		return true
	}

	return countKeywords(lower, d.secondary) >= 1 && countPatterns(text, d.context) >= 1
}

// scrubAnti removes all anti-pattern matches from text and reports
// whether any matched.
func (d detector) scrubAnti(text string) (string, bool) {
	hit := false
	for _, anti := range d.anti {
		if anti.MatchString(text) {
			hit = true
			text = anti.ReplaceAllString(text, "")
		}
	}
	return text, hit
}

func countKeywords(lowerText string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			hits++
		}
	}
	return hits
}

func countPatterns(text string, patterns []*regexp.Regexp) int {
	hits := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			hits++
		}
	}
	return hits
}

func compileAllInsensitive(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+expr))
	}
	return compiled
}
