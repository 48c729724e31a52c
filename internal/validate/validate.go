// Package validate rejects malformed event candidates before they reach
// the merge engine.
package validate

import (
	"regexp"
	"strings"

	"HistoryScanner/internal/domain"
)

var (
	yearExpr = regexp.MustCompile(`^\d{1,4}(\s*(?:BC|BCE|AD|CE))?$`)
	// Residual markup or parser class names leaking out of scraped HTML.
	artifactExpr = regexp.MustCompile(`mw-parser-output|\.frac|fontsize|</?\w+>`)
)

const minTokens = 4

// Event reports whether a candidate is well-formed enough to enter the
// pipeline. Pure predicate, no side effects.
func Event(e domain.Event) bool {
	if e.Year == "" || e.Text == "" {
		return false
	}
	if !yearExpr.MatchString(e.Year) {
		return false
	}
	if len(strings.Fields(e.Text)) < minTokens {
		return false
	}
	if artifactExpr.MatchString(e.Text) {
		return false
	}
	return true
}
