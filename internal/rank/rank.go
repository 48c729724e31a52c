// Package rank scores merged events for presentation order.
package rank

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"HistoryScanner/internal/domain"
)

// Keywords whose presence marks an event as historically significant.
var significanceKeywords = []string{
	"revolution", "war", "independence", "discovery", "invention", "founded",
	"established", "treaty", "agreement", "disaster", "catastrophe", "pandemic",
	"epidemic", "assassination", "coronation", "inauguration", "landmark",
	"breakthrough", "milestone", "turning point", "pivotal", "historic",
}

const (
	verifiedBoost     = 1.5
	significanceBoost = 1.3
	longTextBoost     = 1.2
	mediumTextBoost   = 1.1
	anniversaryCap    = 200
	anniversaryStep   = 25
)

// Scorer assigns relevance scores relative to the current year. The
// clock is injectable so anniversary boosts stay testable.
type Scorer struct {
	now func() time.Time
}

// NewScorer builds a Scorer on the wall clock.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// NewScorerAt pins the scorer to a fixed instant.
func NewScorerAt(now time.Time) *Scorer {
	return &Scorer{now: func() time.Time { return now }}
}

// Score computes the multiplicative relevance score for one event.
func (s *Scorer) Score(event domain.Event) float64 {
	score := 1.0

	if event.Verified {
		score *= verifiedBoost
	}

	lower := strings.ToLower(event.Text)
	for _, kw := range significanceKeywords {
		if strings.Contains(lower, kw) {
			score *= significanceBoost
			break
		}
	}

	// Round anniversaries (25, 50, ...) get a boost that shrinks as the
	// anniversary recedes, and disappears past the cap.
	if year, err := strconv.Atoi(event.Year); err == nil {
		yearsAgo := s.now().Year() - year
		if yearsAgo > 0 && yearsAgo%anniversaryStep == 0 && yearsAgo <= anniversaryCap {
			score *= 1.5 - float64(yearsAgo)/400
		}
	}

	switch {
	case len(event.Text) > 200:
		score *= longTextBoost
	case len(event.Text) > 100:
		score *= mediumTextBoost
	}

	return score
}

// Rank stores a score on each event and sorts descending by score,
// stable for ties.
func (s *Scorer) Rank(events []domain.Event) []domain.Event {
	for i := range events {
		events[i].RelevanceScore = s.Score(events[i])
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].RelevanceScore > events[j].RelevanceScore
	})

	return events
}
