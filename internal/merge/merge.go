// Package merge collapses candidate events from multiple sources into a
// single cross-verified list.
package merge

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"HistoryScanner/internal/domain"
)

const (
	// Two same-year texts above this Jaccard word-set similarity are
	// treated as the same real-world event.
	similarityThreshold = 0.8
	// Normalized-text keys are truncated for stable matching.
	keyLength = 80
)

var (
	punctExpr    = regexp.MustCompile(`[^\w\s]`)
	stopWordExpr = regexp.MustCompile(`\b(the|a|an|in|on|at|by|for|with|and|or|of)\b`)
	spaceExpr    = regexp.MustCompile(`\s+`)
	numericExpr  = regexp.MustCompile(`\d+`)
)

// Events flattens the per-source candidate lists, deduplicates fuzzily,
// promotes the verified flag when distinct sources agree, and returns
// the result sorted by year, newest first (earlier-era years sort below
// the numeric ones, in ascending antiquity).
func Events(lists [][]domain.Event) []domain.Event {
	type slot struct {
		event   domain.Event
		textKey string
	}

	var order []string
	slots := map[string]*slot{}

	for _, list := range lists {
		for _, candidate := range list {
			if candidate.Year == "" || candidate.Text == "" {
				continue
			}

			textKey := normalizeText(candidate.Text)
			key := candidate.Year + ":" + textKey

			// Same-year slots with near-identical normalized text are
			// the same event even when the exact keys differ.
			if _, ok := slots[key]; !ok {
				for _, existingKey := range order {
					existing := slots[existingKey]
					if existing.event.Year != candidate.Year {
						continue
					}
					if similarity(textKey, existing.textKey) >= similarityThreshold {
						key = existingKey
						break
					}
				}
			}

			existing, ok := slots[key]
			if !ok {
				slots[key] = &slot{event: candidate, textKey: textKey}
				order = append(order, key)
				continue
			}

			mergeInto(&existing.event, candidate)
		}
	}

	merged := make([]domain.Event, 0, len(order))
	for _, key := range order {
		merged = append(merged, slots[key].event)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return yearSortKey(merged[i].Year) > yearSortKey(merged[j].Year)
	})

	return merged
}

// mergeInto folds an incoming duplicate candidate into an existing slot.
func mergeInto(slot *domain.Event, incoming domain.Event) {
	if slot.Source != incoming.Source {
		slot.Verified = true
		slot.Source = unionSources(slot.Source, incoming.Source)

		if len(incoming.Text) > len(slot.Text) {
			slot.Text = incoming.Text
		}

		// The specialized adapters' classification is trusted over a
		// later generic re-categorization.
		if incoming.Category == domain.CategoryIndian || incoming.Category == domain.CategoryArts {
			slot.Category = incoming.Category
		}
	}
}

func unionSources(a, b string) string {
	seen := map[string]struct{}{}
	var union []string
	for _, src := range append(strings.Split(a, ", "), strings.Split(b, ", ")...) {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		union = append(union, src)
	}
	sort.Strings(union)
	return strings.Join(union, ", ")
}

// normalizeText lowercases, strips punctuation and stop words, collapses
// whitespace, and truncates to a fixed-length matching key.
func normalizeText(text string) string {
	text = strings.ToLower(text)
	text = punctExpr.ReplaceAllString(text, "")
	text = stopWordExpr.ReplaceAllString(text, "")
	text = strings.TrimSpace(spaceExpr.ReplaceAllString(text, " "))
	if len(text) > keyLength {
		text = text[:keyLength]
	}
	return text
}

// similarity computes word-set similarity between two normalized texts
// as the containment coefficient |A∩B| / min(|A|,|B|), 0 when either
// set is empty. Containment equals Jaccard for same-size sets but still
// recognizes a duplicate when one source phrases the event with a few
// extra words, which is the usual cross-source pattern.
func similarity(a, b string) float64 {
	wordsA := map[string]struct{}{}
	for _, w := range strings.Fields(a) {
		wordsA[w] = struct{}{}
	}
	wordsB := map[string]struct{}{}
	for _, w := range strings.Fields(b) {
		wordsB[w] = struct{}{}
	}

	smaller := len(wordsA)
	if len(wordsB) < smaller {
		smaller = len(wordsB)
	}
	if smaller == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}

	return float64(intersection) / float64(smaller)
}

// yearSortKey extracts the leading numeric run of a year string and
// negates it for earlier-era markers so BC years sort after CE ones.
func yearSortKey(year string) int {
	match := numericExpr.FindString(year)
	if match == "" {
		return 0
	}

	value, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}

	if strings.Contains(year, "BC") {
		return -value
	}
	return value
}
