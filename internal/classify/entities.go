// Package classify holds the text heuristics shared by the pipeline:
// entity extraction, the Indian-history and Arts & Culture detectors,
// and the weighted category scorer.
package classify

import (
	"regexp"
	"sort"
)

var (
	nameExpr  = regexp.MustCompile(`(?:[A-Z][a-z]+ )+[A-Z][a-z]+`)
	placeExpr = regexp.MustCompile(`(?:in|at|from|to) ([A-Z][a-z]+(?: [A-Z][a-z]+)*)`)
	dateExpr  = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December) \d{1,2}(?:st|nd|rd|th)?, \d{4}\b`)
	orgExpr   = regexp.MustCompile(`(?:The |)[A-Z][a-z]+(?: [A-Z][a-z]+)*(?: Organization| Association| Company| Corporation| University| Institute| Government)`)
	eventExpr = regexp.MustCompile(`(?:The |)(?:[A-Z][a-z]+(?: [A-Z][a-z]+)*) (?:War|Battle|Revolution|Movement|Uprising|Conference|Treaty|Agreement|Accord)`)
)

// ExtractEntities returns candidate proper-noun phrases, places, dates,
// organizations and named events found in text, deduplicated and sorted
// longest first so that a shorter entity is never matched inside a
// longer one during highlighting.
func ExtractEntities(text string) []string {
	if text == "" {
		return nil
	}

	var found []string
	found = append(found, nameExpr.FindAllString(text, -1)...)
	for _, m := range placeExpr.FindAllStringSubmatch(text, -1) {
		if len(m) > 1 && m[1] != "" {
			found = append(found, m[1])
		}
	}
	found = append(found, dateExpr.FindAllString(text, -1)...)
	found = append(found, orgExpr.FindAllString(text, -1)...)
	found = append(found, eventExpr.FindAllString(text, -1)...)

	seen := map[string]struct{}{}
	unique := make([]string, 0, len(found))
	for _, entity := range found {
		if _, ok := seen[entity]; ok {
			continue
		}
		seen[entity] = struct{}{}
		unique = append(unique, entity)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return len(unique[i]) > len(unique[j])
	})

	return unique
}
