package llm

import (
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"HistoryScanner/internal/domain"
)

// Provider output is best-effort: parsers are tried strictest first and
// each reports explicitly whether it could extract anything. Callers
// fall back to fixed seed data when every strategy fails.

var (
	yearTokenExpr  = regexp.MustCompile(`(\d{1,4}\s*(?:BC|BCE|AD|CE)?)`)
	jsonArrayExpr  = regexp.MustCompile(`(?s)\[.*\]`)
	eventLabelExpr = regexp.MustCompile(`(?i)^-?\s*Event:\s*`)
)

// parseEventOutput runs the strategy chain over raw provider output.
func parseEventOutput(raw string) ([]domain.Event, bool) {
	if events, ok := parseStrictEventJSON(raw); ok {
		return events, true
	}
	if events, ok := parseLabeledBlocks(raw); ok {
		return events, true
	}
	return nil, false
}

// parseStrictEventJSON accepts a JSON array of {year, text|event}
// objects, possibly surrounded by prose or code fences.
func parseStrictEventJSON(raw string) ([]domain.Event, bool) {
	blob := jsonArrayExpr.FindString(raw)
	if blob == "" {
		return nil, false
	}

	var items []struct {
		Year  string `json:"year"`
		Text  string `json:"text"`
		Event string `json:"event"`
	}
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, false
	}

	var events []domain.Event
	for _, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			text = strings.TrimSpace(item.Event)
		}
		year := strings.TrimSpace(item.Year)
		if year == "" || text == "" {
			continue
		}
		events = append(events, domain.Event{Year: year, Text: text})
	}

	if len(events) == 0 {
		return nil, false
	}
	return events, true
}

// parseLabeledBlocks extracts "- Year: ... - Event: ..." blocks from
// loosely formatted output.
func parseLabeledBlocks(raw string) ([]domain.Event, bool) {
	blocks := strings.Split(raw, "- Year:")
	if len(blocks) < 2 {
		return nil, false
	}

	var events []domain.Event
	for _, block := range blocks[1:] {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) == 0 {
			continue
		}

		year := yearTokenExpr.FindString(lines[0])
		if year == "" {
			continue
		}

		text := ""
		for _, line := range lines[1:] {
			if eventLabelExpr.MatchString(strings.TrimSpace(line)) {
				text = strings.TrimSpace(eventLabelExpr.ReplaceAllString(strings.TrimSpace(line), ""))
				break
			}
		}
		if text == "" && len(lines) > 1 {
			text = strings.TrimSpace(strings.Join(lines[1:], " "))
		}
		if text == "" {
			continue
		}

		events = append(events, domain.Event{Year: strings.TrimSpace(year), Text: text})
	}

	if len(events) == 0 {
		return nil, false
	}
	return events, true
}

// parseQuizOutput accepts a strict JSON array of quiz questions with
// exactly four options each.
func parseQuizOutput(raw string) ([]domain.QuizQuestion, bool) {
	blob := jsonArrayExpr.FindString(raw)
	if blob == "" {
		return nil, false
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(blob), &questions); err != nil {
		return nil, false
	}

	valid := questions[:0]
	for _, q := range questions {
		if q.Question == "" || len(q.Options) != 4 || q.Answer == "" {
			continue
		}
		valid = append(valid, q)
	}

	if len(valid) == 0 {
		return nil, false
	}
	return valid, true
}
