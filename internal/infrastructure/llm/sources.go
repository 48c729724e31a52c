package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"HistoryScanner/internal/classify"
	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

const (
	indianSourceName = "Indian Historical Archives"
	artsSourceName   = "Arts & Culture Archives"
)

const indianPromptTemplate = `List 5-10 significant historical events that happened in India on %s (any year).

IMPORTANT: Only include events that are directly related to India, Indian culture, or Indian history.
Do NOT include events from other countries or cultures.

Format each event as:
- Year: [year]
- Event: [detailed description about Indian history]

Focus on verified historical events only. Include events from ancient, medieval, and modern Indian history.`

const artsPromptTemplate = `List 5-10 significant historical events related to arts and culture that happened on %s (any year).

IMPORTANT: Only include events related to:
- Visual arts (painting, sculpture, photography)
- Music and performing arts
- Literature and poetry
- Theater and film
- Architecture and design
- Cultural movements and festivals

Format each event as:
- Year: [year]
- Event: [detailed description about the arts/culture event]

Focus on verified historical events only. Include a diverse range of time periods and art forms.`

// IndianSource asks the generative provider for Indian historical
// events on a date. Provider failures and unparseable output fall back
// to the fixed seed data; Fetch never returns an error.
type IndianSource struct {
	gen    ports.TextGenerator
	logger *slog.Logger
}

var _ ports.EventSource = (*IndianSource)(nil)

// NewIndianSource wires a text generator; gen may be nil, in which case
// only seed data is served.
func NewIndianSource(gen ports.TextGenerator, logger *slog.Logger) *IndianSource {
	return &IndianSource{gen: gen, logger: logger}
}

func (s *IndianSource) Name() string {
	return indianSourceName
}

func (s *IndianSource) Fetch(ctx context.Context, month, day int) ([]domain.Event, error) {
	prompt := fmt.Sprintf(indianPromptTemplate, formatDate(month, day))

	events := generateEvents(ctx, s.gen, s.logger, prompt, classify.IsIndianEvent, indianSourceName, domain.CategoryIndian)

	if len(events) == 0 {
		events = domain.SampleIndianEvents(month, day)
	}
	if len(events) == 0 {
		events = domain.GenericIndianEvents()
	}

	return events, nil
}

// ArtsSource is the Arts & Culture counterpart of IndianSource.
type ArtsSource struct {
	gen    ports.TextGenerator
	logger *slog.Logger
}

var _ ports.EventSource = (*ArtsSource)(nil)

func NewArtsSource(gen ports.TextGenerator, logger *slog.Logger) *ArtsSource {
	return &ArtsSource{gen: gen, logger: logger}
}

func (s *ArtsSource) Name() string {
	return artsSourceName
}

func (s *ArtsSource) Fetch(ctx context.Context, month, day int) ([]domain.Event, error) {
	prompt := fmt.Sprintf(artsPromptTemplate, formatDate(month, day))

	events := generateEvents(ctx, s.gen, s.logger, prompt, classify.IsArtsCultureEvent, artsSourceName, domain.CategoryArts)

	if len(events) == 0 {
		events = domain.GenericArtsEvents()
	}

	return events, nil
}

// generateEvents runs the provider and the parser chain, keeping only
// events the dedicated detector confirms. Any failure yields nil so the
// caller falls through to seed data.
func generateEvents(ctx context.Context, gen ports.TextGenerator, logger *slog.Logger, prompt string, confirm func(string) bool, source string, category domain.Category) []domain.Event {
	if gen == nil {
		return nil
	}

	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		if logger != nil {
			logger.Warn("provider generation failed", "source", source, "error", err)
		}
		return nil
	}

	parsed, ok := parseEventOutput(raw)
	if !ok {
		if logger != nil {
			logger.Warn("provider output unparseable", "source", source)
		}
		return nil
	}

	var events []domain.Event
	for _, event := range parsed {
		if !confirm(event.Text) {
			continue
		}
		event.Source = source
		event.Verified = true
		event.Category = category
		events = append(events, event)
	}

	return events
}

func formatDate(month, day int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), day)
}
