package webapi

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

const onThisDaySourceName = "On This Day"

// OnThisDaySource adapts a community "on this day" API serving
// {"events":[{"year":..,"description":..}]} documents.
type OnThisDaySource struct {
	client  *Client
	baseURL string
	logger  *slog.Logger
}

var _ ports.EventSource = (*OnThisDaySource)(nil)

// NewOnThisDaySource wires the shared fetch client against baseURL.
func NewOnThisDaySource(client *Client, baseURL string, logger *slog.Logger) *OnThisDaySource {
	return &OnThisDaySource{client: client, baseURL: strings.TrimSuffix(baseURL, "/"), logger: logger}
}

func (s *OnThisDaySource) Name() string {
	return onThisDaySourceName
}

func (s *OnThisDaySource) Fetch(ctx context.Context, month, day int) ([]domain.Event, error) {
	var payload struct {
		Events []struct {
			Year        string `json:"year"`
			Description string `json:"description"`
		} `json:"events"`
	}

	url := fmt.Sprintf("%s/%d/%d/events.json", s.baseURL, month, day)
	if err := s.client.GetJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("on this day: %w", err)
	}

	events := make([]domain.Event, 0, len(payload.Events))
	for _, raw := range payload.Events {
		year := strings.TrimSpace(raw.Year)
		text := strings.TrimSpace(raw.Description)
		if year == "" || text == "" {
			continue
		}
		events = append(events, domain.Event{
			Year:   year,
			Text:   text,
			Source: onThisDaySourceName,
		})
	}

	if s.logger != nil {
		s.logger.Debug("on this day fetched", "month", month, "day", day, "count", len(events))
	}

	return events, nil
}
