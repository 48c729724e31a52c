package webapi

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

const dayHistorySourceName = "History.com"

var tagExpr = regexp.MustCompile(`<[^>]+>`)

// DayHistorySource adapts a day-of-year history API that serves
// {"data":{"Events":[{"year":..,"text":..}]}} documents.
type DayHistorySource struct {
	client  *Client
	baseURL string
	logger  *slog.Logger
}

var _ ports.EventSource = (*DayHistorySource)(nil)

// NewDayHistorySource wires the shared fetch client against baseURL.
func NewDayHistorySource(client *Client, baseURL string, logger *slog.Logger) *DayHistorySource {
	return &DayHistorySource{client: client, baseURL: strings.TrimSuffix(baseURL, "/"), logger: logger}
}

func (s *DayHistorySource) Name() string {
	return dayHistorySourceName
}

// Fetch returns the day's events normalized to the canonical shape.
// Failures degrade to an error that the caller treats as an empty
// contribution.
func (s *DayHistorySource) Fetch(ctx context.Context, month, day int) ([]domain.Event, error) {
	var payload struct {
		Data struct {
			Events []struct {
				Year string `json:"year"`
				Text string `json:"text"`
			} `json:"Events"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/date/%d/%d", s.baseURL, month, day)
	if err := s.client.GetJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("day history: %w", err)
	}

	events := make([]domain.Event, 0, len(payload.Data.Events))
	for _, raw := range payload.Data.Events {
		year := strings.TrimSpace(raw.Year)
		text := strings.TrimSpace(tagExpr.ReplaceAllString(raw.Text, ""))
		if year == "" || text == "" {
			continue
		}
		events = append(events, domain.Event{
			Year:   year,
			Text:   text,
			Source: dayHistorySourceName,
		})
	}

	if s.logger != nil {
		s.logger.Debug("day history fetched", "month", month, "day", day, "count", len(events))
	}

	return events, nil
}
