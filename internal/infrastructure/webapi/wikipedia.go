package webapi

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

const wikipediaSourceName = "Wikipedia"

var (
	// Leading year with optional era marker, separated from the event
	// text by a dash, colon, or whitespace.
	wikiYearExpr = regexp.MustCompile(`^(\d{1,4}(?:\s*(?:BC|BCE|AD|CE))?)\s*[–\-\s:]\s*(.*)`)
	citationExpr = regexp.MustCompile(`\[\d+\]`)
)

// WikipediaSource scrapes the Events section of an encyclopedia day
// page served by the parse API as rendered HTML.
type WikipediaSource struct {
	client  *Client
	baseURL string
	logger  *slog.Logger
}

var _ ports.EventSource = (*WikipediaSource)(nil)

// NewWikipediaSource wires the shared fetch client against the API base
// URL (e.g. "https://en.wikipedia.org/w/api.php").
func NewWikipediaSource(client *Client, baseURL string, logger *slog.Logger) *WikipediaSource {
	return &WikipediaSource{client: client, baseURL: baseURL, logger: logger}
}

func (s *WikipediaSource) Name() string {
	return wikipediaSourceName
}

func (s *WikipediaSource) Fetch(ctx context.Context, month, day int) ([]domain.Event, error) {
	var payload struct {
		Parse struct {
			Text map[string]string `json:"text"`
		} `json:"parse"`
	}

	if err := s.client.GetJSON(ctx, s.pageURL(month, day), &payload); err != nil {
		return nil, fmt.Errorf("wikipedia: %w", err)
	}

	html := payload.Parse.Text["*"]
	if html == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	if err != nil {
		return nil, fmt.Errorf("wikipedia: parse html: %w", err)
	}

	events := extractDayEvents(doc)

	if s.logger != nil {
		s.logger.Debug("wikipedia fetched", "month", month, "day", day, "count", len(events))
	}

	return events, nil
}

func (s *WikipediaSource) pageURL(month, day int) string {
	page := fmt.Sprintf("%s_%d", time.Month(month).String(), day)
	query := url.Values{}
	query.Set("action", "parse")
	query.Set("page", page)
	query.Set("format", "json")
	query.Set("prop", "text")
	query.Set("section", "1")
	return s.baseURL + "?" + query.Encode()
}

// extractDayEvents walks the list items of a rendered day page and
// keeps the entries shaped like "<year> – <event>". Birth and death
// notices and stub lines are dropped.
func extractDayEvents(doc *goquery.Document) []domain.Event {
	var events []domain.Event

	doc.Find("li").Each(func(i int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())

		match := wikiYearExpr.FindStringSubmatch(text)
		if match == nil {
			return
		}

		year := strings.TrimSpace(match[1])
		eventText := strings.TrimSpace(match[2])

		if len(eventText) <= 15 {
			return
		}
		if strings.HasPrefix(eventText, "Born") || strings.HasPrefix(eventText, "Died") {
			return
		}

		eventText = strings.TrimSpace(citationExpr.ReplaceAllString(eventText, ""))

		events = append(events, domain.Event{
			Year:   year,
			Text:   eventText,
			Source: wikipediaSourceName,
		})
	})

	return events
}
