package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

const defaultSearchLimit = 10

// Terms marking a search hit as historically relevant. A result whose
// title or snippet contains none of them is dropped.
var historicalTerms = []string{
	"history", "historical", "ancient", "medieval", "century",
	"war", "battle", "empire", "kingdom", "dynasty", "revolution",
	"independence", "treaty", "civilization", "era", "king", "queen",
	"emperor", "colonial", "founded", "established",
}

const searchSummaryPrompt = `Write a short factual paragraph (3-4 sentences) summarizing the historical significance of "%s". Only state well-established facts.`

// Search runs full-text queries against the encyclopedia index,
// filters hits to historically relevant ones and optionally asks the
// text provider for an introductory paragraph.
type Search struct {
	searcher ports.Searcher
	provider ports.TextGenerator
	logger   *slog.Logger
}

// NewSearch wires the searcher. The provider may be nil, in which case
// no summary paragraph is produced.
func NewSearch(searcher ports.Searcher, provider ports.TextGenerator, logger *slog.Logger) *Search {
	return &Search{searcher: searcher, provider: provider, logger: logger}
}

// Run returns filtered search results and a best-effort summary
// paragraph. A provider failure degrades to an empty summary, and a
// searcher failure is the only error surfaced.
func (s *Search) Run(ctx context.Context, query string) ([]domain.SearchResult, string, error) {
	hits, err := s.searcher.Search(ctx, query, defaultSearchLimit)
	if err != nil {
		return nil, "", fmt.Errorf("search %q: %w", query, err)
	}

	var results []domain.SearchResult
	for _, hit := range hits {
		if isHistorical(hit) {
			results = append(results, hit)
		}
	}

	return results, s.summary(ctx, query), nil
}

func (s *Search) summary(ctx context.Context, query string) string {
	if s.provider == nil {
		return ""
	}

	text, err := s.provider.Generate(ctx, fmt.Sprintf(searchSummaryPrompt, query))
	if err != nil {
		s.logger.Warn("search summary generation failed", "query", query, "error", err)
		return ""
	}
	return strings.TrimSpace(text)
}

func isHistorical(hit domain.SearchResult) bool {
	haystack := strings.ToLower(hit.Title + " " + hit.Description)
	for _, term := range historicalTerms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
