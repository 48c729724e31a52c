package webapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

// SearchClient queries the encyclopedia full-text search API.
type SearchClient struct {
	client  *Client
	baseURL string
	siteURL string
}

var _ ports.Searcher = (*SearchClient)(nil)

// NewSearchClient wires the fetch client against the search API base
// URL and the article site root used to build result links.
func NewSearchClient(client *Client, baseURL, siteURL string) *SearchClient {
	return &SearchClient{
		client:  client,
		baseURL: baseURL,
		siteURL: strings.TrimSuffix(siteURL, "/"),
	}
}

// Search runs a full-text query and returns cleaned result snippets.
func (s *SearchClient) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	var payload struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")

	if err := s.client.GetJSON(ctx, s.baseURL+"?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	if limit <= 0 || limit > len(payload.Query.Search) {
		limit = len(payload.Query.Search)
	}

	results := make([]domain.SearchResult, 0, limit)
	for _, hit := range payload.Query.Search[:limit] {
		results = append(results, domain.SearchResult{
			Title:       hit.Title,
			Description: cleanSnippet(hit.Snippet),
			URL:         fmt.Sprintf("%s/wiki/%s", s.siteURL, url.PathEscape(hit.Title)),
			Source:      wikipediaSourceName,
		})
	}

	return results, nil
}

// cleanSnippet strips the search-match markers and any residual markup.
func cleanSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, `<span class="searchmatch">`, "")
	snippet = strings.ReplaceAll(snippet, "</span>", "")
	return strings.TrimSpace(tagExpr.ReplaceAllString(snippet, ""))
}
