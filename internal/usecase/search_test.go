package usecase

import (
	"context"
	"errors"
	"testing"

	"HistoryScanner/internal/domain"
)

type fakeSearcher struct {
	hits []domain.SearchResult
	err  error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	return f.hits, f.err
}

type fakeProvider struct {
	text string
	err  error
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func TestSearchFiltersNonHistoricalHits(t *testing.T) {
	searcher := &fakeSearcher{hits: []domain.SearchResult{
		{Title: "Indian independence movement", Description: "series of events to end British colonial rule"},
		{Title: "Apple pie", Description: "a dessert made with apples and a pastry crust"},
		{Title: "French Revolution", Description: "period of political upheaval in France"},
	}}

	search := NewSearch(searcher, nil, testLogger())
	results, summary, err := search.Run(context.Background(), "independence")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary != "" {
		t.Fatalf("expected empty summary without provider, got %q", summary)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 historical results, got %d", len(results))
	}
	for _, r := range results {
		if r.Title == "Apple pie" {
			t.Fatal("non-historical hit should be filtered out")
		}
	}
}

func TestSearchSummaryDegradesOnProviderError(t *testing.T) {
	searcher := &fakeSearcher{hits: []domain.SearchResult{
		{Title: "Roman Empire", Description: "ancient state centered on the city of Rome"},
	}}
	provider := &fakeProvider{err: errors.New("quota exceeded")}

	search := NewSearch(searcher, provider, testLogger())
	results, summary, err := search.Run(context.Background(), "Roman Empire")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if summary != "" {
		t.Fatalf("expected empty summary on provider error, got %q", summary)
	}
}

func TestSearchSummaryFromProvider(t *testing.T) {
	searcher := &fakeSearcher{hits: []domain.SearchResult{
		{Title: "Mughal Empire", Description: "early modern empire in South Asia"},
	}}
	provider := &fakeProvider{text: " The Mughal Empire ruled much of South Asia. \n"}

	search := NewSearch(searcher, provider, testLogger())
	_, summary, err := search.Run(context.Background(), "Mughal Empire")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary != "The Mughal Empire ruled much of South Asia." {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestSearchPropagatesSearcherError(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("upstream down")}

	search := NewSearch(searcher, nil, testLogger())
	if _, _, err := search.Run(context.Background(), "anything"); err == nil {
		t.Fatal("expected error from failing searcher")
	}
}
