package webapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestDayHistorySourceFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/date/8/15" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"data": {
				"Events": [
					{"year": "1947", "text": "India <b>gained</b> independence from British rule"},
					{"year": "", "text": "missing year entry"},
					{"year": "1969", "text": "Apollo 11 landed on the Moon"}
				]
			}
		}`))
	}))
	defer server.Close()

	source := NewDayHistorySource(NewClient("test", server.Client(), nil), server.URL, nil)

	events, err := source.Fetch(context.Background(), 8, 15)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Text != "India gained independence from British rule" {
		t.Fatalf("markup not stripped: %q", events[0].Text)
	}
	if events[0].Source != "History.com" {
		t.Fatalf("unexpected source: %s", events[0].Source)
	}
	if events[0].Verified {
		t.Fatal("raw candidates must not be pre-verified")
	}
}

func TestOnThisDaySourceFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/8/15/events.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"events": [
				{"year": "1947", "description": "India gains independence from the British"},
				{"year": "1914", "description": ""}
			]
		}`))
	}))
	defer server.Close()

	source := NewOnThisDaySource(NewClient("test", server.Client(), nil), server.URL, nil)

	events, err := source.Fetch(context.Background(), 8, 15)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Year != "1947" {
		t.Fatalf("unexpected year: %s", events[0].Year)
	}
}

func TestWikipediaSourceFetch(t *testing.T) {
	t.Parallel()

	html := `<div><ul>` +
		`<li>1947 – India gained independence from British rule[1]</li>` +
		`<li>1769 – Born: Napoleon Bonaparte, French emperor</li>` +
		`<li>1914 – short</li>` +
		`<li>No year prefix on this line at all</li>` +
		`</ul></div>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "August_15" {
			t.Errorf("unexpected page %s", got)
		}
		body := `{"parse":{"text":{"*":` + jsonString(html) + `}}}`
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	source := NewWikipediaSource(NewClient("test", server.Client(), nil), server.URL, nil)

	events, err := source.Fetch(context.Background(), 8, 15)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Year != "1947" {
		t.Fatalf("unexpected year: %s", events[0].Year)
	}
	if strings.Contains(events[0].Text, "[1]") {
		t.Fatalf("citation marker not stripped: %q", events[0].Text)
	}
}

func TestExtractDayEventsSkipsBirthNotices(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<ul><li>1769 – Died: a famous person of some renown</li></ul>`))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	if events := extractDayEvents(doc); len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestSearchClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("list"); got != "search" {
			t.Errorf("unexpected list param %s", got)
		}
		_, _ = w.Write([]byte(`{
			"query": {
				"search": [
					{"title": "Indian independence movement", "snippet": "The <span class=\"searchmatch\">independence</span> movement"},
					{"title": "Second result", "snippet": "plain snippet"}
				]
			}
		}`))
	}))
	defer server.Close()

	sc := NewSearchClient(NewClient("test", server.Client(), nil), server.URL, "https://en.wikipedia.org")

	results, err := sc.Search(context.Background(), "independence", 1)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Description != "The independence movement" {
		t.Fatalf("snippet not cleaned: %q", results[0].Description)
	}
	if !strings.Contains(results[0].URL, "Indian%20independence%20movement") {
		t.Fatalf("unexpected url: %s", results[0].URL)
	}
}

func jsonString(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + replacer.Replace(s) + `"`
}
