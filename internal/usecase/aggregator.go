// Package usecase wires sources, merge, classification and ranking into
// the application flows: date aggregation, quiz, search, favorites and
// the daily digest.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"HistoryScanner/internal/classify"
	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/merge"
	"HistoryScanner/internal/ports"
	"HistoryScanner/internal/rank"
	"HistoryScanner/internal/validate"
)

// Years back from now an event may reach under the recent-only filter.
const recentWindowYears = 100

// Query selects the date and optional narrowing for one aggregation run.
type Query struct {
	Month      int
	Day        int
	Category   domain.Category // empty means all categories
	RecentOnly bool
}

// Aggregator runs the fetch → validate → merge → rank → filter pipeline
// for a calendar date. It never returns an error: every failure mode
// degrades to fewer events or the fixed fallback dataset.
type Aggregator struct {
	general []ports.EventSource
	indian  ports.EventSource
	arts    ports.EventSource
	cache   ports.Cache
	scorer  *rank.Scorer
	logger  *slog.Logger
	now     func() time.Time
}

// NewAggregator assembles the pipeline. The indian and arts sources are
// dispatched only when their category is requested; either may be nil.
func NewAggregator(general []ports.EventSource, indian, arts ports.EventSource, cache ports.Cache, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		general: general,
		indian:  indian,
		arts:    arts,
		cache:   cache,
		scorer:  rank.NewScorer(),
		logger:  logger,
		now:     time.Now,
	}
}

// Events returns the merged, ranked and filtered events for the query,
// serving from cache when a previous run populated it.
func (a *Aggregator) Events(ctx context.Context, q Query) domain.Result {
	key := cacheKey(q)
	if a.cache != nil {
		if cached, ok := a.cache.Get(ctx, key); ok {
			a.logger.Debug("serving cached result", "key", key)
			return cached
		}
	}

	result := a.aggregate(ctx, q)

	if a.cache != nil {
		a.cache.Set(ctx, key, result)
	}
	return result
}

func (a *Aggregator) aggregate(ctx context.Context, q Query) (result domain.Result) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("aggregation failed, substituting fallback", "month", q.Month, "day", q.Day, "reason", r)
			result = a.fallback(q)
		}
	}()

	lists := a.collect(ctx, q)
	events := a.scorer.Rank(merge.Events(lists))

	if q.RecentOnly {
		events = filterRecent(events, a.now().Year())
	}

	for i := range events {
		if events[i].Category == "" {
			events[i].Category = classify.Categorize(events[i].Text)
		}
	}

	if q.Category != "" {
		events = filterCategory(events, q.Category)
	}

	if len(events) == 0 {
		a.logger.Warn("no live events survived the pipeline, using fallback", "month", q.Month, "day", q.Day)
		return a.fallback(q)
	}

	return domain.Result{
		Date:   fmt.Sprintf("%d/%d", q.Month, q.Day),
		URL:    dayPageURL(q.Month, q.Day),
		Events: events,
	}
}

// collect fans out to every applicable source and validates the raw
// candidates. A failing source contributes an empty list.
func (a *Aggregator) collect(ctx context.Context, q Query) [][]domain.Event {
	sources := make([]ports.EventSource, 0, len(a.general)+1)
	sources = append(sources, a.general...)
	if q.Category == domain.CategoryIndian && a.indian != nil {
		sources = append(sources, a.indian)
	}
	if q.Category == domain.CategoryArts && a.arts != nil {
		sources = append(sources, a.arts)
	}

	lists := make([][]domain.Event, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src ports.EventSource) {
			defer wg.Done()

			events, err := src.Fetch(ctx, q.Month, q.Day)
			if err != nil {
				a.logger.Warn("source fetch failed", "source", src.Name(), "error", err)
				return
			}

			var kept []domain.Event
			for _, event := range events {
				if validate.Event(event) {
					kept = append(kept, event)
				}
			}
			lists[i] = kept
		}(i, src)
	}
	wg.Wait()

	return lists
}

// fallback serves the curated dataset, narrowed by the same filters the
// live pipeline applies.
func (a *Aggregator) fallback(q Query) domain.Result {
	result := domain.SampleEvents(q.Month, q.Day)

	events := result.Events
	if q.RecentOnly {
		events = filterRecent(events, a.now().Year())
	}
	if q.Category != "" {
		events = filterCategory(events, q.Category)
	}

	result.Events = a.scorer.Rank(events)
	return result
}

func cacheKey(q Query) string {
	return fmt.Sprintf("%d_%d_%s_%t", q.Month, q.Day, q.Category, q.RecentOnly)
}

func dayPageURL(month, day int) string {
	return fmt.Sprintf("https://en.wikipedia.org/wiki/%s_%d", time.Month(month).String(), day)
}

// filterRecent keeps events whose plain numeric year falls within the
// recent window. Era-tagged years do not parse and are dropped.
func filterRecent(events []domain.Event, currentYear int) []domain.Event {
	var kept []domain.Event
	for _, event := range events {
		year, err := strconv.Atoi(event.Year)
		if err != nil {
			continue
		}
		if year >= currentYear-recentWindowYears {
			kept = append(kept, event)
		}
	}
	return kept
}

// filterCategory keeps events matching the requested category. The two
// specialized categories additionally require independent confirmation
// from their dedicated classifier, guarding against events whose stored
// label matched on a homonymous term.
func filterCategory(events []domain.Event, want domain.Category) []domain.Event {
	var kept []domain.Event
	for _, event := range events {
		if event.Category != want {
			continue
		}
		switch want {
		case domain.CategoryIndian:
			if !classify.IsIndianEvent(event.Text) {
				continue
			}
		case domain.CategoryArts:
			if !classify.IsArtsCultureEvent(event.Text) {
				continue
			}
		}
		event.Category = want
		kept = append(kept, event)
	}
	return kept
}
