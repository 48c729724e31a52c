package ports

import (
	"context"
	"time"

	"HistoryScanner/internal/domain"
)

// EventSource pulls candidate events for a calendar date from one
// upstream provider. Implementations absorb their own failures: a
// broken upstream yields an error that the aggregator converts into an
// empty contribution, never a pipeline abort.
type EventSource interface {
	Name() string
	Fetch(ctx context.Context, month, day int) ([]domain.Event, error)
}

// Cache memoizes aggregation results per request key.
type Cache interface {
	Get(ctx context.Context, key string) (domain.Result, bool)
	Set(ctx context.Context, key string, result domain.Result)
}

// TextGenerator is the generative-text collaborator. Output is
// free-form and may deviate arbitrarily from the requested shape.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Searcher queries an external article index for historical topics.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}

// FavoritesRepository persists user-marked event snapshots.
type FavoritesRepository interface {
	Toggle(ctx context.Context, kind string, event domain.Event) (marked bool, err error)
	List(ctx context.Context, kind string) ([]domain.Event, error)
}

// Notifier delivers rendered digests to an outbound channel.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when the digest job executes.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
