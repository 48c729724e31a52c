package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"HistoryScanner/internal/classify"
	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

const defaultDigestSize = 5

// Digest renders the day's top events as a Markdown message and hands
// it to the notifier.
type Digest struct {
	aggregator *Aggregator
	notifier   ports.Notifier
	logger     *slog.Logger
	size       int
}

// NewDigest wires the aggregator and outbound channel. size caps how
// many events one digest carries; non-positive means the default.
func NewDigest(aggregator *Aggregator, notifier ports.Notifier, size int, logger *slog.Logger) *Digest {
	if size <= 0 {
		size = defaultDigestSize
	}
	return &Digest{aggregator: aggregator, notifier: notifier, logger: logger, size: size}
}

// Publish aggregates events for the trigger date and sends the digest.
func (d *Digest) Publish(ctx context.Context, trigger time.Time) error {
	if d.notifier == nil {
		return nil
	}

	result := d.aggregator.Events(ctx, Query{
		Month: int(trigger.Month()),
		Day:   trigger.Day(),
	})

	events := result.Events
	if len(events) > d.size {
		events = events[:d.size]
	}

	digest := renderDigest(trigger, events, result.URL)
	if err := d.notifier.PublishDigest(ctx, digest); err != nil {
		return fmt.Errorf("publish digest: %w", err)
	}

	d.logger.Info("digest published", "date", trigger.Format("January 2"), "events", len(events))
	return nil
}

// renderDigest produces the Markdown body, bolding named entities so
// they stand out in the message.
func renderDigest(trigger time.Time, events []domain.Event, url string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*On This Day — %s*\n", trigger.Format("January 2"))

	for _, event := range events {
		marker := ""
		if event.Verified {
			marker = " ✓"
		}
		fmt.Fprintf(&b, "\n*%s*%s — %s\n", event.Year, marker, highlightEntities(event.Text))
		if event.Category != "" {
			fmt.Fprintf(&b, "_%s_\n", event.Category)
		}
	}

	if url != "" {
		fmt.Fprintf(&b, "\n[More events](%s)\n", url)
	}
	return b.String()
}

// highlightEntities bolds the first occurrence of each extracted
// entity. Longer entities are processed first so a short entity cannot
// split a longer one it is contained in.
func highlightEntities(text string) string {
	for _, entity := range classify.ExtractEntities(text) {
		bolded := "*" + entity + "*"
		if strings.Contains(text, bolded) {
			continue
		}
		text = strings.Replace(text, entity, bolded, 1)
	}
	return text
}
