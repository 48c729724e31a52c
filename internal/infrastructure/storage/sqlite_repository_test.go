package storage

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"HistoryScanner/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewSQLiteRepository(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return repo
}

func TestToggleMarksAndUnmarks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	event := domain.Event{
		Year:     "1947",
		Text:     "India gains independence from British rule",
		Source:   "Wikipedia",
		Category: domain.CategoryIndian,
		Verified: true,
	}

	marked, err := repo.Toggle(ctx, KindFavorite, event)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !marked {
		t.Fatal("expected event to be marked after first toggle")
	}

	events, err := repo.List(ctx, KindFavorite)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(events))
	}
	got := events[0]
	if got.Year != event.Year || got.Text != event.Text || got.Source != event.Source {
		t.Fatalf("unexpected stored event: %+v", got)
	}
	if got.Category != domain.CategoryIndian || !got.Verified {
		t.Fatalf("category/verified not preserved: %+v", got)
	}

	marked, err = repo.Toggle(ctx, KindFavorite, event)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if marked {
		t.Fatal("expected event to be unmarked after second toggle")
	}

	events, err = repo.List(ctx, KindFavorite)
	if err != nil {
		t.Fatalf("list after unmark: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty favorites, got %d", len(events))
	}
}

func TestListIsScopedByKind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	favorite := domain.Event{Year: "1969", Text: "Apollo 11 lands on the Moon", Source: "History.com"}
	bookmark := domain.Event{Year: "1989", Text: "The Berlin Wall falls", Source: "On This Day"}

	if _, err := repo.Toggle(ctx, KindFavorite, favorite); err != nil {
		t.Fatalf("toggle favorite: %v", err)
	}
	if _, err := repo.Toggle(ctx, KindBookmark, bookmark); err != nil {
		t.Fatalf("toggle bookmark: %v", err)
	}

	favorites, err := repo.List(ctx, KindFavorite)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].Year != "1969" {
		t.Fatalf("unexpected favorites: %+v", favorites)
	}

	bookmarks, err := repo.List(ctx, KindBookmark)
	if err != nil {
		t.Fatalf("list bookmarks: %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0].Year != "1989" {
		t.Fatalf("unexpected bookmarks: %+v", bookmarks)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := domain.Event{Year: "1066", Text: "The Battle of Hastings is fought in England"}
	second := domain.Event{Year: "1215", Text: "King John of England signs the Magna Carta"}

	if _, err := repo.Toggle(ctx, KindFavorite, first); err != nil {
		t.Fatalf("toggle first: %v", err)
	}
	if _, err := repo.Toggle(ctx, KindFavorite, second); err != nil {
		t.Fatalf("toggle second: %v", err)
	}

	events, err := repo.List(ctx, KindFavorite)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Year != "1215" || events[1].Year != "1066" {
		t.Fatalf("unexpected order: %s, %s", events[0].Year, events[1].Year)
	}
}
