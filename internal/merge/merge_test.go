package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"HistoryScanner/internal/domain"
)

func TestEventsDedupIdempotence(t *testing.T) {
	t.Parallel()

	lists := [][]domain.Event{
		{{Year: "1969", Text: "Apollo 11 landed on the Moon with two astronauts", Source: "Wikipedia"}},
		{{Year: "1969", Text: "Apollo 11 landed on the Moon with two astronauts", Source: "History.com"}},
	}

	merged := Events(lists)

	assert.Len(t, merged, 1)
	assert.True(t, merged[0].Verified)
	assert.Equal(t, "History.com, Wikipedia", merged[0].Source)
}

func TestEventsFuzzyMergeThreshold(t *testing.T) {
	t.Parallel()

	lists := [][]domain.Event{
		{{Year: "1947", Text: "India gained independence from British rule", Source: "Wikipedia"}},
		{{Year: "1947", Text: "India gains independence from the British", Source: "On This Day"}},
	}

	merged := Events(lists)

	assert.Len(t, merged, 1, "near-identical same-year texts must collapse")
	assert.True(t, merged[0].Verified)
	assert.Equal(t, "India gained independence from British rule", merged[0].Text, "longer text preferred")

	// Clearly different events in the same year stay apart.
	distinct := Events([][]domain.Event{
		{{Year: "1947", Text: "India gained independence from British rule", Source: "Wikipedia"}},
		{{Year: "1947", Text: "The transistor was invented at Bell Labs", Source: "History.com"}},
	})
	assert.Len(t, distinct, 2)
}

func TestEventsSameSourceDoesNotVerify(t *testing.T) {
	t.Parallel()

	merged := Events([][]domain.Event{
		{
			{Year: "1955", Text: "Disneyland opened its gates in Anaheim California", Source: "History.com"},
			{Year: "1955", Text: "Disneyland opened its gates in Anaheim California", Source: "History.com"},
		},
	})

	assert.Len(t, merged, 1)
	assert.False(t, merged[0].Verified)
	assert.Equal(t, "History.com", merged[0].Source)
}

func TestEventsPreservesSpecialCategory(t *testing.T) {
	t.Parallel()

	merged := Events([][]domain.Event{
		{{Year: "1947", Text: "India gained independence from British rule", Source: "Wikipedia"}},
		{{Year: "1947", Text: "India gained independence from British rule", Source: "Indian Historical Archives", Category: domain.CategoryIndian}},
	})

	assert.Len(t, merged, 1)
	assert.Equal(t, domain.CategoryIndian, merged[0].Category)
}

func TestEventsYearSort(t *testing.T) {
	t.Parallel()

	merged := Events([][]domain.Event{{
		{Year: "44 BC", Text: "Julius Caesar was assassinated in the Senate", Source: "Wikipedia"},
		{Year: "1969", Text: "Apollo 11 landed on the Moon safely", Source: "Wikipedia"},
		{Year: "490 BC", Text: "The Battle of Marathon was fought in Greece", Source: "Wikipedia"},
		{Year: "2001", Text: "Wikipedia the free encyclopedia was launched online", Source: "Wikipedia"},
	}})

	years := make([]string, len(merged))
	for i, e := range merged {
		years[i] = e.Year
	}

	assert.Equal(t, []string{"2001", "1969", "44 BC", "490 BC"}, years)
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, similarity("india gained independence", "india gained independence"), 1e-9)
	assert.Equal(t, 0.0, similarity("", "india gained independence"))
	assert.Equal(t, 0.0, similarity("", ""))
	assert.Less(t, similarity("completely different words here", "india gained independence now"), 0.8)
}
