package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"HistoryScanner/internal/domain"
)

// fakeGenerator returns canned output or an error.
type fakeGenerator struct {
	output string
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return f.output, f.err
}

func TestParseStrictEventJSON(t *testing.T) {
	t.Parallel()

	raw := `Here you go:
[
  {"year": "1947", "event": "India gained independence from British rule"},
  {"year": "1950", "text": "The Constitution of India came into effect"}
]`

	events, ok := parseEventOutput(raw)
	assert.True(t, ok)
	assert.Len(t, events, 2)
	assert.Equal(t, "1947", events[0].Year)
	assert.Equal(t, "The Constitution of India came into effect", events[1].Text)
}

func TestParseLabeledBlocks(t *testing.T) {
	t.Parallel()

	raw := `Sure! Some events:
- Year: 1947
- Event: India gained independence from British rule
- Year: 326 BC
Alexander crossed the Indus river into Punjab`

	events, ok := parseEventOutput(raw)
	assert.True(t, ok)
	assert.Len(t, events, 2)
	assert.Equal(t, "1947", events[0].Year)
	assert.Equal(t, "India gained independence from British rule", events[0].Text)
	assert.Equal(t, "326 BC", events[1].Year)
	assert.Equal(t, "Alexander crossed the Indus river into Punjab", events[1].Text)
}

func TestParseEventOutputGarbage(t *testing.T) {
	t.Parallel()

	_, ok := parseEventOutput("I cannot help with that request.")
	assert.False(t, ok)

	_, ok = parseEventOutput("")
	assert.False(t, ok)
}

func TestIndianSourceProviderOutput(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{output: `- Year: 1947
- Event: India gained independence from British rule
- Year: 1903
- Event: The first powered aeroplane flight took place in North Carolina`}

	source := NewIndianSource(gen, nil)
	events, err := source.Fetch(context.Background(), 8, 15)

	assert.NoError(t, err)
	// The non-Indian event must be dropped by the detector.
	assert.Len(t, events, 1)
	assert.Equal(t, domain.CategoryIndian, events[0].Category)
	assert.True(t, events[0].Verified)
	assert.Equal(t, "Indian Historical Archives", events[0].Source)
}

func TestIndianSourceFallsBackToSeeds(t *testing.T) {
	t.Parallel()

	source := NewIndianSource(&fakeGenerator{err: fmt.Errorf("provider down")}, nil)

	// A date with curated samples serves those.
	events, err := source.Fetch(context.Background(), 8, 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, events)
	assert.Equal(t, "1947", events[0].Year)

	// A date without curated samples serves the generic seeds.
	events, err = source.Fetch(context.Background(), 3, 3)
	assert.NoError(t, err)
	assert.NotEmpty(t, events)
	for _, e := range events {
		assert.Equal(t, domain.CategoryIndian, e.Category)
	}
}

func TestArtsSourceFallsBackToSeeds(t *testing.T) {
	t.Parallel()

	source := NewArtsSource(nil, nil)
	events, err := source.Fetch(context.Background(), 6, 1)

	assert.NoError(t, err)
	assert.NotEmpty(t, events)
	for _, e := range events {
		assert.Equal(t, domain.CategoryArts, e.Category)
	}
}

func TestQuizGeneratorStrictJSON(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{output: `[
	  {"question": "Q1?", "options": ["a", "b", "c", "d"], "answer": "a", "explanation": "because"},
	  {"question": "bad", "options": ["a", "b"], "answer": "a", "explanation": ""}
	]`}

	g := NewQuizGenerator(gen, nil)
	questions := g.Generate(context.Background(), 8, 15, 5)

	assert.Len(t, questions, 1)
	assert.Equal(t, "Q1?", questions[0].Question)
}

func TestQuizGeneratorSeedFallback(t *testing.T) {
	t.Parallel()

	g := NewQuizGenerator(&fakeGenerator{output: "no json here"}, nil)
	questions := g.Generate(context.Background(), 8, 15, 3)

	assert.Len(t, questions, 3)
	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.Answer)
	}
}
