package llm

import (
	"context"
	"fmt"
	"log/slog"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

const quizPromptTemplate = `Generate %d multiple-choice quiz questions about historical events that happened on %s.

Return ONLY a JSON array. Each element must be an object with exactly these fields:
  "question": the question text,
  "options": an array of exactly 4 answer options,
  "answer": the correct option verbatim,
  "explanation": one sentence of historical context.

Do not include any text outside the JSON array.`

// QuizGenerator produces date-themed quiz questions via the provider,
// with a fixed question set as last resort. Generate never fails.
type QuizGenerator struct {
	gen    ports.TextGenerator
	logger *slog.Logger
}

// NewQuizGenerator wires a text generator; gen may be nil.
func NewQuizGenerator(gen ports.TextGenerator, logger *slog.Logger) *QuizGenerator {
	return &QuizGenerator{gen: gen, logger: logger}
}

// Generate returns up to count questions for the date.
func (g *QuizGenerator) Generate(ctx context.Context, month, day, count int) []domain.QuizQuestion {
	if count <= 0 {
		count = 5
	}

	if g.gen != nil {
		prompt := fmt.Sprintf(quizPromptTemplate, count, formatDate(month, day))
		raw, err := g.gen.Generate(ctx, prompt)
		if err != nil {
			if g.logger != nil {
				g.logger.Warn("quiz generation failed", "error", err)
			}
		} else if questions, ok := parseQuizOutput(raw); ok {
			if len(questions) > count {
				questions = questions[:count]
			}
			return questions
		} else if g.logger != nil {
			g.logger.Warn("quiz output unparseable")
		}
	}

	seed := seedQuestions()
	if len(seed) > count {
		seed = seed[:count]
	}
	return seed
}

func seedQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Question:    "In which year did India gain independence from British rule?",
			Options:     []string{"1942", "1945", "1947", "1950"},
			Answer:      "1947",
			Explanation: "India became independent on August 15, 1947, with Jawaharlal Nehru as its first Prime Minister.",
		},
		{
			Question:    "Who discovered penicillin?",
			Options:     []string{"Alexander Fleming", "Louis Pasteur", "Marie Curie", "Edward Jenner"},
			Answer:      "Alexander Fleming",
			Explanation: "Fleming noticed the antibacterial effect of the Penicillium mould in 1928.",
		},
		{
			Question:    "Which mission first landed humans on the Moon?",
			Options:     []string{"Apollo 8", "Apollo 11", "Apollo 13", "Gemini 4"},
			Answer:      "Apollo 11",
			Explanation: "Apollo 11 landed Neil Armstrong and Buzz Aldrin on the Moon in July 1969.",
		},
		{
			Question:    "The Constitution of India came into effect in which year?",
			Options:     []string{"1947", "1948", "1950", "1952"},
			Answer:      "1950",
			Explanation: "It came into force on January 26, 1950, celebrated as Republic Day.",
		},
		{
			Question:    "Which conflict began with the invasion of Poland in 1939?",
			Options:     []string{"World War I", "World War II", "The Cold War", "The Crimean War"},
			Answer:      "World War II",
			Explanation: "Nazi Germany invaded Poland on September 1, 1939, drawing France and the United Kingdom into war.",
		},
	}
}
