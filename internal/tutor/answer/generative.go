package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/internal/llm"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

// Generative delegates composition to a text-generation provider and parses
// the answer and its source lines back out of the completion.
type Generative struct {
	provider llm.Provider
	logger   *logger_i.Logger
}

func NewGenerative(provider llm.Provider) *Generative {
	return &Generative{
		provider: provider,
		logger:   logger_i.NewLogger("Generative Composer"),
	}
}

const generativePromptFormat = `Answer the question using only the context below. Return answer and the exact line(s) you used.

Context:
%s

Question:
%s

Return in format:
Answer: <your answer>
Sources:
- <line 1>
- <line 2>
`

func (g *Generative) Compose(ctx context.Context, question string, result tutorModel.QueryResult, difficulty tutorModel.Difficulty) tutorModel.Answer {
	if len(result.Chunks) == 0 {
		return Insufficient(difficulty)
	}

	var texts []string
	for _, chunk := range result.Chunks {
		texts = append(texts, chunk.Text)
	}
	prompt := fmt.Sprintf(generativePromptFormat, strings.Join(texts, "\n"), question)

	response, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		g.logger.Error("Generation failed", "error", err)
		return tutorModel.Answer{
			Answer:      config.LLMFailurePlaceholder,
			Explanation: "The text-generation service was unavailable.",
			Sources:     []string{},
			Confidence:  confidenceNone,
			Difficulty:  difficulty,
		}
	}

	answerText, sources := parseResponse(response)
	return tutorModel.Answer{
		Answer:      answerText,
		Explanation: fmt.Sprintf("Answer generated from %d retrieved passages.", len(result.Chunks)),
		Sources:     sources,
		Confidence:  confidenceFor(len(result.Chunks)),
		Difficulty:  difficulty,
	}
}

// parseResponse splits a completion on the literal Answer:/Sources: markers.
// A response without the Sources: marker is treated wholesale as the answer
// with no sources rather than failing.
func parseResponse(response string) (string, []string) {
	const answerMarker, sourcesMarker = "Answer:", "Sources:"

	if !strings.Contains(response, sourcesMarker) {
		return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(response), answerMarker)), []string{}
	}

	parts := strings.SplitN(response, sourcesMarker, 2)
	answerText := strings.TrimSpace(strings.Replace(parts[0], answerMarker, "", 1))

	sources := []string{}
	for _, line := range strings.Split(parts[1], "- ") {
		if line = strings.TrimSpace(line); line != "" {
			sources = append(sources, line)
		}
	}
	return answerText, sources
}
