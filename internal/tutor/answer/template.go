package answer

import (
	"context"
	"strings"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

// Template composes an answer with no model call at all: the question is
// echoed against an excerpt of the top chunks, phrased per difficulty.
type Template struct{}

func NewTemplate() *Template {
	return &Template{}
}

const templateExcerptLimit = 200

func explanationPrefix(difficulty tutorModel.Difficulty) string {
	switch difficulty {
	case tutorModel.DifficultyBeginner:
		return "This is a basic explanation: "
	case tutorModel.DifficultyAdvanced:
		return "This is an advanced analysis: "
	default:
		return "Here's an intermediate explanation: "
	}
}

func (t *Template) Compose(ctx context.Context, question string, result tutorModel.QueryResult, difficulty tutorModel.Difficulty) tutorModel.Answer {
	if len(result.Chunks) == 0 {
		return Insufficient(difficulty)
	}

	top := result.Chunks
	if len(top) > 3 {
		top = top[:3]
	}
	var texts []string
	for _, chunk := range top {
		texts = append(texts, chunk.Text)
	}
	excerpt := strings.Join(texts, "\n")
	if len(excerpt) > templateExcerptLimit {
		excerpt = excerpt[:templateExcerptLimit]
	}

	return tutorModel.Answer{
		Answer:      "Based on the provided context, " + strings.ToLower(question),
		Explanation: explanationPrefix(difficulty) + "The relevant information suggests that " + excerpt + "...",
		Sources:     result.Sources,
		Confidence:  confidenceFor(len(result.Chunks)),
		Difficulty:  difficulty,
	}
}
