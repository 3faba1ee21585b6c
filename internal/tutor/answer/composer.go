// Package answer turns a question and its retrieved chunks into the final
// response. Two interchangeable strategies sit behind Composer: a pure
// template and a generative one that delegates to a text-generation
// provider.
package answer

import (
	"context"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

type Composer interface {
	Compose(ctx context.Context, question string, result tutorModel.QueryResult, difficulty tutorModel.Difficulty) tutorModel.Answer
}

const (
	insufficientAnswer      = "I don't have enough information to answer this question. Please upload relevant documents or provide more context."
	insufficientExplanation = "No relevant context found in the knowledge base."

	// confidence steps up once three or more chunks back the answer
	confidenceNone = 0.1
	confidenceLow  = 0.6
	confidenceHigh = 0.8
)

// Insufficient is the fixed response for an empty or unreachable knowledge base.
func Insufficient(difficulty tutorModel.Difficulty) tutorModel.Answer {
	return tutorModel.Answer{
		Answer:      insufficientAnswer,
		Explanation: insufficientExplanation,
		Sources:     []string{},
		Confidence:  confidenceNone,
		Difficulty:  difficulty,
	}
}

func confidenceFor(chunkCount int) float64 {
	if chunkCount >= 3 {
		return confidenceHigh
	}
	return confidenceLow
}
