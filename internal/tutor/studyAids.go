package tutor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/internal/metrics"
)

const generateQnAPromptFormat = `Generate %d question-answer pairs to help a student revise the material below:

%s

Return as:
Q: <question>
A: <answer>
...repeat
`

const summaryPromptFormat = `Summarize the following content clearly for a student:

%s

Summary:
`

// Flashcards builds one card per stored chunk without calling the LLM: the
// question names the section and the answer is the chunk's opening text.
func (s *service) Flashcards(ctx context.Context, documentID string) ([]tutorModel.Flashcard, error) {
	chunks, err := s.documentChunks(ctx, documentID, config.MaxFlashcards)
	if err != nil {
		return nil, err
	}

	cards := make([]tutorModel.Flashcard, 0, len(chunks))
	for i, chunk := range chunks {
		cards = append(cards, tutorModel.Flashcard{
			Question:   fmt.Sprintf("What is the main concept discussed in section %d?", i+1),
			Answer:     truncate(chunk.Text, config.FlashcardAnswerLimit),
			ChunkIndex: i,
		})
	}
	return cards, nil
}

// GenerateFlashcards asks the LLM for Q/A pairs over the document's opening
// chunks. A failed generation yields an empty deck rather than an error.
func (s *service) GenerateFlashcards(ctx context.Context, documentID string) ([]tutorModel.Flashcard, error) {
	chunks, err := s.documentChunks(ctx, documentID, config.SummaryChunkLimit)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(generateQnAPromptFormat, config.MaxFlashcards, joinChunkText(chunks))
	output, err := s.generateStep(ctx, prompt)
	if err != nil {
		s.requestLogger(ctx).Error("Flashcard generation failed", "error", err)
		return []tutorModel.Flashcard{}, nil
	}

	return parseQnAPairs(output), nil
}

func (s *service) Summarize(ctx context.Context, documentID string) (string, error) {
	chunks, err := s.documentChunks(ctx, documentID, config.SummaryChunkLimit)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(summaryPromptFormat, joinChunkText(chunks))
	summary, err := s.generateStep(ctx, prompt)
	if err != nil {
		s.requestLogger(ctx).Error("Summary generation failed", "error", err)
		return config.LLMFailurePlaceholder, nil
	}
	return strings.TrimSpace(summary), nil
}

// documentChunks returns the document's first limit chunks in index order,
// or ErrNotFound when nothing is stored under the id.
func (s *service) documentChunks(ctx context.Context, documentID string, limit int) ([]tutorModel.Chunk, error) {
	chunks, err := s.vectorDB.FetchByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, tutorModel.ErrNotFound
	}
	if len(chunks) > limit {
		chunks = chunks[:limit]
	}
	return chunks, nil
}

func (s *service) generateStep(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, prompt)
}

func joinChunkText(chunks []tutorModel.Chunk) string {
	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
	}
	return strings.Join(texts, "\n")
}

func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}

// parseQnAPairs walks the completion line by line collecting Q:/A: pairs.
// Anything outside the markers, and any pair with an empty half, is dropped.
func parseQnAPairs(output string) []tutorModel.Flashcard {
	cards := []tutorModel.Flashcard{}
	var question string

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Q:"):
			question = strings.TrimSpace(strings.TrimPrefix(line, "Q:"))
		case strings.HasPrefix(line, "A:"):
			answerText := strings.TrimSpace(strings.TrimPrefix(line, "A:"))
			if question != "" && answerText != "" {
				cards = append(cards, tutorModel.Flashcard{
					Question:   question,
					Answer:     answerText,
					ChunkIndex: len(cards),
				})
			}
			question = ""
		}
	}
	return cards
}
