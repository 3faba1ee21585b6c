package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/internal/metrics"
	"github.com/akulsh/TutorAPI/internal/tutor/answer"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

func (s *service) requestLogger(ctx context.Context) *logger_i.Logger {
	if traceId, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return s.logger.With("traceId", traceId)
	}
	return s.logger
}

func (s *service) composerFor(strategy tutorModel.Strategy) answer.Composer {
	if strategy == tutorModel.StrategyGenerative {
		return answer.NewGenerative(s.llmProvider)
	}
	return answer.NewTemplate()
}

func (s *service) executeEmbeddingStep(ctx context.Context, log *logger_i.Logger, query string) ([]float32, error) {
	log.Debug("Ask", "Current Step", "embedding")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.GetEmbedding(ctx, query)
}

func (s *service) executeCacheCheckStep(ctx context.Context, log *logger_i.Logger, queryVector []float32) (tutorModel.Answer, bool) {
	log.Debug("Ask", "Current Step", "cache check")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_lookup", time.Since(start)) }()

	payload, found, _ := s.vectorDB.GetCachedAnswer(ctx, queryVector)
	if !found {
		return tutorModel.Answer{}, false
	}

	// A cache entry that no longer unmarshals is treated as a miss.
	var cached tutorModel.Answer
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		log.Warn("Discarding unreadable cache entry", "error", err)
		return tutorModel.Answer{}, false
	}
	return cached, true
}

func (s *service) executeVectorSearchStep(ctx context.Context, log *logger_i.Logger, queryVector []float32, topK int) (tutorModel.QueryResult, error) {
	log.Debug("Ask", "Current Step", "vector search")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	chunks, err := s.vectorDB.Query(ctx, queryVector, topK)
	if err != nil {
		return tutorModel.QueryResult{}, err
	}
	return tutorModel.QueryResult{Chunks: chunks, Sources: sourceTitles(chunks)}, nil
}

func (s *service) executeComposeStep(ctx context.Context, question tutorModel.Question, result tutorModel.QueryResult, composer answer.Composer) tutorModel.Answer {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("answer_compose", time.Since(start)) }()

	return composer.Compose(ctx, question.Question, result, question.Difficulty)
}

// sourceTitles collects the distinct document titles behind a set of hits,
// first occurrence first.
func sourceTitles(chunks []tutorModel.ScoredChunk) []string {
	seen := make(map[string]bool)
	titles := []string{}
	for _, chunk := range chunks {
		title := chunk.Metadata["title"]
		if title == "" {
			title = "Unknown source"
		}
		if !seen[title] {
			seen[title] = true
			titles = append(titles, title)
		}
	}
	return titles
}

func (s *service) batchIngest(ctx context.Context, log *logger_i.Logger, chunks []tutorModel.Chunk) error {
	batchSize := 100
	isHugeDataSet := false

	if len(chunks) > 1000000 { //we only want to do this if there is a huge document
		isHugeDataSet = true
		log.Debug("Is a huge dataset")
	}

	for i := 0; i < len(chunks); i += batchSize {
		end := i + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		currentBatch := chunks[i:end]

		texts := make([]string, 0, len(currentBatch))
		for _, c := range currentBatch {
			texts = append(texts, c.Text)
		}

		log.Debug("Starting embedding call", "current batch length ", len(currentBatch))
		vectors, err := s.embedder.BatchEmbedding(ctx, texts, isHugeDataSet)
		if err != nil {
			return fmt.Errorf("embedding batch failed: %w", err)
		}

		err = s.vectorDB.UpsertChunks(ctx, config.KnowledgeCollectionName, currentBatch, vectors)
		if err != nil {
			return fmt.Errorf("upserting to qdrant failed: %w", err)
		}
	}

	return nil
}
