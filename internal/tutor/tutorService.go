package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/akulsh/TutorAPI/internal/adapter/utils"
	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/internal/embedding"
	"github.com/akulsh/TutorAPI/internal/llm"
	"github.com/akulsh/TutorAPI/internal/metrics"
	"github.com/akulsh/TutorAPI/internal/tutor/answer"
	"github.com/akulsh/TutorAPI/internal/tutor/chunker"
	"github.com/akulsh/TutorAPI/internal/vectorDB"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

// Service is the public contract handlers and the MCP adapter call. It is
// the only surface they see - the vector store, embedder and LLM stay
// behind the private struct so they can be swapped for mocks in tests.
type Service interface {
	Ingest(ctx context.Context, req tutorModel.IngestRequest) (tutorModel.IngestResult, error)
	Ask(ctx context.Context, question tutorModel.Question) (tutorModel.Answer, error)
	Retrieve(ctx context.Context, query string, topK int) (tutorModel.QueryResult, error)
	ListDocuments(ctx context.Context) ([]tutorModel.Document, error)
	Flashcards(ctx context.Context, documentID string) ([]tutorModel.Flashcard, error)
	GenerateFlashcards(ctx context.Context, documentID string) ([]tutorModel.Flashcard, error)
	Summarize(ctx context.Context, documentID string) (string, error)
}

type service struct {
	vectorDB    vectorDB.DataProcessor
	llmProvider llm.Provider
	embedder    embedding.Embedder
	documents   tutorModel.DocumentStore
	logger      *logger_i.Logger
}

// NewService constructor
func NewService(vector vectorDB.DataProcessor, llm llm.Provider, em embedding.Embedder, docs tutorModel.DocumentStore) Service {
	return &service{
		vectorDB:    vector,
		llmProvider: llm,
		embedder:    em,
		documents:   docs,
		logger:      logger_i.NewLogger("Tutor Service :"),
	}
}

func (s *service) Ingest(ctx context.Context, req tutorModel.IngestRequest) (tutorModel.IngestResult, error) {
	inMethodLogger := s.requestLogger(ctx).With("title", req.Title)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_ingestion", time.Since(start)) }()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return tutorModel.IngestResult{}, tutorModel.ErrEmptyContent
	}

	pieces, err := chunker.Split(text, config.ChunkSize, config.ChunkOverlap)
	if err != nil {
		return tutorModel.IngestResult{}, err
	}

	docID := utils.GetNewUUID()
	chunks := make([]tutorModel.Chunk, 0, len(pieces))
	for i, piece := range pieces {
		chunks = append(chunks, tutorModel.Chunk{
			DocumentID: docID,
			Index:      i,
			Text:       piece,
			Metadata:   chunkMetadata(req),
		})
	}

	inMethodLogger.Debug("Processing document", "Number of chunks: ", len(chunks))

	if err := s.vectorDB.EnsureCollection(ctx, config.KnowledgeCollectionName); err != nil {
		inMethodLogger.Error("Error creating collection", "error", err)
		return tutorModel.IngestResult{}, err
	}

	if err := s.batchIngest(ctx, inMethodLogger, chunks); err != nil {
		inMethodLogger.Error("Error processing document", "error", err)
		return tutorModel.IngestResult{}, err
	}

	// The metadata record is written last so a listed document always has
	// its chunks searchable.
	doc := tutorModel.Document{
		Id:          docID,
		Title:       req.Title,
		ContentType: req.ContentType,
		UploadTime:  time.Now().UTC(),
		ChunksCount: len(chunks),
	}
	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		inMethodLogger.Error("Error saving document record", "error", err)
		return tutorModel.IngestResult{}, err
	}

	metrics.CountDocumentIngested(string(req.ContentType), len(chunks))

	return tutorModel.IngestResult{
		DocumentID:  docID,
		Title:       req.Title,
		ChunksCount: len(chunks),
	}, nil
}

func (s *service) Ask(ctx context.Context, question tutorModel.Question) (tutorModel.Answer, error) {
	question = question.Norm()
	inMethodLogger := s.requestLogger(ctx).With("strategy", string(question.Strategy))

	start := time.Now()
	defer func() { metrics.CaptureQuestionMetrics(string(question.Strategy), time.Since(start)) }()

	askContext, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	composer := s.composerFor(question.Strategy)

	// Embedding
	queryVector, err := s.executeEmbeddingStep(askContext, inMethodLogger, question.Question)
	if err != nil {
		inMethodLogger.Error("EMBEDDING_FAILURE", "error", err)
		return answer.Insufficient(question.Difficulty), nil
	}

	// Cache Check, generative answers only
	if question.Strategy == tutorModel.StrategyGenerative {
		if cached, found := s.executeCacheCheckStep(askContext, inMethodLogger, queryVector); found {
			metrics.CountAnswerCacheHit()
			return cached, nil
		}
	}

	// Vector DB Search
	result, err := s.executeVectorSearchStep(askContext, inMethodLogger, queryVector, question.TopK)
	if err != nil {
		inMethodLogger.Error("VECTOR_DB_FAILURE", "error", err)
		return answer.Insufficient(question.Difficulty), nil
	}

	// Compose
	composed := s.executeComposeStep(askContext, question, result, composer)

	// Background Cache Save. The request context dies when the handler
	// returns, so the save runs on a detached context carrying its values.
	if question.Strategy == tutorModel.StrategyGenerative && composed.Answer != config.LLMFailurePlaceholder {
		saveContext := context.WithoutCancel(ctx)
		go func() {
			payload, err := json.Marshal(composed)
			if err != nil {
				return
			}
			if err := s.vectorDB.SaveToCache(saveContext, utils.GetNewUUID(), queryVector, string(payload)); err != nil {
				s.logger.Error("Failed to save to cache")
			}
		}()
	}

	return composed, nil
}

// Retrieve returns the top matching chunks for a query. Backend failures
// degrade to an empty result, never an error.
func (s *service) Retrieve(ctx context.Context, query string, topK int) (tutorModel.QueryResult, error) {
	inMethodLogger := s.requestLogger(ctx)

	if topK <= 0 {
		topK = config.DefaultTopK
	}

	queryVector, err := s.executeEmbeddingStep(ctx, inMethodLogger, query)
	if err != nil {
		inMethodLogger.Error("EMBEDDING_FAILURE", "error", err)
		return tutorModel.QueryResult{}, nil
	}

	result, err := s.executeVectorSearchStep(ctx, inMethodLogger, queryVector, topK)
	if err != nil {
		inMethodLogger.Error("VECTOR_DB_FAILURE", "error", err)
		return tutorModel.QueryResult{}, nil
	}
	return result, nil
}

func (s *service) ListDocuments(ctx context.Context) ([]tutorModel.Document, error) {
	return s.documents.ListDocuments(ctx, config.DocumentListLimit)
}

func chunkMetadata(req tutorModel.IngestRequest) map[string]string {
	metadata := map[string]string{
		"title":        req.Title,
		"content_type": string(req.ContentType),
	}
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	return metadata
}
