package vectorDB

import (
	"context"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

type DataProcessor interface {
	// Query returns up to k chunks ranked closest first.
	Query(ctx context.Context, vector []float32, k int) ([]tutorModel.ScoredChunk, error)
	// FetchByDocument returns every stored chunk of one document in chunk
	// index order.
	FetchByDocument(ctx context.Context, docID string) ([]tutorModel.Chunk, error)

	// EnsureCollection and UpsertChunks serve the ingestion path.
	EnsureCollection(ctx context.Context, collectionName string) error
	UpsertChunks(ctx context.Context, collectionName string, chunks []tutorModel.Chunk, vectors [][]float32) error

	// answer cache, generative strategy only
	GetCachedAnswer(ctx context.Context, queryVector []float32) (string, bool, error)
	SaveToCache(ctx context.Context, id string, vector []float32, answer string) error
}
