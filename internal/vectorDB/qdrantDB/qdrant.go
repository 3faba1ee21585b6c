package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var quadrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)
var collectionName = config.KnowledgeCollectionName

type ClientHolder struct {
	QObj *qdrant.Client
}

func GetQuadrantClient(ctx context.Context) *ClientHolder {

	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient()
		if res != nil {
			quadrantInstance = res
			initCacheCollection(ctx, quadrantInstance)
			go closeQdrant(ctx, quadrantInstance)
		}
	})

	if quadrantInstance == nil {
		return nil
	}
	return &ClientHolder{
		QObj: quadrantInstance,
	}
}

func newClient() *qdrant.Client {

	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))

	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
	}

	err = createCollection(context.Background(), client, collectionName)
	if err != nil {
		logger.Error("could not create collection: ", "collectionName", collectionName, "error:", err)
		return nil
	}

	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	err := qi.Close()
	if err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
	logger.Info("Closed Qdrant")
}

func (db *ClientHolder) Query(ctx context.Context, vectorFloat []float32, k int) ([]tutorModel.ScoredChunk, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(vectorFloat...),
		Limit:          qdrant.PtrOf(uint64(k)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		loggr.Error("Error querying Qdrant: ", "error:", err)
		return nil, err
	}

	hits := make([]tutorModel.ScoredChunk, 0, len(result))
	for _, hit := range result {
		hits = append(hits, tutorModel.ScoredChunk{
			Text:     hit.Payload["content"].GetStringValue(),
			Score:    hit.Score,
			Metadata: payloadMetadata(hit.Payload),
		})
	}

	loggr.Debug("Query done", "matches", len(hits))
	return hits, nil
}

func (db *ClientHolder) FetchByDocument(ctx context.Context, docID string) ([]tutorModel.Chunk, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "doc Id", docID)

	result, err := db.QObj.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: collectionName,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("doc_id", docID),
			},
		},
		Limit:       qdrant.PtrOf(uint32(1024)),
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		loggr.Error("Error scrolling Qdrant: ", "error:", err)
		return nil, err
	}

	chunks := make([]tutorModel.Chunk, 0, len(result))
	for _, point := range result {
		chunks = append(chunks, tutorModel.Chunk{
			DocumentID: docID,
			Index:      int(point.Payload["chunk_index"].GetIntegerValue()),
			Text:       point.Payload["content"].GetStringValue(),
			Metadata:   payloadMetadata(point.Payload),
		})
	}

	// scroll order is by point id, not ingestion order
	sort.Slice(chunks, func(i, j int) bool { return chunks[i].Index < chunks[j].Index })

	loggr.Debug("Fetched document chunks", "count", len(chunks))
	return chunks, nil
}

func (db *ClientHolder) EnsureCollection(ctx context.Context, collectionName string) error {
	return createCollection(ctx, db.QObj, collectionName)
}

func (db *ClientHolder) UpsertChunks(ctx context.Context, collectionName string, chunks []tutorModel.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	qdrantPoints := make([]*qdrant.PointStruct, len(chunks))

	for i, chunk := range chunks {
		payload := map[string]any{
			"content":     chunk.Text,
			"doc_id":      chunk.DocumentID,
			"chunk_index": chunk.Index,
		}
		for key, value := range chunk.Metadata {
			payload[key] = value
		}

		qdrantPoints[i] = &qdrant.PointStruct{
			// Deterministic UUID derived from "{doc_id}_chunk_{i}" so
			// re-ingesting the same document id overwrites its points
			Id:      qdrant.NewID(derivedChunkID(chunk.DocumentID, chunk.Index)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(payload),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         qdrantPoints,
		Wait:           qdrant.PtrOf(true),
	})

	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}

	return nil
}

func payloadMetadata(payload map[string]*qdrant.Value) map[string]string {
	metadata := make(map[string]string, len(payload))
	for key, value := range payload {
		if key == "content" {
			continue
		}
		switch value.GetKind().(type) {
		case *qdrant.Value_IntegerValue:
			metadata[key] = strconv.FormatInt(value.GetIntegerValue(), 10)
		default:
			metadata[key] = value.GetStringValue()
		}
	}
	return metadata
}

func createCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {

		return nil
	}

	err = client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	return err
}
