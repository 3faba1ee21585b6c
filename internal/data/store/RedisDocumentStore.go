package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/data/redisStore"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

const documentIndexKey = "documents:by_upload_time"

// RedisDocumentStore keeps one JSON record per document plus a sorted-set
// index scored by upload time so listings come back newest first.
type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDocumentStore(ctx context.Context) *RedisDocumentStore {
	underlying := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if underlying == nil {
		return nil
	}
	return &RedisDocumentStore{
		store:  underlying,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func documentKey(id string) string {
	return fmt.Sprintf("doc:%s", id)
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, doc tutorModel.Document) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "document Id", doc.Id)
	log.Debug("saving document")
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, documentKey(doc.Id), data, 0); err != nil {
		return err
	}
	if err := s.store.ZAdd(ctx, documentIndexKey, float64(doc.UploadTime.Unix()), doc.Id); err != nil {
		return err
	}
	log.Debug("Saved document to Redis")
	return nil
}

func (s *RedisDocumentStore) GetDocument(ctx context.Context, id string) (tutorModel.Document, bool) {
	var doc tutorModel.Document
	val, err := s.store.Get(ctx, documentKey(id))
	if s.store.IsNil(err) {
		return doc, false
	} else if err != nil {
		return doc, false
	}

	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return doc, false
	}
	return doc, true
}

func (s *RedisDocumentStore) ListDocuments(ctx context.Context, limit int) ([]tutorModel.Document, error) {
	ids, err := s.store.ZRevRange(ctx, documentIndexKey, 0, int64(limit-1))
	if err != nil {
		return nil, err
	}

	docs := make([]tutorModel.Document, 0, len(ids))
	for _, id := range ids {
		// a record evicted out from under its index entry is skipped
		if doc, found := s.GetDocument(ctx, id); found {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func TestDocumentStore(store *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
