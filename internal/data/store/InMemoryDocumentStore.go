package store

import (
	"context"
	"sort"
	"sync"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem DocumentStore")

// InMemoryDocumentStore is the fallback when redis is unreachable at boot.
type InMemoryDocumentStore struct {
	docMutex *sync.RWMutex
	docMap   map[string]tutorModel.Document
}

func InitInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		docMutex: new(sync.RWMutex),
		docMap:   make(map[string]tutorModel.Document),
	}
}

func (store *InMemoryDocumentStore) SaveDocument(ctx context.Context, doc tutorModel.Document) error {
	store.docMutex.Lock()
	defer store.docMutex.Unlock()
	store.docMap[doc.Id] = doc
	inMemLogger.Info(doc.Id, " : Saved document to store")
	return nil
}

func (store *InMemoryDocumentStore) GetDocument(ctx context.Context, id string) (tutorModel.Document, bool) {
	store.docMutex.RLock()
	defer store.docMutex.RUnlock()
	result, found := store.docMap[id]
	return result, found
}

func (store *InMemoryDocumentStore) ListDocuments(ctx context.Context, limit int) ([]tutorModel.Document, error) {
	store.docMutex.RLock()
	defer store.docMutex.RUnlock()

	docs := make([]tutorModel.Document, 0, len(store.docMap))
	for _, doc := range store.docMap {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UploadTime.After(docs[j].UploadTime)
	})
	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}
