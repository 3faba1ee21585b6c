package tutor_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

// MockVectorDB implements vectorDB.DataProcessor
type MockVectorDB struct {
	// Control fields to simulate different behaviors
	OnQuery            func(ctx context.Context, vector []float32, k int) ([]tutorModel.ScoredChunk, error)
	OnFetchByDocument  func(ctx context.Context, docID string) ([]tutorModel.Chunk, error)
	OnEnsureCollection func(ctx context.Context, name string) error
	OnUpsertChunks     func(ctx context.Context, name string, chunks []tutorModel.Chunk, vectors [][]float32) error
	OnGetCachedAnswer  func(ctx context.Context, queryVector []float32) (string, bool, error)
	OnSaveToCache      func(ctx context.Context, id string, vector []float32, answer string) error
}

func (m *MockVectorDB) Query(ctx context.Context, v []float32, k int) ([]tutorModel.ScoredChunk, error) {
	if m.OnQuery != nil {
		return m.OnQuery(ctx, v, k)
	}
	return []tutorModel.ScoredChunk{{Text: "default context", Score: 0.9}}, nil
}

func (m *MockVectorDB) FetchByDocument(ctx context.Context, docID string) ([]tutorModel.Chunk, error) {
	if m.OnFetchByDocument != nil {
		return m.OnFetchByDocument(ctx, docID)
	}
	return nil, nil
}

func (m *MockVectorDB) EnsureCollection(ctx context.Context, name string) error {
	if m.OnEnsureCollection != nil {
		return m.OnEnsureCollection(ctx, name)
	}
	return nil
}

func (m *MockVectorDB) UpsertChunks(ctx context.Context, name string, chunks []tutorModel.Chunk, vectors [][]float32) error {
	if m.OnUpsertChunks != nil {
		return m.OnUpsertChunks(ctx, name, chunks, vectors)
	}
	return nil
}

func (m *MockVectorDB) GetCachedAnswer(ctx context.Context, v []float32) (string, bool, error) {
	if m.OnGetCachedAnswer != nil {
		return m.OnGetCachedAnswer(ctx, v)
	}
	return "", false, nil
}

func (m *MockVectorDB) SaveToCache(ctx context.Context, id string, v []float32, a string) error {
	if m.OnSaveToCache != nil {
		return m.OnSaveToCache(ctx, id, v, a)
	}
	return nil
}

type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, text string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1}, nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks, isHuge)
	}
	// Return dummy vectors matching chunk count
	return make([][]float32, len(chunks)), nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, prompt string) (string, error)
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt)
	}
	return "mocked llm response", nil
}

// MockDocumentStore implements tutorModel.DocumentStore with an in-memory map
// plus optional control hooks.
type MockDocumentStore struct {
	OnSaveDocument func(ctx context.Context, doc tutorModel.Document) error

	mu   sync.Mutex
	docs []tutorModel.Document
}

func (m *MockDocumentStore) SaveDocument(ctx context.Context, doc tutorModel.Document) error {
	if m.OnSaveDocument != nil {
		if err := m.OnSaveDocument(ctx, doc); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc)
	return nil
}

func (m *MockDocumentStore) GetDocument(ctx context.Context, id string) (tutorModel.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if doc.Id == id {
			return doc, true
		}
	}
	return tutorModel.Document{}, false
}

func (m *MockDocumentStore) ListDocuments(ctx context.Context, limit int) ([]tutorModel.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.docs) > limit {
		return m.docs[:limit], nil
	}
	return m.docs, nil
}

func (m *MockDocumentStore) Saved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

// chunksOfWords fabricates n stored chunks for flashcard and summary tests.
func chunksOfWords(docID string, n int, text string) []tutorModel.Chunk {
	chunks := make([]tutorModel.Chunk, 0, n)
	for i := 0; i < n; i++ {
		chunks = append(chunks, tutorModel.Chunk{
			DocumentID: docID,
			Index:      i,
			Text:       fmt.Sprintf("%s %d", text, i),
		})
	}
	return chunks
}
