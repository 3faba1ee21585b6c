package tutorModel

import (
	"context"
	"time"
)

type ContentType string
type Difficulty string
type Strategy string

const (
	ContentTypePDF     ContentType = "pdf"
	ContentTypeYouTube ContentType = "youtube"
	ContentTypeText    ContentType = "text"

	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"

	StrategyTemplate   Strategy = "template"
	StrategyGenerative Strategy = "generative"
)

// Chunk is one overlapping word window of a document's text, the unit of
// storage and retrieval.
type Chunk struct {
	DocumentID string            `json:"doc_id"`
	Index      int               `json:"chunk_index"`
	Text       string            `json:"text"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Document is the metadata record persisted once per successful ingestion.
type Document struct {
	Id          string      `json:"id"`
	Title       string      `json:"title"`
	ContentType ContentType `json:"content_type"`
	UploadTime  time.Time   `json:"upload_time"`
	ChunksCount int         `json:"chunks_count"`
}

// ScoredChunk is one retrieval hit, closest first in a QueryResult.
type ScoredChunk struct {
	Text     string            `json:"text"`
	Score    float32           `json:"score"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// QueryResult is ephemeral - it is never persisted. Sources is the
// deduplicated, order-preserving list of titles behind the hits.
type QueryResult struct {
	Chunks  []ScoredChunk `json:"chunks"`
	Sources []string      `json:"sources"`
}

type Answer struct {
	Answer      string     `json:"answer"`
	Explanation string     `json:"explanation"`
	Sources     []string   `json:"sources"`
	Confidence  float64    `json:"confidence"`
	Difficulty  Difficulty `json:"difficulty"`
}

type Flashcard struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	ChunkIndex int    `json:"chunk_index"`
}

type IngestRequest struct {
	Title       string
	ContentType ContentType
	Text        string
	Metadata    map[string]string
}

type IngestResult struct {
	DocumentID  string
	Title       string
	ChunksCount int
}

type Question struct {
	Question   string
	Difficulty Difficulty
	Strategy   Strategy
	TopK       int
}

// Norm applies the caller-facing defaults.
func (q Question) Norm() Question {
	if q.Difficulty == "" {
		q.Difficulty = DifficultyIntermediate
	}
	if q.Strategy == "" {
		q.Strategy = StrategyTemplate
	}
	if q.TopK <= 0 {
		q.TopK = 5
	}
	return q
}

type DocumentStore interface {
	SaveDocument(ctx context.Context, doc Document) error
	GetDocument(ctx context.Context, id string) (Document, bool)
	ListDocuments(ctx context.Context, limit int) ([]Document, error)
}
