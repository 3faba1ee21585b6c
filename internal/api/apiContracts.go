package api

import "time"

type AnswerResponse struct {
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Sources     []string `json:"sources"`
	Confidence  float64  `json:"confidence" example:"0.8"`
	Difficulty  string   `json:"difficulty" example:"intermediate"`
}

type UploadResponse struct {
	Message         string `json:"message" example:"PDF uploaded and processed successfully"`
	DocumentID      string `json:"document_id" example:"9f8c1a22-4a6e-4d2b-9f0e-1c2d3e4f5a6b"`
	Title           string `json:"title" example:"lecture-notes.pdf"`
	ChunksProcessed int    `json:"chunks_processed" example:"12"`
	VideoID         string `json:"video_id,omitempty" example:"dQw4w9WgXcQ"`
}

type DocumentInfo struct {
	Id          string    `json:"id"`
	Title       string    `json:"title" example:"lecture-notes.pdf"`
	ContentType string    `json:"content_type" example:"pdf"`
	UploadTime  time.Time `json:"upload_time"`
	ChunksCount int       `json:"chunks_count" example:"12"`
}

type DocumentsResponse struct {
	Documents []DocumentInfo `json:"documents"`
}

type FlashcardInfo struct {
	Question   string `json:"question" example:"What is the main concept discussed in section 1?"`
	Answer     string `json:"answer"`
	ChunkIndex int    `json:"chunk_index" example:"0"`
}

type FlashcardsResponse struct {
	Flashcards []FlashcardInfo `json:"flashcards"`
}

type SummaryResponse struct {
	DocumentID string `json:"document_id"`
	Summary    string `json:"summary"`
}

type ErrorResponse struct {
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Document not found"`
}

// requests---------------------

type QuestionRequest struct {
	Question   string `json:"question" validate:"required" example:"What is entropy?"`
	Difficulty string `json:"difficulty,omitempty" example:"intermediate"`
	Strategy   string `json:"strategy,omitempty" example:"template"`
	TopK       int    `json:"top_k,omitempty" example:"5"`
}

type YouTubeRequest struct {
	YoutubeURL string `json:"youtube_url" validate:"required" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}
