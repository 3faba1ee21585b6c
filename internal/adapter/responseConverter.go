package adapter

import (
	"github.com/akulsh/TutorAPI/internal/api"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

func ToAnswerResponse(answer tutorModel.Answer) api.AnswerResponse {
	sources := answer.Sources
	if sources == nil {
		sources = []string{}
	}
	return api.AnswerResponse{
		Answer:      answer.Answer,
		Explanation: answer.Explanation,
		Sources:     sources,
		Confidence:  answer.Confidence,
		Difficulty:  string(answer.Difficulty),
	}
}

func ToUploadResponse(message string, result tutorModel.IngestResult, videoID string) api.UploadResponse {
	return api.UploadResponse{
		Message:         message,
		DocumentID:      result.DocumentID,
		Title:           result.Title,
		ChunksProcessed: result.ChunksCount,
		VideoID:         videoID,
	}
}

func ToDocumentsResponse(docs []tutorModel.Document) api.DocumentsResponse {
	infos := make([]api.DocumentInfo, 0, len(docs))
	for _, doc := range docs {
		infos = append(infos, api.DocumentInfo{
			Id:          doc.Id,
			Title:       doc.Title,
			ContentType: string(doc.ContentType),
			UploadTime:  doc.UploadTime,
			ChunksCount: doc.ChunksCount,
		})
	}
	return api.DocumentsResponse{Documents: infos}
}

func ToFlashcardsResponse(cards []tutorModel.Flashcard) api.FlashcardsResponse {
	infos := make([]api.FlashcardInfo, 0, len(cards))
	for _, card := range cards {
		infos = append(infos, api.FlashcardInfo{
			Question:   card.Question,
			Answer:     card.Answer,
			ChunkIndex: card.ChunkIndex,
		})
	}
	return api.FlashcardsResponse{Flashcards: infos}
}

func ToErrorResponse(code int, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Code:    code,
		Message: message,
	}
}
