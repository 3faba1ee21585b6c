package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/akulsh/TutorAPI/internal/adapter"
	"github.com/akulsh/TutorAPI/internal/adapter/utils"
	"github.com/akulsh/TutorAPI/internal/api"
	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/internal/extract"
	"github.com/akulsh/TutorAPI/internal/tutor"
	"github.com/akulsh/TutorAPI/internal/youtube"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

var logRH *logger_i.Logger
var tutorService tutor.Service
var transcripts *youtube.Client

// InitTutorHandler wires the handlers to their service once at startup.
func InitTutorHandler(service tutor.Service, transcriptClient *youtube.Client) {
	logRH = logger_i.NewLogger("Request Handler ")
	tutorService = service
	transcripts = transcriptClient
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// UploadPDFHandler godoc
// @Summary      Upload a document
// @Description  Receives a PDF or text file via multipart/form-data, extracts its text and ingests it into the knowledge base.
// @Tags         Ingestion
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData  file    true   "The PDF, TXT, DOCX or RTF file to upload"
// @Param        title  formData  string  false  "Display title, defaults to the filename"
// @Success      200  {object}  api.UploadResponse "Document processed"
// @Failure      400  {object}  api.ErrorResponse "Unsupported file type or no extractable text"
// @Failure      500  {object}  api.ErrorResponse "Extraction or storage failure"
// @Router       /api/upload-pdf [post]
func UploadPDFHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	contentType, err := extract.ContentTypeFor(fileMetadata.Filename)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tempFilePath, errString := saveToTempFile(fileReader, fileMetadata.Filename)
	if errString != "" {
		WriteErrorResponse(w, http.StatusInternalServerError, errString)
		return
	}
	defer func() {
		if err := os.Remove(tempFilePath); err != nil {
			logRH.Error("Error removing file", "error", err)
		}
	}()

	text, err := extract.Text(tempFilePath, contentType)
	if err != nil {
		logRH.Error("Error extracting document content", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error extracting document content")
		return
	}

	title := r.FormValue("title")
	if title == "" {
		title = fileMetadata.Filename
	}

	result, err := tutorService.Ingest(r.Context(), tutorModel.IngestRequest{
		Title:       title,
		ContentType: contentType,
		Text:        text,
	})
	if err != nil {
		writeIngestError(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse("PDF uploaded and processed successfully", result, ""))
}

// UploadYouTubeHandler godoc
// @Summary      Ingest a YouTube transcript
// @Description  Fetches the video's caption track and ingests it into the knowledge base.
// @Tags         Ingestion
// @Accept       json
// @Produce      json
// @Param        request  body      api.YouTubeRequest  true  "YouTube video URL"
// @Success      200  {object}  api.UploadResponse "Transcript processed"
// @Failure      400  {object}  api.ErrorResponse "Bad URL or no usable transcript"
// @Router       /api/upload-youtube [post]
func UploadYouTubeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.YouTubeRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.YoutubeURL == "" {
		logRH.Warn("Bad YouTube Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	videoID, err := youtube.ExtractVideoID(requestData.YoutubeURL)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid YouTube URL")
		return
	}

	transcript, err := transcripts.Transcript(r.Context(), videoID)
	if err != nil {
		logRH.Warn("Transcript fetch failed", "videoId", videoID, "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, transcriptErrorMessage(err))
		return
	}

	title := fmt.Sprintf("YouTube Video: %s", videoID)
	result, err := tutorService.Ingest(r.Context(), tutorModel.IngestRequest{
		Title:       title,
		ContentType: tutorModel.ContentTypeYouTube,
		Text:        transcript,
		Metadata: map[string]string{
			"video_id": videoID,
			"url":      requestData.YoutubeURL,
		},
	})
	if err != nil {
		writeIngestError(w, err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse("YouTube transcript processed successfully", result, videoID))
}

// AskHandler godoc
// @Summary      Ask a question
// @Description  Answers a question over the ingested material, tuned to the requested difficulty and composition strategy.
// @Tags         Tutoring
// @Accept       json
// @Produce      json
// @Param        request  body      api.QuestionRequest  true  "Question with optional difficulty, strategy and top_k"
// @Success      200  {object}  api.AnswerResponse "The composed answer"
// @Failure      400  {object}  api.ErrorResponse "Missing question"
// @Router       /api/ask [post]
func AskHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.QuestionRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.Question == "" {
		logRH.Warn("Bad Question Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	answer, err := tutorService.Ask(r.Context(), tutorModel.Question{
		Question:   requestData.Question,
		Difficulty: tutorModel.Difficulty(requestData.Difficulty),
		Strategy:   tutorModel.Strategy(requestData.Strategy),
		TopK:       requestData.TopK,
	})
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, "Error generating answer")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToAnswerResponse(answer))
}

// ListDocumentsHandler godoc
// @Summary      List uploaded documents
// @Description  Returns the most recently uploaded documents, newest first.
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  api.DocumentsResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/documents [get]
func ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	docs, err := tutorService.ListDocuments(r.Context())
	if err != nil {
		logRH.Error("Error retrieving documents", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error retrieving documents")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentsResponse(docs))
}

// FlashcardsHandler godoc
// @Summary      Generate flashcards for a document
// @Description  Builds study flashcards from the document's stored chunks. Pass strategy=generative to have the LLM write the cards.
// @Tags         Tutoring
// @Produce      json
// @Param        id        path   string  true   "Document ID"
// @Param        strategy  query  string  false  "template (default) or generative"
// @Success      200  {object}  api.FlashcardsResponse
// @Failure      404  {object}  api.ErrorResponse "Document not found"
// @Router       /api/generate-flashcards/{id} [post]
func FlashcardsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	documentID := utils.GetChiURLParam(r, "id")

	var cards []tutorModel.Flashcard
	var err error
	if r.URL.Query().Get("strategy") == string(tutorModel.StrategyGenerative) {
		cards, err = tutorService.GenerateFlashcards(r.Context(), documentID)
	} else {
		cards, err = tutorService.Flashcards(r.Context(), documentID)
	}
	if err != nil {
		if errors.Is(err, tutorModel.ErrNotFound) {
			WriteErrorResponse(w, http.StatusNotFound, "Document not found")
			return
		}
		logRH.Error("Error generating flashcards", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error generating flashcards")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToFlashcardsResponse(cards))
}

// SummarizeHandler godoc
// @Summary      Summarize a document
// @Description  Produces a student-facing summary of the document's opening chunks.
// @Tags         Tutoring
// @Produce      json
// @Param        id  path  string  true  "Document ID"
// @Success      200  {object}  api.SummaryResponse
// @Failure      404  {object}  api.ErrorResponse "Document not found"
// @Router       /api/summarize/{id} [post]
func SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	documentID := utils.GetChiURLParam(r, "id")

	summary, err := tutorService.Summarize(r.Context(), documentID)
	if err != nil {
		if errors.Is(err, tutorModel.ErrNotFound) {
			WriteErrorResponse(w, http.StatusNotFound, "Document not found")
			return
		}
		logRH.Error("Error summarizing document", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error summarizing document")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.SummaryResponse{DocumentID: documentID, Summary: summary})
}

func saveToTempFile(fileReader io.Reader, originalName string) (string, string) {
	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logRH.Error("Couldn't get target directory :", "err", errString)
		return "", errString
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(originalName))
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		return "", "Storage error"
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		return "", "Write error"
	}
	return tempFilePath, ""
}
