package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/akulsh/TutorAPI/internal/adapter"
	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/internal/youtube"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.ToErrorResponse(httpCode, message))
}

func validateContext(ctx context.Context) bool {
	if traceId, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		logRH.With("traceId:", traceId)
	}
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logRH.Error("Couldn't close the request body :", err)
	}
}

func writeIngestError(w http.ResponseWriter, err error) {
	if errors.Is(err, tutorModel.ErrEmptyContent) {
		WriteErrorResponse(w, http.StatusBadRequest, "No text found in document")
		return
	}
	logRH.Error("Ingestion failed", "error", err)
	WriteErrorResponse(w, http.StatusInternalServerError, "Error storing document")
}

// transcriptErrorMessage maps transcript failures to the caller-facing detail.
func transcriptErrorMessage(err error) string {
	switch {
	case errors.Is(err, youtube.ErrTranscriptsDisabled):
		return "Transcripts are disabled for this video"
	case errors.Is(err, youtube.ErrNoTranscript):
		return "No transcript found for this video"
	case errors.Is(err, youtube.ErrVideoUnavailable):
		return "Video is unavailable"
	default:
		return "Could not fetch video transcript"
	}
}

func getTargetDirectory() (string, string) {
	root, err := os.Getwd()
	if err != nil {
		return "", "Storage Error"
	}

	targetDir := filepath.Join(root, "temporary_data")
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", "Storage Error"
	}
	return targetDir, ""
}
