// Package extract wraps the document text extraction libraries. The rest of
// the pipeline only ever sees plain text.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

var logger = logger_i.NewLogger("Extract")

var whitespaceRuns = regexp.MustCompile(`\s+`)

// CleanText collapses whitespace runs into single spaces.
func CleanText(text string) string {
	return whitespaceRuns.ReplaceAllString(strings.TrimSpace(text), " ")
}

// ContentTypeFor maps an uploaded filename to a document content type.
// Anything but pdf/txt/docx/rtf is rejected as invalid input.
func ContentTypeFor(filename string) (tutorModel.ContentType, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return tutorModel.ContentTypePDF, nil
	case ".txt", ".docx", ".rtf":
		return tutorModel.ContentTypeText, nil
	default:
		return "", fmt.Errorf("unsupported file type %q: only PDF and text documents are allowed", filepath.Ext(filename))
	}
}

// Text extracts plain text from the file at path according to contentType.
func Text(path string, contentType tutorModel.ContentType) (string, error) {
	switch contentType {
	case tutorModel.ContentTypePDF:
		return extractPDF(path)
	case tutorModel.ContentTypeText:
		return extractPlain(path)
	default:
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
}

func extractPDF(path string) (string, error) {
	logger.Debug("extractPDF", "attempting extraction", path)
	f, err := pdf.Open(path)
	if err != nil {
		logger.Error("failed opening of pdf file")
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []string
	numPages := f.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// keep going with the remaining pages
			logger.Error("Error parsing page content", "page", i, "Error", err)
			continue
		}
		pages = append(pages, content)
	}
	return CleanText(strings.Join(pages, " ")), nil
}

// extractPlain reads a .txt, .docx or .rtf file through lu4p/cat.
func extractPlain(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Error extracting content from doc")
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return CleanText(text), nil
}

// protectExtract guards against pathological PDFs that hang the parser.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		logger.Error("pageExtract", "timeout", true)
		return "", errors.New("timeout")
	}
}
