package chunker

import (
	"fmt"
	"strings"
)

// Split cuts text into overlapping windows of chunkSize words. The window
// start advances by chunkSize-overlap words, so consecutive full windows
// share exactly overlap words. Empty input yields no chunks and no error.
func Split(text string, chunkSize int, overlap int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		// stride would be non-positive and the window would never advance
		return nil, fmt.Errorf("overlap must be in [0, %d), got %d", chunkSize, overlap)
	}

	words := strings.Fields(text)
	stride := chunkSize - overlap

	var chunks []string
	for i := 0; i < len(words); i += stride {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.TrimSpace(strings.Join(words[i:end], " "))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	return chunks, nil
}
