package youtube

import (
	"errors"
	"testing"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?feature=shared&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		got, err := ExtractVideoID(tt.url)
		if err != nil {
			t.Errorf("ExtractVideoID(%s) failed: %v", tt.url, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ExtractVideoID(%s) = %s; want %s", tt.url, got, tt.expected)
		}
	}
}

func TestExtractVideoID_Invalid(t *testing.T) {
	for _, url := range []string{"not-a-url", "", "https://example.com/watch?v=short"} {
		_, err := ExtractVideoID(url)
		if !errors.Is(err, tutorModel.ErrInvalidURL) {
			t.Errorf("ExtractVideoID(%q): expected ErrInvalidURL, got %v", url, err)
		}
	}
}
