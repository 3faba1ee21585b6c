package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		expected tutorModel.ContentType
		wantErr  bool
	}{
		{"notes.pdf", tutorModel.ContentTypePDF, false},
		{"NOTES.PDF", tutorModel.ContentTypePDF, false},
		{"plain.txt", tutorModel.ContentTypeText, false},
		{"essay.docx", tutorModel.ContentTypeText, false},
		{"old.rtf", tutorModel.ContentTypeText, false},
		{"image.png", "", true},
		{"noextension", "", true},
	}

	for _, tt := range tests {
		got, err := ContentTypeFor(tt.filename)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ContentTypeFor(%s): expected error", tt.filename)
			}
			continue
		}
		if err != nil {
			t.Errorf("ContentTypeFor(%s) failed: %v", tt.filename, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ContentTypeFor(%s) = %v; want %v", tt.filename, got, tt.expected)
		}
	}
}

func TestCleanText(t *testing.T) {
	got := CleanText("  line one\n\nline\ttwo   end  ")
	want := "line one line two end"
	if got != want {
		t.Errorf("CleanText = %q; want %q", got, want)
	}
}

func TestText_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("some   study\nmaterial"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := Text(path, tutorModel.ContentTypeText)
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if text != "some study material" {
		t.Errorf("Text = %q; want cleaned content", text)
	}
}

func TestText_UnsupportedType(t *testing.T) {
	if _, err := Text("whatever", tutorModel.ContentTypeYouTube); err == nil {
		t.Error("expected error for unsupported content type")
	}
}
