package chunker

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit_Windows(t *testing.T) {
	got, err := Split("a b c d e f g h", 4, 2)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	want := []string{"a b c d", "c d e f", "e f g h", "g h"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v; want %v", got, want)
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		got, err := Split(text, 4, 1)
		if err != nil {
			t.Fatalf("Split(%q) failed: %v", text, err)
		}
		if len(got) != 0 {
			t.Errorf("Split(%q) = %v; want no chunks", text, got)
		}
	}
}

func TestSplit_ChunkCount(t *testing.T) {
	tests := []struct {
		words     int
		chunkSize int
		overlap   int
	}{
		{100, 10, 0},
		{100, 10, 3},
		{7, 4, 2},
		{512, 512, 50},
		{1, 512, 50},
	}

	for _, tt := range tests {
		words := make([]string, tt.words)
		for i := range words {
			words[i] = "w"
		}
		got, err := Split(strings.Join(words, " "), tt.chunkSize, tt.overlap)
		if err != nil {
			t.Fatalf("Split failed: %v", err)
		}

		stride := tt.chunkSize - tt.overlap
		want := (tt.words + stride - 1) / stride
		if len(got) != want {
			t.Errorf("words=%d size=%d overlap=%d: got %d chunks, want %d",
				tt.words, tt.chunkSize, tt.overlap, len(got), want)
		}

		for i, c := range got {
			if n := len(strings.Fields(c)); n > tt.chunkSize {
				t.Errorf("chunk %d has %d words, exceeds chunk size %d", i, n, tt.chunkSize)
			}
		}
	}
}

func TestSplit_OverlapSharedWords(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	chunks, err := Split(strings.Join(words, " "), 5, 2)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	// both full windows: last 2 words of chunk 0 open chunk 1
	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	tail := strings.Join(first[len(first)-2:], " ")
	head := strings.Join(second[:2], " ")
	if tail != head {
		t.Errorf("expected %q shared between windows, got %q", tail, head)
	}
}

func TestSplit_BadConfig(t *testing.T) {
	if _, err := Split("some text", 4, 4); err == nil {
		t.Error("expected error when overlap == chunk size")
	}
	if _, err := Split("some text", 4, 9); err == nil {
		t.Error("expected error when overlap > chunk size")
	}
	if _, err := Split("some text", 0, 0); err == nil {
		t.Error("expected error for zero chunk size")
	}
	if _, err := Split("some text", 4, -1); err == nil {
		t.Error("expected error for negative overlap")
	}
}
