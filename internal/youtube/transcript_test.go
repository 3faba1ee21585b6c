package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const listBody = `<?xml version="1.0" encoding="utf-8"?>
<transcript_list docid="1">
  <track id="0" name="" lang_code="de" lang_original="Deutsch"/>
  <track id="1" name="" lang_code="en" lang_original="English"/>
</transcript_list>`

const transcriptBody = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="2.5">never gonna give</text>
  <text start="2.5" dur="2.5">you up</text>
  <text start="5" dur="1"> </text>
</transcript>`

func stubServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewTestClient(server.URL, server.Client())
}

func TestTranscript_PrefersEnglish(t *testing.T) {
	var fetchedLang string
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "list" {
			w.Write([]byte(listBody))
			return
		}
		fetchedLang = r.URL.Query().Get("lang")
		w.Write([]byte(transcriptBody))
	})

	text, err := client.Transcript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if fetchedLang != "en" {
		t.Errorf("fetched lang = %s; want en", fetchedLang)
	}
	if text != "never gonna give you up" {
		t.Errorf("Transcript = %q", text)
	}
}

func TestTranscript_AnyLanguageFallback(t *testing.T) {
	onlyGerman := `<transcript_list><track lang_code="de"/></transcript_list>`
	var fetchedLang string
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "list" {
			w.Write([]byte(onlyGerman))
			return
		}
		fetchedLang = r.URL.Query().Get("lang")
		w.Write([]byte(transcriptBody))
	})

	if _, err := client.Transcript(context.Background(), "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if fetchedLang != "de" {
		t.Errorf("fetched lang = %s; want de fallback", fetchedLang)
	}
}

func TestTranscript_Disabled(t *testing.T) {
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript_list></transcript_list>`))
	})

	_, err := client.Transcript(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrTranscriptsDisabled) {
		t.Errorf("expected ErrTranscriptsDisabled, got %v", err)
	}
}

func TestTranscript_EmptyTrack(t *testing.T) {
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "list" {
			w.Write([]byte(`<transcript_list><track lang_code="en"/></transcript_list>`))
			return
		}
		w.Write([]byte(`<transcript></transcript>`))
	})

	_, err := client.Transcript(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("expected ErrNoTranscript, got %v", err)
	}
}

func TestTranscript_Unavailable(t *testing.T) {
	client := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Transcript(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrVideoUnavailable) {
		t.Errorf("expected ErrVideoUnavailable, got %v", err)
	}
}
