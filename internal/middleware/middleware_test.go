package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akulsh/TutorAPI/internal/api"
)

func TestWrap_RateLimitRejectionWritesSingleBody(t *testing.T) {
	wrapped := Wrap(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var rejected *httptest.ResponseRecorder
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ask", nil)
		req.RemoteAddr = "192.0.2.77:34567"
		wrapped(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			rejected = rec
			break
		}
	}
	if rejected == nil {
		t.Fatal("limiter never rejected a request")
	}

	decoder := json.NewDecoder(rejected.Body)
	var body api.ErrorResponse
	if err := decoder.Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Code != http.StatusTooManyRequests {
		t.Errorf("body code = %d; want %d", body.Code, http.StatusTooManyRequests)
	}
	if decoder.More() {
		t.Error("error body was written more than once")
	}
}
