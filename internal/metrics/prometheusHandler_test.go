package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHttpStatusRecorderCapturesStatus(t *testing.T) {
	base := httptest.NewRecorder()
	rec := &HttpStatusRecorder{ResponseWriter: base, Status: 200}

	// handlers only ever see the plain interface
	var w http.ResponseWriter = rec
	w.WriteHeader(http.StatusNotFound)

	if rec.Status != http.StatusNotFound {
		t.Errorf("recorded status = %d; want %d", rec.Status, http.StatusNotFound)
	}
	if base.Code != http.StatusNotFound {
		t.Errorf("forwarded status = %d; want %d", base.Code, http.StatusNotFound)
	}
}
