package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var documentsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "documents_ingested_total",
	Help: "Documents successfully ingested, labelled by content type",
}, []string{"content_type"})

var chunksIngested = promauto.NewCounter(prometheus.CounterOpts{
	Name: "chunks_ingested_total",
	Help: "Chunks embedded and upserted across all documents",
})

var answerCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "answer_cache_hits_total",
	Help: "Questions answered straight from the semantic answer cache",
})

// HttpStatusRecorder remembers the status a handler writes so the request
// counter can label it.
type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CountDocumentIngested(contentType string, chunks int) {
	documentsIngested.WithLabelValues(contentType).Inc()
	chunksIngested.Add(float64(chunks))
}

func CountAnswerCacheHit() {
	answerCacheHits.Inc()
}

var questionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "question_duration_seconds",
	Help:    "Total time spent answering a question.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"strategy"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureQuestionMetrics(strategy string, timeElapsed time.Duration) {
	questionDuration.WithLabelValues(strategy).Observe(timeElapsed.Seconds())
}
