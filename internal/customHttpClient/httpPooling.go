package customHttpClient

import (
	"net/http"
	"time"

	"github.com/akulsh/TutorAPI/internal/config"
)

//TODO: make qdrant/llm/embedder reuse connections to avoid latency

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetPooledClient returns a client on the shared transport so outbound
// calls reuse connections.
func GetPooledClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: customTransport,
	}
}
