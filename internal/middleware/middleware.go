package middleware

import (
	"net/http"
	"strconv"

	"github.com/akulsh/TutorAPI/internal/handlers"
	"github.com/akulsh/TutorAPI/internal/metrics"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var GetHandler = Wrap(handlers.GetHandler)

var UploadPDFHandler = Wrap(handlers.UploadPDFHandler)
var UploadYouTubeHandler = Wrap(handlers.UploadYouTubeHandler)
var AskHandler = Wrap(handlers.AskHandler)
var ListDocumentsHandler = Wrap(handlers.ListDocumentsHandler)
var FlashcardsHandler = Wrap(handlers.FlashcardsHandler)
var SummarizeHandler = Wrap(handlers.SummarizeHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
		} else {
			next(rec, re.req)
		}

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")

	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re //stop here, the rate limiter needs a request
	}
	return rateLimiter(re)
}
