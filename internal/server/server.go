package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/akulsh/TutorAPI/internal/adapter/utils"
	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/middleware"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

func CreateServer(listenAddr string, mcpHandler http.Handler) {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter()

	r.Router.Get("/", middleware.GetHandler)
	r.Router.Post("/api/upload-pdf", middleware.UploadPDFHandler)
	r.Router.Post("/api/upload-youtube", middleware.UploadYouTubeHandler)
	r.Router.Post("/api/ask", middleware.AskHandler)
	r.Router.Get("/api/documents", middleware.ListDocumentsHandler)
	r.Router.Post("/api/generate-flashcards/{id}", middleware.FlashcardsHandler)
	r.Router.Post("/api/summarize/{id}", middleware.SummarizeHandler)

	// MCP speaks its own streamable protocol, mounted outside the middleware chain
	r.Router.Handle("/mcp", mcpHandler)
	r.Router.Handle("/mcp/*", mcpHandler)

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error :", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	println("\nServer is shutting down", state)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully: %s", err)
		}

		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully is shutting down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
