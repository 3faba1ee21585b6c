// @title           AI Tutor API
// @version         1.0
// @description     This API ingests study material and answers questions over it with RAG
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akulsh/TutorAPI/internal/config"
	"github.com/akulsh/TutorAPI/internal/data/store"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/internal/embedding/googleEmbedding"
	"github.com/akulsh/TutorAPI/internal/handlers"
	"github.com/akulsh/TutorAPI/internal/llm"
	"github.com/akulsh/TutorAPI/internal/llm/gemini"
	"github.com/akulsh/TutorAPI/internal/llm/openaiLLM"
	"github.com/akulsh/TutorAPI/internal/mcpserver"
	"github.com/akulsh/TutorAPI/internal/server"
	"github.com/akulsh/TutorAPI/internal/tutor"
	"github.com/akulsh/TutorAPI/internal/vectorDB/qdrantDB"
	"github.com/akulsh/TutorAPI/internal/youtube"
	"github.com/akulsh/TutorAPI/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//document metadata store, redis with an in-memory fallback
	var documentStore tutorModel.DocumentStore
	redisDocs := store.GetRedisDocumentStore(serviceContext)
	if redisDocs == nil {
		logger.Error("Redis store is offline, falling back to in-memory documents")
		documentStore = store.InitInMemoryDocumentStore()
	} else {
		documentStore = redisDocs
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")

	vectorDB := qdrantDB.GetQuadrantClient(serviceContext)
	embeddingService := googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, geminiKey)
	llmProvider := selectLLMProvider(serviceContext, logger, geminiKey)

	if vectorDB == nil || embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	tutorService := tutor.NewService(vectorDB, llmProvider, embeddingService, documentStore)

	handlers.InitTutorHandler(tutorService, youtube.NewClient())

	mcpServer := mcpserver.New(tutorService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr, mcpServer.HTTPHandler())

	<-stopExecution
	logger.Info("Server stopped")
}

func selectLLMProvider(ctx context.Context, logger *logger_i.Logger, geminiKey string) llm.Provider {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = config.DefaultLLMProvider
	}

	switch provider {
	case "openai":
		logger.Info("Using OpenAI provider", "model", config.OpenAIModelName)
		return openaiLLM.GetOpenAIClient(ctx, config.OpenAIModelName, os.Getenv("OPENAI_API_KEY"))
	default:
		logger.Info("Using Gemini provider", "model", config.GeminiModelName)
		return gemini.GetGeminiClient(ctx, config.GeminiModelName, geminiKey)
	}
}
