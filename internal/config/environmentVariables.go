package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//chunking - word windows over whitespace-split text
	ChunkSize    = 512
	ChunkOverlap = 50

	//retrieval
	DefaultTopK = 5

	//answer caching (generative strategy only)
	CacheSimilarityCutoff = 0.97

	//flashcards & summaries
	MaxFlashcards        = 5
	FlashcardAnswerLimit = 200 //characters before the "..." marker
	SummaryChunkLimit    = 20

	//TODO:this will differ based on the provider
	EmbeddingOutputDimensionality int32 = 1536
	KnowledgeCollectionName             = "tutor-knowledge"
	AnswerCacheCollectionName           = "answer-cache"

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//uploads
	MaxUploadSize = 32 << 20 //32mb

	//vectorDB
	QdrantHost             = "localhost"
	QdrantPort             = 6333 //http
	QdrantGrpcPort         = 6334
	QdrantUseTLS           = false //set for https
	QdrantPoolSize         = 1     //2-5 is preferred for prod according to documentation
	QdrantKeepAliveTimeout = 30 * time.Second

	//llm
	GeminiModelName       = "gemini-2.5-flash-lite-preview-09-2025"
	OpenAIModelName       = "gpt-4o-mini"
	DefaultLLMProvider    = "gemini" //overridden by LLM_PROVIDER
	LLMFailurePlaceholder = "LLM call failed."

	//embeddings
	GoogleEmbeddingModel = "gemini-embedding-001"

	ModelContext = "You are a patient tutor. Answer using only the supplied study material. If you don't know the answer, say you dont know"

	//answer strategies
	StrategyTemplate   = "template"
	StrategyGenerative = "generative"
	DefaultStrategy    = StrategyTemplate

	//youtube transcripts
	TimedTextBaseURL  = "https://video.google.com/timedtext"
	TranscriptTimeout = 15 * time.Second

	//shared http pooling for transcript calls
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword = ""

	//redis has 16 DB we can use
	RedisDocumentStore = 0

	//documents listing cap, newest first
	DocumentListLimit = 100
)

// TranscriptLanguages is the priority order before falling back to any
// listed language.
var TranscriptLanguages = []string{"en", "en-US", "en-GB"}
