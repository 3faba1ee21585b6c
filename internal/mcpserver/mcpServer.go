// Package mcpserver exposes the tutor over the Model Context Protocol so
// agent clients can ask questions and search the knowledge base directly.
package mcpserver

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
	"github.com/akulsh/TutorAPI/internal/tutor"
)

const version = "1.0.0"

type Server struct {
	service tutor.Service
	server  *mcp.Server
}

func New(service tutor.Service) *Server {
	impl := &mcp.Implementation{
		Name:    "tutor-api",
		Version: version,
	}

	s := &Server{
		service: service,
		server:  mcp.NewServer(impl, nil),
	}
	s.registerTools()
	return s
}

// HTTPHandler mounts the server on the API's router, one MCP session per
// streamable HTTP connection.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

type AskInput struct {
	Question   string `json:"question" jsonschema:"the question to answer from the ingested study material"`
	Difficulty string `json:"difficulty,omitempty" jsonschema:"beginner, intermediate (default) or advanced"`
	Strategy   string `json:"strategy,omitempty" jsonschema:"template (default) or generative"`
	TopK       int    `json:"top_k,omitempty" jsonschema:"maximum number of passages to retrieve (default 5)"`
}

type AskOutput struct {
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Sources     []string `json:"sources"`
	Confidence  float64  `json:"confidence"`
	Difficulty  string   `json:"difficulty"`
}

type SearchInput struct {
	Query string `json:"query" jsonschema:"the query to match against stored chunks"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"maximum number of chunks to return (default 5)"`
}

type SearchOutput struct {
	Chunks []ChunkOutput `json:"chunks"`
	Count  int           `json:"count"`
}

type ChunkOutput struct {
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
	Source string  `json:"source,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a question using the ingested study material",
	}, s.handleAsk)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_chunks",
		Description: "Retrieve the stored chunks most relevant to a query",
	}, s.handleSearch)
}

func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.service.Ask(ctx, tutorModel.Question{
		Question:   input.Question,
		Difficulty: tutorModel.Difficulty(input.Difficulty),
		Strategy:   tutorModel.Strategy(input.Strategy),
		TopK:       input.TopK,
	})
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		Answer:      answer.Answer,
		Explanation: answer.Explanation,
		Sources:     answer.Sources,
		Confidence:  answer.Confidence,
		Difficulty:  string(answer.Difficulty),
	}, nil
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	result, err := s.service.Retrieve(ctx, input.Query, input.TopK)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Chunks: make([]ChunkOutput, len(result.Chunks)),
		Count:  len(result.Chunks),
	}
	for i, chunk := range result.Chunks {
		output.Chunks[i] = ChunkOutput{
			Text:   chunk.Text,
			Score:  float64(chunk.Score),
			Source: chunk.Metadata["title"],
		}
	}
	return nil, output, nil
}
