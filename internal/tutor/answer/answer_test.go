package answer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

func scored(texts ...string) tutorModel.QueryResult {
	var chunks []tutorModel.ScoredChunk
	for _, t := range texts {
		chunks = append(chunks, tutorModel.ScoredChunk{Text: t})
	}
	return tutorModel.QueryResult{Chunks: chunks, Sources: []string{"Lecture notes"}}
}

func TestTemplate_NoChunks(t *testing.T) {
	got := NewTemplate().Compose(context.Background(), "What is entropy?", tutorModel.QueryResult{}, tutorModel.DifficultyIntermediate)

	if got.Confidence != 0.1 {
		t.Errorf("Confidence = %v; want 0.1", got.Confidence)
	}
	if !strings.Contains(got.Answer, "don't have enough information") {
		t.Errorf("unexpected answer: %q", got.Answer)
	}
	if len(got.Sources) != 0 {
		t.Errorf("expected no sources, got %v", got.Sources)
	}
}

func TestTemplate_ConfidenceSteps(t *testing.T) {
	tests := []struct {
		chunks     int
		confidence float64
	}{
		{1, 0.6},
		{2, 0.6},
		{3, 0.8},
		{5, 0.8},
	}

	for _, tt := range tests {
		texts := make([]string, tt.chunks)
		for i := range texts {
			texts[i] = "context"
		}
		got := NewTemplate().Compose(context.Background(), "Q?", scored(texts...), tutorModel.DifficultyIntermediate)
		if got.Confidence != tt.confidence {
			t.Errorf("%d chunks: Confidence = %v; want %v", tt.chunks, got.Confidence, tt.confidence)
		}
	}
}

func TestTemplate_DifficultyPrefix(t *testing.T) {
	tests := []struct {
		difficulty tutorModel.Difficulty
		prefix     string
	}{
		{tutorModel.DifficultyBeginner, "This is a basic explanation: "},
		{tutorModel.DifficultyIntermediate, "Here's an intermediate explanation: "},
		{tutorModel.DifficultyAdvanced, "This is an advanced analysis: "},
	}

	for _, tt := range tests {
		got := NewTemplate().Compose(context.Background(), "Why?", scored("some context"), tt.difficulty)
		if !strings.HasPrefix(got.Explanation, tt.prefix) {
			t.Errorf("%s: explanation %q missing prefix %q", tt.difficulty, got.Explanation, tt.prefix)
		}
		if got.Difficulty != tt.difficulty {
			t.Errorf("difficulty not echoed: got %s", got.Difficulty)
		}
	}
}

func TestTemplate_AnswerEchoesQuestion(t *testing.T) {
	got := NewTemplate().Compose(context.Background(), "WHAT is Entropy?", scored("ctx"), tutorModel.DifficultyIntermediate)
	want := "Based on the provided context, what is entropy?"
	if got.Answer != want {
		t.Errorf("Answer = %q; want %q", got.Answer, want)
	}
	if !strings.HasSuffix(got.Explanation, "...") {
		t.Errorf("Explanation should end with ellipsis marker: %q", got.Explanation)
	}
}

type mockProvider struct {
	response string
	err      error
}

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return m.response, m.err
}

func TestGenerative_ParsesAnswerAndSources(t *testing.T) {
	provider := &mockProvider{response: "Answer: Entropy measures disorder.\nSources:\n- line one\n- line two\n"}
	got := NewGenerative(provider).Compose(context.Background(), "What is entropy?", scored("a", "b", "c"), tutorModel.DifficultyAdvanced)

	if got.Answer != "Entropy measures disorder." {
		t.Errorf("Answer = %q", got.Answer)
	}
	if want := []string{"line one", "line two"}; !reflect.DeepEqual(got.Sources, want) {
		t.Errorf("Sources = %v; want %v", got.Sources, want)
	}
	if got.Confidence != 0.8 {
		t.Errorf("Confidence = %v; want 0.8", got.Confidence)
	}
}

func TestGenerative_MissingMarkers(t *testing.T) {
	provider := &mockProvider{response: "I simply do not know."}
	got := NewGenerative(provider).Compose(context.Background(), "Q?", scored("ctx"), tutorModel.DifficultyIntermediate)

	if got.Answer != "I simply do not know." {
		t.Errorf("Answer = %q; want whole response", got.Answer)
	}
	if len(got.Sources) != 0 {
		t.Errorf("Sources = %v; want empty", got.Sources)
	}
}

func TestGenerative_ProviderFailure(t *testing.T) {
	provider := &mockProvider{err: errors.New("provider down")}
	got := NewGenerative(provider).Compose(context.Background(), "Q?", scored("ctx"), tutorModel.DifficultyIntermediate)

	if got.Answer != "LLM call failed." {
		t.Errorf("Answer = %q; want placeholder", got.Answer)
	}
	if got.Confidence != 0.1 {
		t.Errorf("Confidence = %v; want 0.1", got.Confidence)
	}
}

func TestGenerative_NoChunks(t *testing.T) {
	provider := &mockProvider{response: "should not be called"}
	got := NewGenerative(provider).Compose(context.Background(), "Q?", tutorModel.QueryResult{}, tutorModel.DifficultyBeginner)

	if got.Confidence != 0.1 {
		t.Errorf("Confidence = %v; want 0.1", got.Confidence)
	}
	if !strings.Contains(got.Answer, "don't have enough information") {
		t.Errorf("unexpected answer: %q", got.Answer)
	}
}
