package summary

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"yt-post/config"
	"yt-post/errors"
	"yt-post/llm"
	"yt-post/models"
	"yt-post/validation"
)

type mockLLM struct {
	response string
	err      error

	apiKey   string
	lastUser string
}

func (m *mockLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	m.lastUser = req.User
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func mockFactory(m *mockLLM) llm.Factory {
	return func(apiKey string) llm.Client {
		m.apiKey = apiKey
		return m
	}
}

func newTestService(m *mockLLM, cfg Config) Service {
	appCfg := &config.Config{
		Summary: config.SummaryConfig{MinWords: 150, MaxWords: 250},
		Post:    config.PostConfig{MaxLength: 1200},
	}
	return NewService(mockFactory(m), validation.NewValidator(appCfg), cfg)
}

func TestGenerateParsesMarkers(t *testing.T) {
	mock := &mockLLM{
		response: "SUMMARY:\nThe talk covers Go concurrency patterns in depth.\n\n" +
			"KEY POINTS:\n- Channels compose\n- Goroutines are cheap\n- Channels compose\n- \n3. Select multiplexes",
	}
	svc := newTestService(mock, Config{APIKey: "env-key"})

	got, err := svc.Generate(context.Background(), &models.SummaryRequest{
		Transcript: "a long transcript about Go",
		VideoTitle: "Go Talk",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got.Summary != "The talk covers Go concurrency patterns in depth." {
		t.Errorf("unexpected summary: %q", got.Summary)
	}
	if got.WordCount != len(strings.Fields(got.Summary)) {
		t.Errorf("word count %d does not match text", got.WordCount)
	}

	want := []string{"Channels compose", "Goroutines are cheap", "Select multiplexes"}
	if len(got.KeyPoints) != len(want) {
		t.Fatalf("expected %d key points, got %v", len(want), got.KeyPoints)
	}
	for i, p := range want {
		if got.KeyPoints[i] != p {
			t.Errorf("key point %d = %q, want %q", i, got.KeyPoints[i], p)
		}
	}
}

func TestGenerateWithoutMarkers(t *testing.T) {
	mock := &mockLLM{response: "Just a plain paragraph without any structure."}
	svc := newTestService(mock, Config{APIKey: "env-key"})

	got, err := svc.Generate(context.Background(), &models.SummaryRequest{Transcript: "text"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.Summary != "Just a plain paragraph without any structure." {
		t.Errorf("unexpected summary: %q", got.Summary)
	}
	if len(got.KeyPoints) != 0 {
		t.Errorf("expected no key points, got %v", got.KeyPoints)
	}
}

func TestGenerateEmptyTranscript(t *testing.T) {
	svc := newTestService(&mockLLM{}, Config{APIKey: "env-key"})

	_, err := svc.Generate(context.Background(), &models.SummaryRequest{})
	if !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("expected invalid_input, got %v", err)
	}
}

func TestGenerateMissingKey(t *testing.T) {
	svc := newTestService(&mockLLM{}, Config{})

	_, err := svc.Generate(context.Background(), &models.SummaryRequest{Transcript: "text"})
	if !errors.IsKind(err, errors.KindUpstream) {
		t.Errorf("expected upstream_error, got %v", err)
	}
}

func TestGeneratePerRequestKeyWins(t *testing.T) {
	mock := &mockLLM{response: "SUMMARY:\nfine.\nKEY POINTS:\n- one"}
	svc := newTestService(mock, Config{APIKey: "env-key"})

	_, err := svc.Generate(context.Background(), &models.SummaryRequest{
		Transcript:   "text",
		OpenAIAPIKey: "request-key",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if mock.apiKey != "request-key" {
		t.Errorf("expected per-request key, got %q", mock.apiKey)
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	mock := &mockLLM{err: fmt.Errorf("connection reset")}
	svc := newTestService(mock, Config{APIKey: "env-key"})

	_, err := svc.Generate(context.Background(), &models.SummaryRequest{Transcript: "text"})
	if !errors.IsKind(err, errors.KindUpstream) {
		t.Errorf("expected upstream_error, got %v", err)
	}
}

func TestGenerateEmptyModelOutput(t *testing.T) {
	mock := &mockLLM{response: ""}
	svc := newTestService(mock, Config{APIKey: "env-key"})

	_, err := svc.Generate(context.Background(), &models.SummaryRequest{Transcript: "text"})
	if !errors.IsKind(err, errors.KindUpstream) {
		t.Errorf("expected upstream_error, got %v", err)
	}
}

func TestPromptEmbedsConstraints(t *testing.T) {
	mock := &mockLLM{response: "SUMMARY:\nok.\nKEY POINTS:\n- a"}
	svc := newTestService(mock, Config{APIKey: "env-key"})

	_, err := svc.Generate(context.Background(), &models.SummaryRequest{
		Transcript: "the transcript body",
		Tone:       models.ToneCasual,
		Audience:   models.AudienceTechnical,
		MinLength:  100,
		MaxLength:  200,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"between 100 and 200 words",
		"casual and approachable",
		"technical professionals",
		"SUMMARY:",
		"KEY POINTS:",
		"the transcript body",
	} {
		if !strings.Contains(mock.lastUser, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestPromptTruncatesLongTranscript(t *testing.T) {
	mock := &mockLLM{response: "SUMMARY:\nok.\nKEY POINTS:\n- a"}
	svc := newTestService(mock, Config{APIKey: "env-key"})

	long := strings.Repeat("words ", 5000)
	_, err := svc.Generate(context.Background(), &models.SummaryRequest{Transcript: long})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(mock.lastUser) >= len(long) {
		t.Error("transcript should have been truncated in the prompt")
	}
}
