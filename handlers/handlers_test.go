package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"yt-post/config"
	"yt-post/errors"
	"yt-post/models"
	"yt-post/services/output"
	"yt-post/validation"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})

	cfg := &config.Config{
		YouTube: config.YouTubeConfig{DefaultLanguage: "en"},
		Summary: config.SummaryConfig{MinWords: 150, MaxWords: 250},
		Post:    config.PostConfig{MaxLength: 1200},
	}
	validator := validation.NewValidator(cfg)
	outputHandler := NewOutputHandler(output.NewService(), validator)

	app.Get("/health", HealthHandler)
	app.Get("/list-tools", ListTools)
	app.Post("/api/v1/output", outputHandler.Format)

	return app
}

func TestHealthHandler(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to test request: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status code %d, got %d", fiber.StatusOK, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	var response struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		t.Fatalf("Failed to unmarshal response body: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("Expected status \"ok\", got %q", response.Status)
	}
	if _, err := time.Parse(time.RFC3339, response.Timestamp); err != nil {
		t.Errorf("Invalid timestamp format: %v", err)
	}
}

func TestListTools(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/list-tools", nil))
	if err != nil {
		t.Fatalf("Failed to test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var manifest struct {
		SchemaVersion string `json:"schema_version"`
		Tools         []struct {
			Function struct {
				Name string `json:"name"`
			} `json:"function"`
		} `json:"tools"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		t.Fatalf("Failed to decode manifest: %v", err)
	}

	if manifest.SchemaVersion != "v1" {
		t.Errorf("Expected schema version v1, got %q", manifest.SchemaVersion)
	}

	wantTools := []string{"extract_transcript", "generate_summary", "generate_post", "format_output"}
	if len(manifest.Tools) != len(wantTools) {
		t.Fatalf("Expected %d tools, got %d", len(wantTools), len(manifest.Tools))
	}
	for i, name := range wantTools {
		if manifest.Tools[i].Function.Name != name {
			t.Errorf("Tool %d = %q, want %q", i, manifest.Tools[i].Function.Name, name)
		}
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*Response, int) {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to test request: %v", err)
	}

	var envelope Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("Failed to decode envelope: %v", err)
	}

	return &envelope, resp.StatusCode
}

func TestOutputEndpoint(t *testing.T) {
	app := newTestApp()

	envelope, status := postJSON(t, app, "/api/v1/output", models.OutputRequest{
		PostContent: "hello world",
		Format:      models.FormatText,
	})

	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if !envelope.Success {
		t.Errorf("Expected success envelope, got %+v", envelope)
	}
}

func TestOutputEndpointUnknownFormat(t *testing.T) {
	app := newTestApp()

	envelope, status := postJSON(t, app, "/api/v1/output", models.OutputRequest{
		PostContent: "hello world",
		Format:      "xml",
	})

	if status != fiber.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", status)
	}
	if envelope.Success {
		t.Error("Expected failure envelope")
	}
	if envelope.Kind != string(errors.KindUnsupportedFormat) {
		t.Errorf("Expected kind %q, got %q", errors.KindUnsupportedFormat, envelope.Kind)
	}
	if envelope.Error == "" {
		t.Error("Expected a human-readable error message")
	}
}

func TestOutputEndpointInvalidBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/output", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

// stubSummaryService lets the handler tests exercise the error contract
// without a provider.
type stubSummaryService struct {
	result *models.Summary
	err    error
}

func (s *stubSummaryService) Generate(_ context.Context, _ *models.SummaryRequest) (*models.Summary, error) {
	return s.result, s.err
}

func TestSummarizeEndpointUpstreamFailure(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	handler := NewSummaryHandler(&stubSummaryService{
		err: errors.Upstream("op", nil, "summary generation failed"),
	})
	app.Post("/api/v1/summarize", handler.Generate)

	envelope, status := postJSON(t, app, "/api/v1/summarize", models.SummaryRequest{
		Transcript: "some text",
	})

	if status != fiber.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", status)
	}
	if envelope.Kind != string(errors.KindUpstream) {
		t.Errorf("Expected kind %q, got %q", errors.KindUpstream, envelope.Kind)
	}
}

func TestSummarizeEndpointSuccess(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	handler := NewSummaryHandler(&stubSummaryService{
		result: &models.Summary{Summary: "short", WordCount: 1, KeyPoints: []string{"a"}},
	})
	app.Post("/api/v1/summarize", handler.Generate)

	envelope, status := postJSON(t, app, "/api/v1/summarize", models.SummaryRequest{
		Transcript: "some text",
	})

	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if !envelope.Success {
		t.Errorf("Expected success envelope, got %+v", envelope)
	}
}
