package output

import (
	"reflect"
	"strings"
	"testing"

	"yt-post/errors"
	"yt-post/models"
)

func TestFormatJSON(t *testing.T) {
	svc := NewService()

	got, err := svc.Format(&models.OutputRequest{
		PostContent: "hello world",
		Format:      models.FormatJSON,
	})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	content, ok := got.Content.(map[string]interface{})
	if !ok {
		t.Fatalf("expected structured content, got %T", got.Content)
	}
	if content["post_content"] != "hello world" {
		t.Errorf("unexpected post_content: %v", content["post_content"])
	}
	if content["character_count"] != 11 {
		t.Errorf("unexpected character_count: %v", content["character_count"])
	}
	if got.Format != models.FormatJSON {
		t.Errorf("unexpected format: %q", got.Format)
	}
}

func TestFormatText(t *testing.T) {
	svc := NewService()

	got, err := svc.Format(&models.OutputRequest{
		PostContent: "just the body",
		Format:      models.FormatText,
	})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got.Content != "just the body" {
		t.Errorf("text format must return the bare body, got %v", got.Content)
	}
}

func TestFormatMarkdown(t *testing.T) {
	svc := NewService()

	got, err := svc.Format(&models.OutputRequest{
		PostContent: "body text",
		Title:       "My Post",
		Format:      models.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got.Content != "## My Post\n\nbody text" {
		t.Errorf("unexpected markdown: %q", got.Content)
	}

	got, err = svc.Format(&models.OutputRequest{
		PostContent: "body text",
		Format:      models.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(got.Content.(string), "## LinkedIn Post") {
		t.Errorf("expected default heading, got %q", got.Content)
	}
}

func TestFormatHTML(t *testing.T) {
	svc := NewService()

	got, err := svc.Format(&models.OutputRequest{
		PostContent: "plain *emphasis* here",
		Title:       "My Post",
		Format:      models.FormatHTML,
	})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	html, ok := got.Content.(string)
	if !ok {
		t.Fatalf("expected string content, got %T", got.Content)
	}
	if !strings.Contains(html, "<h2>My Post</h2>") {
		t.Errorf("expected rendered heading, got %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("expected rendered emphasis, got %q", html)
	}
}

func TestFormatUnknownTag(t *testing.T) {
	svc := NewService()

	got, err := svc.Format(&models.OutputRequest{
		PostContent: "hello",
		Format:      "xml",
	})
	if !errors.IsKind(err, errors.KindUnsupportedFormat) {
		t.Errorf("expected unsupported_format, got %v", err)
	}
	if got != nil {
		t.Errorf("no partial output on failure, got %+v", got)
	}
}

func TestFormatEmptyContent(t *testing.T) {
	svc := NewService()

	_, err := svc.Format(&models.OutputRequest{Format: models.FormatJSON})
	if !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("expected invalid_input, got %v", err)
	}
}

func TestFormatIdempotent(t *testing.T) {
	svc := NewService()

	for _, format := range []models.Format{
		models.FormatJSON,
		models.FormatText,
		models.FormatMarkdown,
		models.FormatHTML,
	} {
		req := &models.OutputRequest{
			PostContent: "same post, same bytes",
			Title:       "Stable",
			Format:      format,
		}

		first, err := svc.Format(req)
		if err != nil {
			t.Fatalf("Format(%s) error = %v", format, err)
		}
		second, err := svc.Format(req)
		if err != nil {
			t.Fatalf("Format(%s) error = %v", format, err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Errorf("Format(%s) is not idempotent: %+v vs %+v", format, first, second)
		}
	}
}
