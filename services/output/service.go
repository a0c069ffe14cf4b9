// Package output renders a composed post into the caller's requested
// shape. It is a pure transform with no external calls.
package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"

	"yt-post/errors"
	"yt-post/models"
)

type Service interface {
	Format(req *models.OutputRequest) (*models.OutputResponse, error)
}

type service struct {
	markdown goldmark.Markdown
}

func NewService() Service {
	return &service{markdown: goldmark.New()}
}

func (s *service) Format(req *models.OutputRequest) (*models.OutputResponse, error) {
	const op = "OutputService.Format"

	if strings.TrimSpace(req.PostContent) == "" {
		return nil, errors.InvalidInput(op, nil, "post_content is required")
	}

	var content interface{}

	switch req.Format {
	case models.FormatJSON:
		content = map[string]interface{}{
			"post_content":    req.PostContent,
			"character_count": utf8.RuneCountInString(req.PostContent),
		}
	case models.FormatText:
		content = req.PostContent
	case models.FormatMarkdown:
		content = renderMarkdown(req)
	case models.FormatHTML:
		var buf bytes.Buffer
		if err := s.markdown.Convert([]byte(renderMarkdown(req)), &buf); err != nil {
			return nil, errors.Internal(op, err, "markdown rendering failed")
		}
		content = buf.String()
	default:
		return nil, errors.UnsupportedFormat(op, nil,
			fmt.Sprintf("unsupported output format %q", req.Format))
	}

	return &models.OutputResponse{
		Content: content,
		Format:  req.Format,
	}, nil
}

func renderMarkdown(req *models.OutputRequest) string {
	heading := req.Title
	if heading == "" {
		heading = "LinkedIn Post"
	}
	return "## " + heading + "\n\n" + req.PostContent
}
