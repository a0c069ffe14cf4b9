package summary

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"yt-post/config"
	"yt-post/errors"
	"yt-post/llm"
	"yt-post/models"
	"yt-post/validation"
)

type service struct {
	llm       llm.Factory
	validator *validation.Validator
	config    Config
	logger    *logrus.Logger
}

func NewService(factory llm.Factory, validator *validation.Validator, cfg Config) Service {
	return &service{
		llm:       factory,
		validator: validator,
		config:    cfg,
		logger:    logrus.StandardLogger(),
	}
}

func (s *service) Generate(ctx context.Context, req *models.SummaryRequest) (*models.Summary, error) {
	const op = "SummaryService.Generate"

	if err := s.validator.ValidateSummaryRequest(req); err != nil {
		return nil, err
	}

	apiKey := config.ResolveKey(req.OpenAIAPIKey, s.config.APIKey)
	if apiKey == "" {
		return nil, errors.Upstream(op, nil, "no generation provider key configured")
	}

	text, err := s.llm(apiKey).Complete(ctx, llm.Request{
		System:      systemPrompt,
		User:        buildPrompt(req),
		Temperature: 0.5,
		MaxTokens:   1000,
	})
	if err != nil {
		s.logger.WithError(err).Error("Summary generation failed")
		return nil, errors.Upstream(op, err, "summary generation failed")
	}
	if text == "" {
		return nil, errors.Upstream(op, nil, "the model returned no usable text")
	}

	summaryText, keyPoints := parseResponse(text)

	s.logger.WithFields(logrus.Fields{
		"operation":  op,
		"word_count": len(strings.Fields(summaryText)),
		"key_points": len(keyPoints),
	}).Info("Summary generated")

	return &models.Summary{
		Summary:   summaryText,
		WordCount: len(strings.Fields(summaryText)),
		KeyPoints: keyPoints,
	}, nil
}

// parseResponse splits the model output on the SUMMARY / KEY POINTS markers.
// Output without a parseable list yields the whole text as summary and no
// key points.
func parseResponse(text string) (string, []string) {
	summaryText := text
	var keyPointsText string

	if _, after, found := strings.Cut(text, "SUMMARY:"); found {
		summaryText = after
	}
	if before, after, found := strings.Cut(summaryText, "KEY POINTS:"); found {
		summaryText = before
		keyPointsText = after
	}

	return strings.TrimSpace(summaryText), parseKeyPoints(keyPointsText)
}

// parseKeyPoints reads the dash- or number-prefixed list lines, dropping
// empties and duplicates while preserving order.
func parseKeyPoints(text string) []string {
	seen := make(map[string]struct{})
	points := make([]string, 0, 5)

	for _, line := range strings.Split(text, "\n") {
		point := strings.TrimSpace(line)
		point = strings.TrimLeft(point, "-*0123456789.) ")
		if point == "" {
			continue
		}
		if _, dup := seen[point]; dup {
			continue
		}
		seen[point] = struct{}{}
		points = append(points, point)
	}

	return points
}
