package post

import (
	"context"
	"strings"
	"unicode/utf8"

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

func (s *service) Generate(ctx context.Context, req *models.PostRequest) (*models.Post, error) {
	const op = "PostService.Generate"

	if err := s.validator.ValidatePostRequest(req); err != nil {
		return nil, err
	}

	apiKey := config.ResolveKey(req.OpenAIAPIKey, s.config.APIKey)
	if apiKey == "" {
		return nil, errors.Upstream(op, nil, "no generation provider key configured")
	}

	hashtags := NormalizeHashtags(req.Hashtags)

	content, err := s.llm(apiKey).Complete(ctx, llm.Request{
		System:      systemPrompt,
		User:        buildPrompt(req, hashtags),
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		s.logger.WithError(err).Error("Post generation failed")
		return nil, errors.Upstream(op, err, "post generation failed")
	}
	if content == "" {
		return nil, errors.Upstream(op, nil, "the model returned no usable text")
	}

	content = truncateAtWord(content, req.MaxLength)

	result := &models.Post{
		PostContent:       content,
		CharacterCount:    utf8.RuneCountInString(content),
		EstimatedReadTime: readTime(len(strings.Fields(content))),
		HashtagsUsed:      hashtagsUsed(content, hashtags),
	}

	s.logger.WithFields(logrus.Fields{
		"operation":       op,
		"character_count": result.CharacterCount,
		"hashtags_used":   len(result.HashtagsUsed),
	}).Info("Post generated")

	return result, nil
}
