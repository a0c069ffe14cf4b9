package transcript

import (
	"context"

	"github.com/sirupsen/logrus"

	"yt-post/config"
	"yt-post/errors"
	"yt-post/models"
	"yt-post/validation"
	"yt-post/youtube"
)

type service struct {
	source    Source
	validator *validation.Validator
	config    Config
	logger    *logrus.Logger
}

func NewService(source Source, validator *validation.Validator, cfg Config) Service {
	return &service{
		source:    source,
		validator: validator,
		config:    cfg,
		logger:    logrus.StandardLogger(),
	}
}

func (s *service) Fetch(ctx context.Context, req *models.TranscriptRequest) (*models.Transcript, error) {
	const op = "TranscriptService.Fetch"

	if err := s.validator.ValidateTranscriptRequest(req); err != nil {
		return nil, err
	}

	videoID, err := youtube.ExtractVideoID(req.YouTubeURL)
	if err != nil {
		return nil, err
	}

	logger := s.logger.WithFields(logrus.Fields{
		"operation": op,
		"video_id":  videoID,
	})

	result := &models.Transcript{
		VideoID:  videoID,
		Language: req.Language,
	}

	// Metadata enrichment is best-effort: an enriched result when a key is
	// available and the lookup succeeds, placeholders otherwise.
	meta, ok := s.lookupMetadata(ctx, videoID, req.YouTubeAPIKey)
	if ok {
		result.VideoTitle = meta.Title
		result.ChannelName = meta.ChannelName
		result.DurationSeconds = meta.DurationSeconds
	} else {
		result.VideoTitle = "YouTube video " + videoID
	}

	text, language, err := s.source.FetchTranscript(ctx, videoID, req.Language)
	if err != nil {
		logger.WithError(err).Warn("Transcript fetch failed")
		result.Transcript = ""
		result.Error = failureReason(err)
		return result, nil
	}

	result.Transcript = text
	result.Language = language

	logger.WithFields(logrus.Fields{
		"language":          language,
		"transcript_length": len(text),
	}).Info("Transcript fetched")

	return result, nil
}

// lookupMetadata resolves the credential and queries the Data API. The
// second return value reports whether enrichment happened.
func (s *service) lookupMetadata(ctx context.Context, videoID, perRequestKey string) (*youtube.Metadata, bool) {
	apiKey := config.ResolveKey(perRequestKey, s.config.APIKey)
	if apiKey == "" {
		s.logger.WithField("video_id", videoID).
			Debug("No YouTube API key available, using placeholder metadata")
		return nil, false
	}

	meta, err := s.source.FetchMetadata(ctx, videoID, apiKey)
	if err != nil {
		s.logger.WithError(err).WithField("video_id", videoID).
			Warn("Metadata lookup failed, using placeholder metadata")
		return nil, false
	}

	return meta, true
}

// failureReason maps a fetch error to the short reason string embedded in
// the response. Upstream detail stays in the logs.
func failureReason(err error) string {
	switch errors.KindOf(err) {
	case errors.KindTranscriptUnavailable:
		if appErr, ok := err.(*errors.AppError); ok {
			return appErr.Message
		}
		return "no transcript is available for this video"
	case errors.KindUpstream:
		return "the transcript source could not be reached"
	default:
		return "transcript fetch failed"
	}
}
