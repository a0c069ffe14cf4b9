package validation

import (
	"fmt"
	"strings"

	"yt-post/config"
	"yt-post/errors"
	"yt-post/models"
)

// Validator checks and normalizes request bodies at the HTTP boundary
// before any stage runs. Missing optional fields are filled in with the
// configured defaults.
type Validator struct {
	config *config.Config
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

func (v *Validator) ValidateTranscriptRequest(req *models.TranscriptRequest) error {
	const op = "Validator.ValidateTranscriptRequest"

	if strings.TrimSpace(req.YouTubeURL) == "" {
		return errors.InvalidReference(op, nil, "youtube_url is required")
	}
	if req.Language == "" {
		req.Language = v.config.YouTube.DefaultLanguage
	}

	return nil
}

func (v *Validator) ValidateSummaryRequest(req *models.SummaryRequest) error {
	const op = "Validator.ValidateSummaryRequest"

	if strings.TrimSpace(req.Transcript) == "" {
		return errors.InvalidInput(op, nil, "transcript is required")
	}

	if req.Tone == "" {
		req.Tone = models.ToneProfessional
	}
	if !req.Tone.Valid() {
		return errors.InvalidInput(op, nil, fmt.Sprintf("unknown tone %q", req.Tone))
	}

	if req.Audience == "" {
		req.Audience = models.AudienceGeneral
	}
	if !req.Audience.Valid() {
		return errors.InvalidInput(op, nil, fmt.Sprintf("unknown audience %q", req.Audience))
	}

	if req.MinLength == 0 {
		req.MinLength = v.config.Summary.MinWords
	}
	if req.MaxLength == 0 {
		req.MaxLength = v.config.Summary.MaxWords
	}
	if req.MinLength < 0 || req.MaxLength < 0 {
		return errors.InvalidInput(op, nil, "length bounds must be positive")
	}
	if req.MinLength > req.MaxLength {
		return errors.InvalidInput(op, nil, "min_length must not exceed max_length")
	}

	return nil
}

func (v *Validator) ValidatePostRequest(req *models.PostRequest) error {
	const op = "Validator.ValidatePostRequest"

	if strings.TrimSpace(req.Summary) == "" {
		return errors.InvalidInput(op, nil, "summary is required")
	}
	if strings.TrimSpace(req.VideoURL) == "" {
		return errors.InvalidInput(op, nil, "video_url is required")
	}

	if req.Tone == "" {
		req.Tone = models.ToneProfessional
	}
	if !req.Tone.Valid() {
		return errors.InvalidInput(op, nil, fmt.Sprintf("unknown tone %q", req.Tone))
	}

	if req.Voice == "" {
		req.Voice = models.VoiceFirstPerson
	}
	if !req.Voice.Valid() {
		return errors.InvalidInput(op, nil, fmt.Sprintf("unknown voice %q", req.Voice))
	}

	if req.Audience == "" {
		req.Audience = models.AudienceGeneral
	}
	if !req.Audience.Valid() {
		return errors.InvalidInput(op, nil, fmt.Sprintf("unknown audience %q", req.Audience))
	}

	if req.MaxLength == 0 {
		req.MaxLength = v.config.Post.MaxLength
	}
	if req.MaxLength < 0 {
		return errors.InvalidInput(op, nil, "max_length must be positive")
	}

	return nil
}

func (v *Validator) ValidateOutputRequest(req *models.OutputRequest) error {
	const op = "Validator.ValidateOutputRequest"

	if strings.TrimSpace(req.PostContent) == "" {
		return errors.InvalidInput(op, nil, "post_content is required")
	}

	if req.Format == "" {
		req.Format = models.FormatJSON
	}
	if !req.Format.Valid() {
		return errors.UnsupportedFormat(op, nil,
			fmt.Sprintf("unsupported output format %q", req.Format))
	}

	return nil
}
