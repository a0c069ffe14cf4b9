package transcript

import (
	"context"

	"yt-post/models"
	"yt-post/youtube"
)

type Service interface {
	// Fetch resolves the reference, retrieves the transcript and enriches
	// it with metadata. Unavailable transcripts come back as a Transcript
	// with the error field set rather than as a returned error.
	Fetch(ctx context.Context, req *models.TranscriptRequest) (*models.Transcript, error)
}

// Source is the outbound YouTube surface, satisfied by *youtube.Client.
type Source interface {
	FetchTranscript(ctx context.Context, videoID, language string) (string, string, error)
	FetchMetadata(ctx context.Context, videoID, apiKey string) (*youtube.Metadata, error)
}

type Config struct {
	// APIKey is the process-wide YouTube Data API key; a per-request key
	// takes precedence.
	APIKey string
}
