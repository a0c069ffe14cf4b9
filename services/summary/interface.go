package summary

import (
	"context"

	"yt-post/models"
)

type Service interface {
	Generate(ctx context.Context, req *models.SummaryRequest) (*models.Summary, error)
}

type Config struct {
	// APIKey is the process-wide generation provider key; a per-request
	// key takes precedence.
	APIKey string
}
