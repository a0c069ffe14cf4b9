package post

import (
	"context"

	"yt-post/models"
)

type Service interface {
	Generate(ctx context.Context, req *models.PostRequest) (*models.Post, error)
}

type Config struct {
	// APIKey is the process-wide generation provider key; a per-request
	// key takes precedence.
	APIKey string
}
