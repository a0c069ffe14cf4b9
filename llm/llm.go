// Package llm abstracts the text-generation provider behind a single-call
// client so the services can be tested without network access.
package llm

import "context"

type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
}

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Factory builds a client bound to one request's credential. Keys are never
// cached across requests.
type Factory func(apiKey string) Client
