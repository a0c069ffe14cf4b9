package llm

import (
	"context"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"
)

// OpenAI implements Client on the official openai-go SDK (chat completions).
type OpenAI struct {
	model   string
	apiKey  string
	timeout time.Duration
}

// OpenAIFactory returns a Factory producing per-request OpenAI clients.
func OpenAIFactory(model string, timeout time.Duration) Factory {
	return func(apiKey string) Client {
		return &OpenAI{model: model, apiKey: apiKey, timeout: timeout}
	}
}

func (o *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithRequestTimeout(o.timeout),
	)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
