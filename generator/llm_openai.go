package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (chat
// completions, no streaming, default sampling parameters).
type OpenAILLM struct {
	model string
	opts  []option.RequestOption
}

func NewOpenAILLM(cfg LLMSettings) (*OpenAILLM, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAILLM{model: cfg.Model, opts: opts}, nil
}

// Complete sends the two prompt parts as ordered conversation turns,
// instruction first, and returns the first candidate's text unmodified.
// Any service failure comes back as a *GenerationError.
func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	})
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Err: errors.New("empty choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}
