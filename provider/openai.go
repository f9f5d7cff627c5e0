package provider

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/CYSTCloud/TP/config"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg config.ProviderConfig) *OpenAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if base := customBaseURL(cfg.URL); base != "" {
		oc.BaseURL = strings.TrimRight(base, "/")
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(oc), model: model}
}

func (c *OpenAIClient) Name() string { return config.ProviderOpenAI }

func (c *OpenAIClient) Translate(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
			return "", newApplicationError(apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", &TransportError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", transportErrorf("no translation choices in response")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", transportErrorf("empty translation in response")
	}
	return text, nil
}
