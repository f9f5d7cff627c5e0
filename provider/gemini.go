package provider

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/CYSTCloud/TP/config"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg config.ProviderConfig) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if base := customBaseURL(cfg.URL); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Name() string { return config.ProviderGemini }

func (c *GeminiClient) Translate(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(buildPrompt(req)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			return "", newApplicationError(apiErr.Code, apiErr.Message)
		}
		return "", &TransportError{Err: err}
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", transportErrorf("empty translation in response")
	}
	return text, nil
}
