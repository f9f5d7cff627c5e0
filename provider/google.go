package provider

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/CYSTCloud/TP/config"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type GoogleClient struct {
	client *translate.Client
}

func NewGoogleClient(ctx context.Context, cfg config.ProviderConfig) (*GoogleClient, error) {
	opts := []option.ClientOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if base := customBaseURL(cfg.URL); base != "" {
		opts = append(opts, option.WithEndpoint(base))
	}
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google translate client: %w", err)
	}
	return &GoogleClient{client: client}, nil
}

func (c *GoogleClient) Name() string { return config.ProviderGoogle }

func (c *GoogleClient) Translate(ctx context.Context, req Request) (string, error) {
	source, err := language.Parse(req.SourceLanguage)
	if err != nil {
		return "", newApplicationError(http.StatusBadRequest, fmt.Sprintf("invalid source language: %v", err))
	}
	target, err := language.Parse(req.TargetLanguage)
	if err != nil {
		return "", newApplicationError(http.StatusBadRequest, fmt.Sprintf("invalid target language: %v", err))
	}

	translations, err := c.client.Translate(ctx, []string{req.Text}, target, &translate.Options{
		Source: source,
		Format: translate.Text,
	})
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			return "", newApplicationError(apiErr.Code, apiErr.Message)
		}
		return "", &TransportError{Err: err}
	}
	if len(translations) == 0 || translations[0].Text == "" {
		return "", transportErrorf("no translation returned")
	}
	// Text 格式下仍可能带实体字符
	return html.UnescapeString(translations[0].Text), nil
}

func (c *GoogleClient) Close() error { return c.client.Close() }
