package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CYSTCloud/TP/config"
)

func TestNew_MissingAPIKey(t *testing.T) {
	for _, kind := range []string{config.ProviderHTTP, config.ProviderOpenAI, config.ProviderGemini, config.ProviderGoogle} {
		t.Run(kind, func(t *testing.T) {
			_, err := New(context.Background(), config.ProviderConfig{Kind: kind})
			if !errors.Is(err, config.ErrMissingAPIKey) {
				t.Errorf("expected ErrMissingAPIKey, got %v", err)
			}
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(context.Background(), config.ProviderConfig{Kind: "carrier-pigeon", APIKey: "k"})
	if err == nil {
		t.Fatal("expected error for unknown provider kind")
	}
}

func TestNew_HTTPDefaults(t *testing.T) {
	client, err := New(context.Background(), config.ProviderConfig{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hc, ok := client.(*HTTPClient)
	if !ok {
		t.Fatalf("expected *HTTPClient, got %T", client)
	}
	if hc.url != config.DefaultProviderURL {
		t.Errorf("url = %q, want %q", hc.url, config.DefaultProviderURL)
	}
	if hc.client.Timeout != 20*time.Second {
		t.Errorf("timeout = %v, want 20s", hc.client.Timeout)
	}
}

func TestApplicationError_DefaultMessage(t *testing.T) {
	err := newApplicationError(500, "")
	if err.Message != "Translation failed" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt(Request{SourceLanguage: "en", TargetLanguage: "fr", Text: "hello"})
	for _, want := range []string{"from en to fr", "hello"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt %q does not contain %q", p, want)
		}
	}
}

func TestCustomBaseURL(t *testing.T) {
	if got := customBaseURL(config.DefaultProviderURL); got != "" {
		t.Errorf("default url should map to SDK default, got %q", got)
	}
	if got := customBaseURL("http://localhost:9999/v1"); got != "http://localhost:9999/v1" {
		t.Errorf("unexpected base url %q", got)
	}
}
