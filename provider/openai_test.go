package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CYSTCloud/TP/config"
)

func newTestOpenAIClient(url string) *OpenAIClient {
	return NewOpenAIClient(config.ProviderConfig{
		Kind:    config.ProviderOpenAI,
		URL:     url,
		APIKey:  "test-key",
		Timeout: time.Second,
	})
}

func TestOpenAIClient_Translate_Success(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  bonjour\n"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	c := newTestOpenAIClient(server.URL + "/v1")
	text, err := c.Translate(context.Background(), Request{SourceLanguage: "en", TargetLanguage: "fr", Text: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "bonjour" {
		t.Errorf("expected 'bonjour', got %q", text)
	}
	if gotPath != "/v1/chat/completions" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected Authorization header %q", gotAuth)
	}
}

func TestOpenAIClient_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error", "code": "invalid_api_key"}}`))
	}))
	defer server.Close()

	c := newTestOpenAIClient(server.URL + "/v1")
	_, err := c.Translate(context.Background(), Request{SourceLanguage: "en", TargetLanguage: "fr", Text: "hello"})

	var ae *ApplicationError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ApplicationError, got %T: %v", err, err)
	}
	if ae.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", ae.StatusCode)
	}
	if ae.Message != "Incorrect API key provided" {
		t.Errorf("unexpected message %q", ae.Message)
	}
}

func TestOpenAIClient_Translate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`))
	}))
	defer server.Close()

	c := newTestOpenAIClient(server.URL + "/v1")
	_, err := c.Translate(context.Background(), Request{SourceLanguage: "en", TargetLanguage: "fr", Text: "hello"})

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
}

func TestOpenAIClient_DefaultModel(t *testing.T) {
	c := newTestOpenAIClient("")
	if c.model != defaultOpenAIModel {
		t.Errorf("model = %q, want %q", c.model, defaultOpenAIModel)
	}
	if c.Name() != "openai" {
		t.Errorf("unexpected name %q", c.Name())
	}
}
