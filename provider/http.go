package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/CYSTCloud/TP/config"
	"github.com/CYSTCloud/TP/log"

	"go.uber.org/zap"
)

// 外部服务的请求体与响应体
type httpRequestBody struct {
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Text           string `json:"text"`
}

type httpResponseBody struct {
	TranslatedText string          `json:"translated_text"`
	Error          json.RawMessage `json:"error"`
}

// errorMessage 兼容字符串和 {"message": ...} 对象两种错误格式
func (b httpResponseBody) errorMessage() string {
	if len(b.Error) == 0 {
		return ""
	}
	var msg string
	if err := json.Unmarshal(b.Error, &msg); err == nil {
		return strings.TrimSpace(msg)
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b.Error, &obj); err == nil && obj.Message != "" {
		return strings.TrimSpace(obj.Message)
	}
	return string(b.Error)
}

// HTTPClient 直接以 JSON 调用固定的翻译地址
type HTTPClient struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHTTPClient(cfg config.ProviderConfig) *HTTPClient {
	url := cfg.URL
	if url == "" {
		url = config.DefaultProviderURL
	}
	return &HTTPClient{
		url:    url,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *HTTPClient) Name() string { return config.ProviderHTTP }

func (c *HTTPClient) Translate(ctx context.Context, req Request) (string, error) {
	reqBody, err := json.Marshal(httpRequestBody{
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Text:           req.Text,
	})
	if err != nil {
		return "", transportErrorf("marshal provider request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return "", transportErrorf("create provider request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.L().Error("send translation request error", zap.String("url", c.url), zap.Error(err))
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close() //记得关闭响应体

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportErrorf("read provider response: %w", err)
	}

	var parsed httpResponseBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.L().Error("unmarshal translation response error",
			zap.Int("status", resp.StatusCode), zap.Error(err))
		return "", transportErrorf("decode provider response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := parsed.errorMessage()
		log.L().Warn("translation provider declined request",
			zap.Int("status", resp.StatusCode), zap.String("error", msg))
		return "", newApplicationError(resp.StatusCode, msg)
	}
	if parsed.TranslatedText == "" {
		return "", transportErrorf("provider response has no translated_text")
	}
	return parsed.TranslatedText, nil
}
