// Package provider 封装对外部翻译服务的单次调用。
//
// 调用方通过错误类型区分两类失败：
// *ApplicationError 表示服务可达但拒绝了请求(状态码和信息原样透传),
// *TransportError 表示网络故障、超时或响应无法解析。
package provider

import (
	"context"
	"fmt"

	"github.com/CYSTCloud/TP/config"
	"github.com/CYSTCloud/TP/global"
)

type Request struct {
	SourceLanguage string
	TargetLanguage string
	Text           string
}

type Client interface {
	// Translate 返回译文, 失败时返回 *ApplicationError 或 *TransportError
	Translate(ctx context.Context, req Request) (string, error)
	Name() string
}

const defaultErrorMessage = "Translation failed"

type ApplicationError struct {
	StatusCode int
	Message    string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}

func newApplicationError(status int, message string) *ApplicationError {
	if message == "" {
		message = defaultErrorMessage
	}
	return &ApplicationError{StatusCode: status, Message: message}
}

type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

func transportErrorf(format string, args ...any) *TransportError {
	return &TransportError{Err: fmt.Errorf(format, args...)}
}

// New 按配置构造翻译客户端, 密钥显式传入, 不读全局状态
func New(ctx context.Context, cfg config.ProviderConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = global.ProviderTimeout
	}
	switch cfg.Kind {
	case "", config.ProviderHTTP:
		return NewHTTPClient(cfg), nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case config.ProviderGoogle:
		return NewGoogleClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported provider kind %q", cfg.Kind)
	}
}
