package provider

import (
	"fmt"

	"github.com/CYSTCloud/TP/config"
)

const systemPrompt = "You are a professional translator. Translate the given text accurately while preserving the original meaning and tone."

// LLM 类的服务只需要返回译文本身
func buildPrompt(req Request) string {
	return fmt.Sprintf(`Translate the following text from %s to %s.
Return ONLY the translated text, without quotes, labels or commentary. Preserve original formatting (markdown, code blocks, newlines).
Text:
%s`, req.SourceLanguage, req.TargetLanguage, req.Text)
}

// 未单独配置地址时, SDK 使用自己的默认地址
func customBaseURL(url string) string {
	if url == config.DefaultProviderURL {
		return ""
	}
	return url
}
