package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// 常用语言, 仅供前端展示, 创建翻译时不做校验
var commonLanguages = []string{
	"en", "fr", "de", "es", "it", "pt", "nl", "sv", "da", "no", "fi", "pl",
	"ru", "tr", "ar", "hi", "th", "vi", "ja", "ko", "zh", "zh-TW",
}

var languageNames = buildLanguageNames(commonLanguages)

func buildLanguageNames(codes []string) map[string]string {
	namer := display.English.Tags()
	names := make(map[string]string, len(codes))
	for _, code := range codes {
		names[code] = namer.Name(language.Make(code))
	}
	return names
}

// GetSupportedLanguages godoc
// @Summary     List common languages
// @Description Language codes and their English names; informational only
// @Tags        Translation
// @Produce     json
// @Success     200  {object}  map[string]string
// @Router      /api/translation/languages [get]
func GetSupportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, languageNames)
}
