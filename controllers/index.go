package controllers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/CYSTCloud/TP/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const indexTemplate = "index.html"

type IndexController struct {
	tmpl        *template.Template
	appName     string
	version     string
	docsEnabled bool
}

func NewIndexController(tmpl *template.Template, appName, version string, docsEnabled bool) *IndexController {
	return &IndexController{tmpl: tmpl, appName: appName, version: version, docsEnabled: docsEnabled}
}

// Index 首页, 先渲染到缓冲区, 出错时不会写出半个页面
func (ic *IndexController) Index(c *gin.Context) {
	var t *template.Template
	if ic.tmpl != nil {
		t = ic.tmpl.Lookup(indexTemplate)
	}
	if t == nil {
		log.L().Error("index template not found", zap.String("template", indexTemplate))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "index template not found"})
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, gin.H{
		"Title":       ic.appName,
		"Version":     ic.version,
		"DocsEnabled": ic.docsEnabled,
	}); err != nil {
		_ = c.Error(err)
		log.L().Error("render index error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render page"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
