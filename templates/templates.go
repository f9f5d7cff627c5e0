// Package templates 内嵌页面模板, 部署时不依赖工作目录
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
