package router

import (
	"html/template"
	"net/http"

	"github.com/CYSTCloud/TP/controllers"
	"github.com/CYSTCloud/TP/global"
	"github.com/CYSTCloud/TP/middlewares"

	"github.com/gin-gonic/gin"
)

// Options 路由依赖, 由调用方组装后传入
type Options struct {
	AppName      string
	Translations *controllers.TranslationController
	Health       controllers.Pinger
	Templates    *template.Template
	DocsEnabled  bool   // 启动时确定一次
	AdminURL     string // 为空时 /admin/ 返回 404
}

func SetupRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestID(), middlewares.GinLogger(), middlewares.GinRecovery())
	if opts.DocsEnabled {
		mountSwagger(r)
	}

	//页面（公开）
	index := controllers.NewIndexController(opts.Templates, opts.AppName, global.Version, opts.DocsEnabled)
	r.GET("/", index.Index)
	if opts.Health != nil {
		r.GET("/healthz", controllers.Health(opts.Health))
	}
	r.Any("/admin/*any", adminHandler(opts.AdminURL))

	api := r.Group("/api/translation")
	{
		api.GET("/", opts.Translations.List)
		api.POST("/", opts.Translations.Create)
		api.GET("/languages", controllers.GetSupportedLanguages)
	}
	return r
}

// 后台管理交给外部系统
func adminHandler(adminURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminURL == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "admin interface is not configured"})
			return
		}
		c.Redirect(http.StatusFound, adminURL)
	}
}
