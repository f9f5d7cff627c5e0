package router

import (
	"net/http"

	_ "github.com/CYSTCloud/TP/docs" // swag init 生成

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const docsIndexPath = "/docs/index.html"

func mountSwagger(r *gin.Engine) {
	handler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	r.GET("/docs/*any", func(c *gin.Context) {
		// gin-swagger 对空路径返回 404
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, docsIndexPath)
			return
		}
		handler(c)
	})
}
