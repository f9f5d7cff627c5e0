package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/CYSTCloud/TP/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GinRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.L().Error("panic recovered",
					zap.String("request_id", c.GetString("request_id")),
					zap.Any("error", err),
					zap.ByteString("stack", debug.Stack()),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "InternalServer error"})
			}
		}()
		c.Next()
	}
}
