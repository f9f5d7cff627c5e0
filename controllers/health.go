package controllers

import (
	"context"
	"net/http"

	"github.com/CYSTCloud/TP/global"
	"github.com/CYSTCloud/TP/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Health godoc
// @Summary     Health check
// @Tags        Health
// @Produce     json
// @Success     200  {object}  map[string]string
// @Failure     503  {object}  map[string]string
// @Router      /healthz [get]
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), global.HealthTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			log.L().Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
