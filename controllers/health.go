package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Henry-L/hl-apps/config"

	"github.com/gin-gonic/gin"
)

// Health pings the database so load balancers can tell a live process from
// a healthy one.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := config.Client().Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "Database connection failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
	}
}
