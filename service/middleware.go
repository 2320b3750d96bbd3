package service

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIdKey    = "request_id"
	requestIdHeader = "X-Request-Id"
)

func RequestId(c *gin.Context) {
	id := uuid.New()
	c.Set(requestIdKey, id)
	c.Header(requestIdHeader, id.String())
	c.Next()
}

func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.Stringer("request_id", requestId(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
