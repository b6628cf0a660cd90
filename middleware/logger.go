package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request with method, path, status and
// latency.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		log.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    path,
			"status":  ctx.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request handled")
	}
}
