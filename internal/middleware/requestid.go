package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
)

type RequestIDMiddleware struct {
	log *logger.Logger
}

func NewRequestIDMiddleware(log *logger.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{log: log.With("Middleware", "RequestIDMiddleware")}
}

// Tag tags every request with a correlation id, echoed back in the
// X-Request-ID header. Incoming ids are reused so callers can thread their
// own correlation through.
func (rm *RequestIDMiddleware) Tag() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		rm.log.Debug("Request received", "request_id", requestID, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	}
}
