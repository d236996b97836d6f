package middleware

import (
	"katwate/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags every request with an id, echoed back in the
// X-Request-ID header, and stores a request-scoped logger under "logger".
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(utils.RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(utils.RequestIDKey, id)
		c.Header(utils.RequestIDHeader, id)
		c.Set("logger", utils.GetLogger().With(zap.String("requestId", id)))
		c.Next()
	}
}
