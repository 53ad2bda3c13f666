package middleware

import (
	"github.com/nearzk/ddd-leave-sample/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderPersonID  = "X-Person-ID"

	ginKeyRequestID = "request_id"
	ginKeyPersonID  = "person_id"
)

// ContextLogger tags each request with a request id and the acting person,
// and stores a scoped logger in the request context.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header(HeaderRequestID, rid)

		// identity is asserted by the gateway in front of this service
		pid := c.GetHeader(HeaderPersonID)

		c.Set(ginKeyRequestID, rid)
		c.Set(ginKeyPersonID, pid)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("person_id", pid),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithPersonID(ctx, pid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
