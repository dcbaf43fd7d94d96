package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key carrying the per-request id.
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, honoring one supplied by the
// caller, and echoes it back in the response header.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(RequestIDKey, id)
		ctx.Writer.Header().Set(requestIDHeader, id)
		ctx.Next()
	}
}
