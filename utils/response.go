package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalErrorJSON replies with the opaque JSON error body used by the read
// endpoints. Store failures are logged server-side; callers only learn that
// the whole operation failed.
func InternalErrorJSON(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

// InternalErrorText replies with the plain-text error body used by the
// sign-in POST endpoint.
func InternalErrorText(ctx *gin.Context) {
	ctx.String(http.StatusInternalServerError, "Internal Server Error")
}
