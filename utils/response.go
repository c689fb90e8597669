package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the uniform error body with the given status.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

// Success writes a 200 acknowledgment, merging any extra payload fields into
// the {"success": true} body.
func Success(ctx *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	ctx.JSON(http.StatusOK, body)
}
