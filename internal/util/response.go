package util

import (
	"chainquest_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error helpers emit the API's uniform failure shape: {"error": message}.
// Success bodies are endpoint-specific and written directly by controllers.

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Invalid or missing token")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}
