package controller

import (
	"chainquest_backend/internal/repository"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Catalog *repository.CatalogRepository
}

func NewHealthController(catalog *repository.CatalogRepository) *HealthController {
	return &HealthController{Catalog: catalog}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "ChainQuest Academy API",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"components": gin.H{
			"modules":    len(c.Catalog.Modules()),
			"adventures": len(c.Catalog.Chapters()),
			"badges":     len(c.Catalog.Badges()),
		},
	})
}

// Root mirrors the public API index.
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"name":      "ChainQuest Academy API",
		"version":   "1.0.0",
		"status":    "running",
		"endpoints": []string{"/api/health", "/api/modules", "/api/lessons/:id", "/api/chat", "/api/quiz/submit", "/api/adventures"},
	})
}
