package controller

import (
	"chainquest_backend/internal/middleware"
	"chainquest_backend/internal/model"
	"chainquest_backend/internal/service"
	"chainquest_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Progression *service.ProgressionService
}

func NewContentController(progression *service.ProgressionService) *ContentController {
	return &ContentController{Progression: progression}
}

type moduleWithProgress struct {
	model.Module
	Progress model.ModuleProgress `json:"progress"`
}

// @Summary List modules
// @Description All learning modules with the caller's per-module progress
// @Tags content
// @Produce json
// @Param user_id query string false "User ID (defaults to the anonymous record)"
// @Success 200 {object} map[string]interface{}
// @Router /modules [get]
func (c *ContentController) GetModules(ctx *gin.Context) {
	userID := middleware.ResolveUserID(ctx, "")
	progress := c.Progression.Store.Get(userID)

	mods := c.Progression.Catalog.Modules()
	out := make([]moduleWithProgress, len(mods))
	for i := range mods {
		out[i] = moduleWithProgress{
			Module:   mods[i],
			Progress: c.Progression.ModuleProgressFor(progress, &mods[i]),
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"modules": out})
}

// @Summary Get module
// @Tags content
// @Produce json
// @Param moduleId path string true "Module ID"
// @Success 200 {object} model.Module
// @Failure 404 {object} map[string]string
// @Router /modules/{moduleId} [get]
func (c *ContentController) GetModule(ctx *gin.Context) {
	module, err := c.Progression.Catalog.ModuleByID(ctx.Param("moduleId"))
	if err != nil {
		util.NotFound(ctx, "Module not found")
		return
	}
	ctx.JSON(http.StatusOK, module)
}

// @Summary Get lesson
// @Tags content
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /lessons/{lessonId} [get]
func (c *ContentController) GetLesson(ctx *gin.Context) {
	lesson, moduleID, err := c.Progression.Catalog.LessonByID(ctx.Param("lessonId"))
	if err != nil {
		util.NotFound(ctx, "Lesson not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"id":        lesson.ID,
		"title":     lesson.Title,
		"duration":  lesson.Duration,
		"xp":        lesson.XP,
		"content":   lesson.Content,
		"quiz":      lesson.Quiz,
		"module_id": moduleID,
	})
}
