package controller

import (
	"chainquest_backend/internal/middleware"
	"chainquest_backend/internal/service"
	"chainquest_backend/internal/util"
	"chainquest_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatController struct {
	Generation  *service.GenerationService
	Progression *service.ProgressionService
}

func NewChatController(generation *service.GenerationService, progression *service.ProgressionService) *ChatController {
	return &ChatController{Generation: generation, Progression: progression}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id"`
}

// @Summary Chat with the AI tutor
// @Description Proxies the question to the text-completion upstream. When
// every credential fails the reply is a graceful fallback string, never a 500.
// @Tags chat
// @Accept json
// @Produce json
// @Param body body chatRequest true "Question"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Message is required")
		return
	}

	userID := middleware.ResolveUserID(ctx, req.UserID)
	counters, err := c.Progression.RecordChatMessage(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	response, err := c.Generation.Chat(ctx.Request.Context(), req.Message)
	if err != nil {
		logger.Log.Warn("chat generation failed, returning fallback", zap.Error(err))
		response = service.ChatFallbackMessage
	}

	ctx.JSON(http.StatusOK, gin.H{
		"response":   response,
		"chat_count": counters.ChatCount,
		"new_badges": counters.NewBadges,
	})
}

type generateModuleRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// @Summary Generate a module
// @Description Asks the upstream for a structured lesson module as JSON
// @Tags chat
// @Accept json
// @Produce json
// @Param body body generateModuleRequest true "Topic"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /modules/generate [post]
func (c *ChatController) GenerateModule(ctx *gin.Context) {
	var req generateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Topic is required")
		return
	}

	module, err := c.Generation.GenerateModule(ctx.Request.Context(), req.Topic)
	if err != nil {
		msg := "Failed to generate module. Please try again."
		if errors.Is(err, util.ErrGenerationUnparsable) {
			msg = "Failed to parse AI response. Please try again."
		}
		ctx.JSON(http.StatusOK, gin.H{"success": false, "error": msg})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"module":  module,
		"message": "Successfully generated module: " + module.Title,
	})
}
