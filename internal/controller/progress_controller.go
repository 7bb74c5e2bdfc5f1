package controller

import (
	"chainquest_backend/internal/middleware"
	"chainquest_backend/internal/service"
	"chainquest_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progression *service.ProgressionService
}

func NewProgressController(progression *service.ProgressionService) *ProgressController {
	return &ProgressController{Progression: progression}
}

type completeLessonRequest struct {
	UserID string `json:"user_id"`
}

// @Summary Complete a lesson
// @Description Marks the lesson completed and grants its XP reward at most once
// @Tags progress
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Param body body completeLessonRequest false "Caller identity"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /lessons/{lessonId}/complete [post]
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	var req completeLessonRequest
	ctx.ShouldBindJSON(&req)
	userID := middleware.ResolveUserID(ctx, req.UserID)

	result, err := c.Progression.CompleteLesson(userID, ctx.Param("lessonId"))
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, "Lesson not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":           true,
		"already_completed": result.AlreadyCompleted,
		"xp_earned":         result.XPEarned,
		"total_xp":          result.TotalXP,
		"level":             result.Level,
		"leveled_up":        result.LeveledUp,
		"new_badges":        result.NewBadges,
	})
}

type submitQuizRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
	Answers  []int  `json:"answers"`
	UserID   string `json:"userId"`
}

// @Summary Submit a quiz
// @Description Grades the submission; a passing score grants a flat XP bonus
// @Tags progress
// @Accept json
// @Produce json
// @Param body body submitQuizRequest true "Quiz submission"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /quiz/submit [post]
func (c *ProgressController) SubmitQuiz(ctx *gin.Context) {
	var req submitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	userID := middleware.ResolveUserID(ctx, req.UserID)

	result, err := c.Progression.SubmitQuiz(userID, req.LessonID, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) || errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"score":      result.Score,
		"total":      result.Total,
		"percentage": result.Percentage,
		"passed":     result.Passed,
		"results":    result.Results,
		"xp_earned":  result.XPEarned,
		"leveled_up": result.LeveledUp,
		"new_badges": result.NewBadges,
	})
}

// @Summary User stats
// @Description Full progress snapshot plus the badge catalog
// @Tags progress
// @Produce json
// @Param user_id query string false "User ID (defaults to the anonymous record)"
// @Success 200 {object} map[string]interface{}
// @Router /user/stats [get]
func (c *ProgressController) GetUserStats(ctx *gin.Context) {
	userID := middleware.ResolveUserID(ctx, "")
	ctx.JSON(http.StatusOK, gin.H{"stats": c.Progression.UserStats(userID)})
}

// @Summary Record a contract explanation
// @Description Grants explanation XP and the code_scholar badge on the first one
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /explainer/record [post]
func (c *ProgressController) RecordExplanation(ctx *gin.Context) {
	var req completeLessonRequest
	ctx.ShouldBindJSON(&req)
	userID := middleware.ResolveUserID(ctx, req.UserID)

	result, err := c.Progression.RecordCodeExplanation(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"explanation_count": result.ExplanationCount,
		"xp_earned":         result.XPEarned,
		"leveled_up":        result.LeveledUp,
		"new_level":         result.NewLevel,
		"new_badges":        result.NewBadges,
	})
}
