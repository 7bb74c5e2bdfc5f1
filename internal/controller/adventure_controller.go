package controller

import (
	"chainquest_backend/internal/middleware"
	"chainquest_backend/internal/model"
	"chainquest_backend/internal/service"
	"chainquest_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdventureController struct {
	Progression *service.ProgressionService
}

func NewAdventureController(progression *service.ProgressionService) *AdventureController {
	return &AdventureController{Progression: progression}
}

type chapterUserProgress struct {
	CompletedChallenges []string `json:"completed_challenges"`
	TotalChallenges     int      `json:"total_challenges"`
}

func challengeIDs(cp *model.ChapterProgress, chapter *model.Chapter) []string {
	ids := []string{}
	if cp == nil {
		return ids
	}
	// Catalog order, so replays render deterministically.
	for _, c := range chapter.Challenges {
		if cp.CompletedChallenges[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// @Summary List adventures
// @Description All chapters with the caller's unlock state and progress
// @Tags adventures
// @Produce json
// @Param user_id query string false "User ID (defaults to the anonymous record)"
// @Success 200 {object} map[string]interface{}
// @Router /adventures [get]
func (c *AdventureController) GetAdventures(ctx *gin.Context) {
	userID := middleware.ResolveUserID(ctx, "")
	progress := c.Progression.Store.Get(userID)

	all := c.Progression.Catalog.Chapters()
	out := make([]gin.H, len(all))
	for i := range all {
		chapter := &all[i]
		cp := progress.Chapters[chapter.ID]
		completed := cp != nil && cp.Completed
		out[i] = gin.H{
			"id":           chapter.ID,
			"title":        chapter.Title,
			"description":  chapter.Description,
			"icon":         chapter.Icon,
			"color":        chapter.Color,
			"unlocked":     c.Progression.ChapterUnlocked(progress, i),
			"completed":    completed,
			"completion_xp": chapter.CompletionXP,
			"user_progress": chapterUserProgress{
				CompletedChallenges: challengeIDs(cp, chapter),
				TotalChallenges:     len(chapter.Challenges),
			},
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"adventures": out})
}

// @Summary Get adventure
// @Tags adventures
// @Produce json
// @Param chapterId path string true "Chapter ID"
// @Param user_id query string false "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /adventures/{chapterId} [get]
func (c *AdventureController) GetAdventure(ctx *gin.Context) {
	chapter, _, err := c.Progression.Catalog.ChapterByID(ctx.Param("chapterId"))
	if err != nil {
		util.NotFound(ctx, "Adventure not found")
		return
	}

	userID := middleware.ResolveUserID(ctx, "")
	progress := c.Progression.Store.Get(userID)
	cp := progress.Chapters[chapter.ID]

	ctx.JSON(http.StatusOK, gin.H{
		"adventure": gin.H{
			"id":               chapter.ID,
			"title":            chapter.Title,
			"description":      chapter.Description,
			"icon":             chapter.Icon,
			"color":            chapter.Color,
			"intro":            chapter.Intro,
			"conclusion":       chapter.Conclusion,
			"challenges":       chapter.Challenges,
			"completion_xp":    chapter.CompletionXP,
			"completion_badge": chapter.CompletionBadge,
			"user_progress": chapterUserProgress{
				CompletedChallenges: challengeIDs(cp, chapter),
				TotalChallenges:     len(chapter.Challenges),
			},
		},
	})
}

type answerChallengeRequest struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	Answer      *int   `json:"answer" binding:"required"`
	UserID      string `json:"user_id"`
}

// @Summary Answer a challenge
// @Description Resolves one challenge; per-challenge XP and the chapter
// completion bonus are each granted at most once
// @Tags adventures
// @Accept json
// @Produce json
// @Param chapterId path string true "Chapter ID"
// @Param body body answerChallengeRequest true "Answer"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /adventures/{chapterId}/answer [post]
func (c *AdventureController) AnswerChallenge(ctx *gin.Context) {
	var req answerChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	userID := middleware.ResolveUserID(ctx, req.UserID)

	result, err := c.Progression.AnswerChallenge(userID, ctx.Param("chapterId"), req.ChallengeID, *req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrChapterNotFound):
			util.NotFound(ctx, "Adventure not found")
		case errors.Is(err, util.ErrChallengeNotFound):
			util.NotFound(ctx, "Challenge not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"correct":          result.Correct,
		"feedback":         result.Feedback,
		"xp_earned":        result.XPEarned,
		"chapter_complete": result.ChapterComplete,
		"completion_xp":    result.CompletionXP,
		"new_badges":       result.NewBadges,
		"leveled_up":       result.LeveledUp,
	})
}
