package controller

import (
	"chainquest_backend/internal/config"
	"chainquest_backend/internal/service"
	"chainquest_backend/internal/util"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *service.AuthService
	Cfg  *config.Config
}

func NewAuthController(auth *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Auth: auth, Cfg: cfg}
}

// @Summary Begin Google sign-in
// @Description Returns the provider authorization URL
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/google [get]
func (c *AuthController) GoogleAuthURL(ctx *gin.Context) {
	authURL, err := c.Auth.AuthURL()
	if err != nil {
		util.Error(ctx, http.StatusInternalServerError, "OAuth not configured")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"auth_url": authURL})
}

type callbackRequest struct {
	Code string `json:"code" binding:"required"`
}

// @Summary Complete Google sign-in
// @Description Exchanges the authorization code and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body callbackRequest true "Authorization code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /auth/google/callback [post]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	var req callbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "No authorization code provided")
		return
	}

	token, user, err := c.Auth.ExchangeCode(ctx.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrOAuthNotConfigured):
			util.Error(ctx, http.StatusInternalServerError, "OAuth not configured")
		case errors.Is(err, util.ErrTokenExchangeFailed):
			util.BadRequest(ctx, "Failed to exchange code for token")
		default:
			util.Error(ctx, http.StatusInternalServerError, "Authentication failed")
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// GoogleCallbackRedirect handles the browser redirect leg: Google sends the
// code here, and we bounce it to the frontend which POSTs it back.
func (c *AuthController) GoogleCallbackRedirect(ctx *gin.Context) {
	frontend := c.Cfg.OAuth.FrontendURL

	if errParam := ctx.Query("error"); errParam != "" {
		ctx.Redirect(http.StatusFound, frontend+"/login?error="+url.QueryEscape(errParam))
		return
	}

	code := ctx.Query("code")
	if code == "" {
		ctx.Redirect(http.StatusFound, frontend+"/login?error=no_code")
		return
	}

	ctx.Redirect(http.StatusFound, frontend+"/auth/callback?code="+url.QueryEscape(code))
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":      claims.UserID,
			"email":   claims.Email,
			"name":    claims.Name,
			"picture": claims.Picture,
		},
	})
}

// @Summary Logout
// @Description Sessions are client-held signed tokens; nothing to revoke
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
