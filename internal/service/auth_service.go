package service

import (
	"chainquest_backend/internal/config"
	"chainquest_backend/internal/model"
	"chainquest_backend/internal/util"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Provider endpoints, vars so tests can point them at a local stub.
var (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// AuthService wraps the external identity provider (Google OAuth) and issues
// internal signed session tokens. Sessions are client-held JWTs; the server
// tracks nothing, so logout is a stateless acknowledgment.
type AuthService struct {
	Cfg    *config.Config
	client *http.Client
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		Cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthURL builds the provider authorization URL the frontend redirects to.
func (s *AuthService) AuthURL() (string, error) {
	if s.Cfg.OAuth.ClientID == "" {
		return "", util.ErrOAuthNotConfigured
	}

	params := url.Values{}
	params.Set("client_id", s.Cfg.OAuth.ClientID)
	params.Set("redirect_uri", s.Cfg.OAuth.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")

	return googleAuthURL + "?" + params.Encode(), nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeCode trades an authorization code for provider tokens, fetches the
// user's profile, and issues an internal session token.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (string, *model.AuthUser, error) {
	if s.Cfg.OAuth.ClientID == "" || s.Cfg.OAuth.ClientSecret == "" {
		return "", nil, util.ErrOAuthNotConfigured
	}

	form := url.Values{}
	form.Set("client_id", s.Cfg.OAuth.ClientID)
	form.Set("client_secret", s.Cfg.OAuth.ClientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", s.Cfg.OAuth.RedirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil || token.AccessToken == "" {
		return "", nil, util.ErrTokenExchangeFailed
	}

	user, err := s.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return "", nil, err
	}

	sessionToken, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return sessionToken, user, nil
}

func (s *AuthService) fetchUserInfo(ctx context.Context, accessToken string) (*model.AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed (status %d)", resp.StatusCode)
	}

	var user model.AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Verify parses and validates a session token.
func (s *AuthService) Verify(token string) (*util.Claims, error) {
	return util.ParseJWT(token, s.Cfg.JWT.Secret)
}
