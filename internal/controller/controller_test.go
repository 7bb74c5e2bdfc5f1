package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chainquest_backend/internal/config"
	"chainquest_backend/internal/middleware"
	"chainquest_backend/internal/model"
	"chainquest_backend/internal/repository"
	"chainquest_backend/internal/service"
	"chainquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const testJWTSecret = "controller-test-secret"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.ExpireTime = time.Hour

	catalog := repository.NewCatalogRepository()
	store := repository.NewMemoryProgressStore()
	progression := service.NewProgressionService(catalog, store)
	generation := service.NewGenerationService(config.GenerationConfig{TimeoutSeconds: 1})

	content := NewContentController(progression)
	progress := NewProgressController(progression)
	adventure := NewAdventureController(progression)
	chat := NewChatController(generation, progression)
	health := NewHealthController(catalog)

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.TryAuthMiddleware(cfg))
	{
		api.GET("/health", health.HealthCheck)
		api.GET("/modules", content.GetModules)
		api.GET("/modules/:moduleId", content.GetModule)
		api.GET("/lessons/:lessonId", content.GetLesson)
		api.POST("/lessons/:lessonId/complete", progress.CompleteLesson)
		api.POST("/quiz/submit", progress.SubmitQuiz)
		api.GET("/adventures", adventure.GetAdventures)
		api.GET("/adventures/:chapterId", adventure.GetAdventure)
		api.POST("/adventures/:chapterId/answer", adventure.AnswerChallenge)
		api.GET("/user/stats", progress.GetUserStats)
		api.POST("/chat", chat.Chat)
		api.POST("/explainer/record", progress.RecordExplanation)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("invalid JSON response: %v\n%s", err, w.Body.String())
		}
	}
	return w, parsed
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()
	w, body := doJSON(t, router, http.MethodGet, "/api/health", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["status"] != "healthy" {
		t.Errorf("body = %v", body)
	}
}

func TestGetModulesIncludesProgress(t *testing.T) {
	router := newTestRouter()
	w, body := doJSON(t, router, http.MethodGet, "/api/modules", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	modules := body["modules"].([]interface{})
	if len(modules) != 4 {
		t.Fatalf("module count = %d", len(modules))
	}
	first := modules[0].(map[string]interface{})
	if _, ok := first["progress"]; !ok {
		t.Error("module missing progress summary")
	}
}

func TestGetModuleNotFound(t *testing.T) {
	router := newTestRouter()
	w, body := doJSON(t, router, http.MethodGet, "/api/modules/nope", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if body["error"] != "Module not found" {
		t.Errorf("body = %v", body)
	}
}

func TestGetLessonIncludesModuleID(t *testing.T) {
	router := newTestRouter()
	w, body := doJSON(t, router, http.MethodGet, "/api/lessons/defi-1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["module_id"] != "defi" {
		t.Errorf("body = %v", body)
	}
}

func TestCompleteLessonFlow(t *testing.T) {
	router := newTestRouter()

	w, body := doJSON(t, router, http.MethodPost, "/api/lessons/blockchain-1/complete",
		gin.H{"user_id": "u1"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["xp_earned"].(float64) != 20 || body["already_completed"].(bool) {
		t.Errorf("first completion: %v", body)
	}

	_, body = doJSON(t, router, http.MethodPost, "/api/lessons/blockchain-1/complete",
		gin.H{"user_id": "u1"}, nil)
	if !body["already_completed"].(bool) || body["xp_earned"].(float64) != 0 {
		t.Errorf("duplicate completion: %v", body)
	}

	w, body = doJSON(t, router, http.MethodPost, "/api/lessons/nope/complete", nil, nil)
	if w.Code != http.StatusNotFound || body["error"] != "Lesson not found" {
		t.Errorf("unknown lesson: %d %v", w.Code, body)
	}
}

func TestSubmitQuizEndpoint(t *testing.T) {
	router := newTestRouter()

	w, body := doJSON(t, router, http.MethodPost, "/api/quiz/submit",
		gin.H{"lessonId": "blockchain-1", "answers": []int{1, 1}, "userId": "u1"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["passed"] != true || body["xp_earned"].(float64) != 10 {
		t.Errorf("pass: %v", body)
	}
	for _, key := range []string{"score", "total", "percentage", "passed", "results", "xp_earned", "leveled_up", "new_badges"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing %q key: %v", key, body)
		}
	}

	w, body = doJSON(t, router, http.MethodPost, "/api/quiz/submit",
		gin.H{"answers": []int{1}}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing lessonId status = %d, body = %v", w.Code, body)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/quiz/submit",
		gin.H{"lessonId": "nope", "answers": []int{1}}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown lesson status = %d", w.Code)
	}
}

func TestAdventuresUnlockAnnotations(t *testing.T) {
	router := newTestRouter()

	_, body := doJSON(t, router, http.MethodGet, "/api/adventures?user_id=u1", nil, nil)
	adventures := body["adventures"].([]interface{})
	if len(adventures) != 3 {
		t.Fatalf("adventure count = %d", len(adventures))
	}
	first := adventures[0].(map[string]interface{})
	second := adventures[1].(map[string]interface{})
	if first["unlocked"] != true || second["unlocked"] != false {
		t.Errorf("unlock flags: first=%v second=%v", first["unlocked"], second["unlocked"])
	}

	for _, id := range []string{"ch1_q1", "ch1_q2", "ch1_q3"} {
		w, _ := doJSON(t, router, http.MethodPost, "/api/adventures/chapter_1/answer",
			gin.H{"challenge_id": id, "answer": 1, "user_id": "u1"}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("answer %s status = %d", id, w.Code)
		}
	}

	_, body = doJSON(t, router, http.MethodGet, "/api/adventures?user_id=u1", nil, nil)
	adventures = body["adventures"].([]interface{})
	first = adventures[0].(map[string]interface{})
	second = adventures[1].(map[string]interface{})
	if first["completed"] != true || second["unlocked"] != true {
		t.Errorf("after completing chapter 1: first=%v second=%v", first, second)
	}
}

func TestAnswerChallengeValidation(t *testing.T) {
	router := newTestRouter()

	// Answer index 0 is a legal choice; the pointer binding must accept it.
	w, body := doJSON(t, router, http.MethodPost, "/api/adventures/chapter_1/answer",
		gin.H{"challenge_id": "ch1_q1", "answer": 0}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", w.Code, body)
	}
	if body["correct"] != false {
		t.Errorf("zero answer graded: %v", body)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/adventures/chapter_1/answer",
		gin.H{"challenge_id": "ch1_q1"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing answer status = %d", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/adventures/chapter_9/answer",
		gin.H{"challenge_id": "ch1_q1", "answer": 1}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown chapter status = %d", w.Code)
	}
}

func TestUserStatsEndpoint(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/lessons/wallet-1/complete", gin.H{"user_id": "u1"}, nil)

	_, body := doJSON(t, router, http.MethodGet, "/api/user/stats?user_id=u1", nil, nil)
	stats := body["stats"].(map[string]interface{})
	if stats["xp"].(float64) != 20 {
		t.Errorf("stats: %v", stats)
	}
}

func TestChatFallsBackWithoutCredentials(t *testing.T) {
	router := newTestRouter()

	w, body := doJSON(t, router, http.MethodPost, "/api/chat",
		gin.H{"message": "what is a blockchain?"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["response"] != service.ChatFallbackMessage {
		t.Errorf("response = %v", body["response"])
	}
	if body["chat_count"].(float64) != 1 {
		t.Errorf("chat_count = %v", body["chat_count"])
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/chat", gin.H{}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing message status = %d", w.Code)
	}
}

func TestRecordExplanationEndpoint(t *testing.T) {
	router := newTestRouter()

	_, body := doJSON(t, router, http.MethodPost, "/api/explainer/record", gin.H{"user_id": "u1"}, nil)
	if body["xp_earned"].(float64) != 30 {
		t.Errorf("body = %v", body)
	}
	badges := body["new_badges"].([]interface{})
	if len(badges) != 1 {
		t.Errorf("badges = %v", badges)
	}
}

func TestAuthenticatedIdentityWinsOverBody(t *testing.T) {
	router := newTestRouter()

	token, err := util.GenerateJWT(&model.AuthUser{ID: "google-42", Email: "s@example.com"},
		testJWTSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	headers := map[string]string{"Authorization": "Bearer " + token}

	w, _ := doJSON(t, router, http.MethodPost, "/api/lessons/defi-1/complete",
		gin.H{"user_id": "someone-else"}, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	_, body := doJSON(t, router, http.MethodGet, "/api/user/stats", nil, headers)
	stats := body["stats"].(map[string]interface{})
	if stats["xp"].(float64) != 20 {
		t.Errorf("token identity stats: %v", stats)
	}

	// The body identity must have been ignored.
	_, body = doJSON(t, router, http.MethodGet, "/api/user/stats?user_id=someone-else", nil, nil)
	stats = body["stats"].(map[string]interface{})
	if stats["xp"].(float64) != 0 {
		t.Errorf("body identity stats: %v", stats)
	}
}

func TestAnonymousRequestsUseDefaultRecord(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/lessons/smart-contract-1/complete", nil, nil)

	_, body := doJSON(t, router, http.MethodGet, "/api/user/stats", nil, nil)
	stats := body["stats"].(map[string]interface{})
	if stats["xp"].(float64) != 20 {
		t.Errorf("default record stats: %v", stats)
	}
}
