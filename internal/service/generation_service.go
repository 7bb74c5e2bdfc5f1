package service

import (
	"bytes"
	"chainquest_backend/internal/config"
	"chainquest_backend/internal/model"
	"chainquest_backend/internal/util"
	"chainquest_backend/pkg/logger"
	"chainquest_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const tutorSystemPrompt = `You are ChainQuest Academy's AI Teaching Assistant.

You are an expert blockchain educator who helps students learn about:
- Blockchain fundamentals (consensus, cryptography, distributed systems)
- Cryptocurrency and tokenomics
- Smart contracts and Solidity
- DeFi protocols and strategies
- NFTs and digital ownership
- Web3 development

Teaching Style:
- Use simple analogies for complex concepts
- Provide real-world examples
- Be encouraging and supportive
- Keep responses concise but informative
- Use emojis sparingly to keep it engaging

Always stay on topic about blockchain and Web3. If asked about unrelated topics, gently redirect to blockchain education.`

// ChatFallbackMessage is the user-visible reply when every generation
// credential has failed. Chat never surfaces a raw error to the UI.
const ChatFallbackMessage = "I encountered an issue processing your request. Let me help you with blockchain basics instead. What would you like to learn about?"

// GenerationService calls the text-completion upstream. Credentials are tried
// in order (primary, then backup); the first success wins and an exhausted
// list yields ErrGenerationFailed. Each attempt runs under a bounded timeout.
// The shared http.Client is never mutated after construction; the timeout is
// applied per attempt from the snapshotted config, so UpdateConfig is safe
// while requests are in flight.
type GenerationService struct {
	mu     sync.RWMutex
	cfg    config.GenerationConfig
	client *http.Client
}

func NewGenerationService(cfg config.GenerationConfig) *GenerationService {
	return &GenerationService{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// UpdateConfig swaps credentials at runtime (config hot reload).
func (s *GenerationService) UpdateConfig(cfg config.GenerationConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

func (s *GenerationService) snapshot() config.GenerationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt through the credential fallback chain and returns
// the generated text.
func (s *GenerationService) Complete(ctx context.Context, prompt string) (string, error) {
	cfg := s.snapshot()

	keys := []string{}
	if cfg.APIKey != "" {
		keys = append(keys, cfg.APIKey)
	}
	if cfg.BackupAPIKey != "" {
		keys = append(keys, cfg.BackupAPIKey)
	}
	if len(keys) == 0 {
		return "", util.ErrGenerationFailed
	}

	var lastErr error
	for i, key := range keys {
		text, err := s.generate(ctx, cfg, key, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if i == 0 && len(keys) > 1 {
			monitoring.GenerationFallbacks.Inc()
			logger.Log.Warn("primary generation credential failed, trying backup", zap.Error(err))
		}
	}

	logger.Log.Error("all generation credentials failed", zap.Error(lastErr))
	return "", util.ErrGenerationFailed
}

func (s *GenerationService) generate(ctx context.Context, cfg config.GenerationConfig, apiKey, prompt string) (string, error) {
	if cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	body := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", cfg.BaseURL, cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("generation API error: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation API returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Chat answers a student question with the fixed tutor system prompt.
func (s *GenerationService) Chat(ctx context.Context, message string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nStudent's question: %s\n\nPlease provide a helpful, educational response:", tutorSystemPrompt, message)
	return s.Complete(ctx, prompt)
}

const generateModulePromptTemplate = `Generate a learning module about "%s" for a blockchain/crypto education platform.

Return a JSON object with this exact structure:
{
  "id": "unique-id-based-on-topic",
  "title": "Module Title",
  "description": "Brief description of what the learner will learn",
  "icon": "one of: cube, wallet, code, chart, coins, shield",
  "color": "one of: from-blue-500 to-cyan-500, from-purple-500 to-pink-500, from-green-500 to-emerald-500, from-orange-500 to-red-500",
  "lessons": [
    {
      "id": "lesson-1-id",
      "title": "Lesson Title",
      "duration": "X min",
      "xp": 20,
      "content": "Markdown content explaining the concept with headers, bullet points, and examples",
      "quiz": [
        {
          "question": "Quiz question?",
          "options": ["Option A", "Option B", "Option C", "Option D"],
          "correct": 0
        }
      ]
    }
  ]
}

Create 2-3 lessons with 1-2 quiz questions each. Make the content educational and engaging.
Only return valid JSON, no markdown code blocks or extra text.`

// GenerateModule asks the upstream for a structured module. The model is told
// not to wrap the JSON in code fences, but any fences that show up are
// stripped before parsing. Parse failures are not retried.
func (s *GenerationService) GenerateModule(ctx context.Context, topic string) (*model.GeneratedModule, error) {
	text, err := s.Complete(ctx, fmt.Sprintf(generateModulePromptTemplate, topic))
	if err != nil {
		return nil, err
	}

	var generated model.GeneratedModule
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &generated); err != nil {
		logger.Log.Warn("generated module is not valid JSON", zap.Error(err))
		return nil, util.ErrGenerationUnparsable
	}

	generated.Progress = &model.ModuleProgress{Completed: 0, Total: len(generated.Lessons), Percentage: 0}
	return &generated, nil
}

// StripCodeFences removes markdown code-fence wrapping that models add
// despite instructions.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
