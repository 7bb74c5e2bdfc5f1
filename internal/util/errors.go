package util

import "errors"

var (
	ErrModuleNotFound       = errors.New("module not found")
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrChapterNotFound      = errors.New("adventure not found")
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrBadgeNotFound        = errors.New("badge not found")
	ErrInvalidXPAmount      = errors.New("xp amount must be positive")
	ErrNegativeXP           = errors.New("xp must be non-negative")
	ErrGenerationFailed     = errors.New("all generation credentials failed")
	ErrGenerationUnparsable = errors.New("generation response is not valid JSON")
	ErrOAuthNotConfigured   = errors.New("oauth not configured")
	ErrTokenExchangeFailed  = errors.New("failed to exchange code for token")
)
