package model

import "time"

// DefaultUserID is the shared anonymous identity used when a request carries
// no authenticated token and no explicit user id.
const DefaultUserID = "default"

type QuizScore struct {
	Score int       `json:"score"`
	Total int       `json:"total"`
	Date  time.Time `json:"date"`
}

type ChapterProgress struct {
	CompletedChallenges map[string]bool `json:"completed_challenges"`
	Completed           bool            `json:"completed"`
}

// UserProgress is the only mutable entity in the engine. It is owned by the
// ProgressStore; callers outside the store only ever see snapshots.
type UserProgress struct {
	ID                 string                      `json:"id"`
	XP                 int                         `json:"xp"`
	Level              int                         `json:"level"`
	CompletedLessons   map[string]bool             `json:"completed_lessons"`
	Badges             map[string]bool             `json:"badges"`
	Chapters           map[string]*ChapterProgress `json:"chapters"`
	QuizScores         map[string]QuizScore        `json:"quiz_scores"`
	ChatCount          int                         `json:"ai_chat_count"`
	CorrectAnswers     int                         `json:"correct_answers"`
	ContractsExplained int                         `json:"contracts_explained"`
	CreatedAt          time.Time                   `json:"created_at"`
	LastActive         time.Time                   `json:"last_active"`
}

func NewUserProgress(id string) *UserProgress {
	now := time.Now()
	return &UserProgress{
		ID:               id,
		XP:               0,
		Level:            1,
		CompletedLessons: make(map[string]bool),
		Badges:           make(map[string]bool),
		Chapters:         make(map[string]*ChapterProgress),
		QuizScores:       make(map[string]QuizScore),
		CreatedAt:        now,
		LastActive:       now,
	}
}

func (p *UserProgress) Chapter(chapterID string) *ChapterProgress {
	cp, ok := p.Chapters[chapterID]
	if !ok {
		cp = &ChapterProgress{CompletedChallenges: make(map[string]bool)}
		p.Chapters[chapterID] = cp
	}
	return cp
}

// Clone returns a deep copy safe to hand out after the store's per-user lock
// is released.
func (p *UserProgress) Clone() *UserProgress {
	c := *p
	c.CompletedLessons = make(map[string]bool, len(p.CompletedLessons))
	for k, v := range p.CompletedLessons {
		c.CompletedLessons[k] = v
	}
	c.Badges = make(map[string]bool, len(p.Badges))
	for k, v := range p.Badges {
		c.Badges[k] = v
	}
	c.QuizScores = make(map[string]QuizScore, len(p.QuizScores))
	for k, v := range p.QuizScores {
		c.QuizScores[k] = v
	}
	c.Chapters = make(map[string]*ChapterProgress, len(p.Chapters))
	for k, v := range p.Chapters {
		cc := &ChapterProgress{
			Completed:           v.Completed,
			CompletedChallenges: make(map[string]bool, len(v.CompletedChallenges)),
		}
		for ck, cv := range v.CompletedChallenges {
			cc.CompletedChallenges[ck] = cv
		}
		c.Chapters[k] = cc
	}
	return &c
}
