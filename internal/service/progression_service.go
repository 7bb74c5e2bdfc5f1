package service

import (
	"chainquest_backend/internal/model"
	"chainquest_backend/internal/repository"
	"chainquest_backend/internal/util"
	"chainquest_backend/pkg/monitoring"
	"math"
	"time"
)

// test seam for quiz score timestamps
var timeNow = time.Now

// XPPerLevel is the flat XP cost of every level.
const XPPerLevel = 100

// QuizPassPercent is the grading threshold; passing grants QuizPassXP as a
// flat bonus regardless of score above the threshold.
const (
	QuizPassPercent = 70
	QuizPassXP      = 10
)

// ExplainXP is granted for every contract explanation recorded.
const ExplainXP = 30

// Badge trigger thresholds.
const (
	quizMasterCorrectAnswers = 5
	curiousMindChatCount     = 10
)

// Level derives the level tier from cumulative XP. Negative XP is invalid
// input; the engine itself never produces it since all deltas are positive.
func Level(xp int) (int, error) {
	if xp < 0 {
		return 0, util.ErrNegativeXP
	}
	return xp/XPPerLevel + 1, nil
}

// LevelProgress is the display-only progress toward the next level.
type LevelProgress struct {
	Current    int `json:"current"`
	Needed     int `json:"needed"`
	Percentage int `json:"percentage"`
}

func ProgressForXP(xp int) LevelProgress {
	current := xp % XPPerLevel
	return LevelProgress{
		Current:    current,
		Needed:     XPPerLevel,
		Percentage: int(math.Round(float64(current) / float64(XPPerLevel) * 100)),
	}
}

// ProgressionService converts events (lesson completed, quiz submitted,
// challenge answered, chat message sent) into XP, level and badge mutations.
// All rules are evaluated inside a single ProgressStore.Update, so each
// operation is atomic per user.
type ProgressionService struct {
	Catalog *repository.CatalogRepository
	Store   repository.ProgressStore
}

func NewProgressionService(catalog *repository.CatalogRepository, store repository.ProgressStore) *ProgressionService {
	return &ProgressionService{Catalog: catalog, Store: store}
}

type XPResult struct {
	TotalXP   int  `json:"total_xp"`
	LeveledUp bool `json:"leveled_up"`
	NewLevel  int  `json:"new_level"`
}

// awardXP mutates p in place. Callers are responsible for gating: the award
// itself is not idempotent.
func awardXP(p *model.UserProgress, amount int) (XPResult, error) {
	if amount <= 0 {
		return XPResult{}, util.ErrInvalidXPAmount
	}
	before := p.Level
	p.XP += amount
	p.Level = p.XP/XPPerLevel + 1
	monitoring.XPAwarded.Add(float64(amount))
	return XPResult{
		TotalXP:   p.XP,
		LeveledUp: p.Level > before,
		NewLevel:  p.Level,
	}, nil
}

// AwardXP grants a positive XP amount and recomputes the level from scratch,
// so XP and level can never desynchronize.
func (s *ProgressionService) AwardXP(userID string, amount int) (XPResult, error) {
	var res XPResult
	err := s.Store.Update(userID, func(p *model.UserProgress) error {
		var err error
		res, err = awardXP(p, amount)
		return err
	})
	return res, err
}

// awardBadge adds the badge to the user's set if absent. No XP side effect:
// badge XP rewards are display values only, uniformly across all award paths.
func (s *ProgressionService) awardBadge(p *model.UserProgress, badgeID string, newBadges *[]model.Badge) {
	if p.Badges[badgeID] {
		return
	}
	badge, err := s.Catalog.BadgeByID(badgeID)
	if err != nil {
		return
	}
	p.Badges[badgeID] = true
	monitoring.BadgesAwarded.Inc()
	if newBadges != nil {
		*newBadges = append(*newBadges, *badge)
	}
}

type BadgeAwardResult struct {
	AlreadyHad bool        `json:"already_had"`
	Badge      model.Badge `json:"badge"`
}

// AwardBadge is idempotent: a badge, once awarded, is never revoked and never
// duplicated.
func (s *ProgressionService) AwardBadge(userID, badgeID string) (BadgeAwardResult, error) {
	badge, err := s.Catalog.BadgeByID(badgeID)
	if err != nil {
		return BadgeAwardResult{}, err
	}
	var res BadgeAwardResult
	err = s.Store.Update(userID, func(p *model.UserProgress) error {
		res.Badge = *badge
		if p.Badges[badgeID] {
			res.AlreadyHad = true
			return nil
		}
		p.Badges[badgeID] = true
		monitoring.BadgesAwarded.Inc()
		return nil
	})
	return res, err
}

type LessonCompletionResult struct {
	AlreadyCompleted bool          `json:"already_completed"`
	XPEarned         int           `json:"xp_earned"`
	TotalXP          int           `json:"total_xp"`
	Level            int           `json:"level"`
	LeveledUp        bool          `json:"leveled_up"`
	NewBadges        []model.Badge `json:"new_badges"`
}

// CompleteLesson marks a lesson completed and grants its XP reward at most
// once per (user, lesson), however many times it is called.
func (s *ProgressionService) CompleteLesson(userID, lessonID string) (LessonCompletionResult, error) {
	lesson, _, err := s.Catalog.LessonByID(lessonID)
	if err != nil {
		return LessonCompletionResult{}, err
	}

	var res LessonCompletionResult
	err = s.Store.Update(userID, func(p *model.UserProgress) error {
		if p.CompletedLessons[lessonID] {
			res = LessonCompletionResult{
				AlreadyCompleted: true,
				TotalXP:          p.XP,
				Level:            p.Level,
			}
			return nil
		}

		// Award before inserting so a failed award leaves no mutation.
		xp, err := awardXP(p, lesson.XP)
		if err != nil {
			return err
		}
		p.CompletedLessons[lessonID] = true

		newBadges := []model.Badge{}
		if len(p.CompletedLessons) == 1 {
			s.awardBadge(p, "first_lesson", &newBadges)
		}
		for _, m := range s.Catalog.Modules() {
			badgeID := s.Catalog.ModuleBadgeID(m.ID)
			if badgeID == "" {
				continue
			}
			done := 0
			for _, l := range m.Lessons {
				if p.CompletedLessons[l.ID] {
					done++
				}
			}
			if done == len(m.Lessons) {
				s.awardBadge(p, badgeID, &newBadges)
			}
		}

		res = LessonCompletionResult{
			XPEarned:  lesson.XP,
			TotalXP:   xp.TotalXP,
			Level:     xp.NewLevel,
			LeveledUp: xp.LeveledUp,
			NewBadges: newBadges,
		}
		return nil
	})
	return res, err
}

type QuestionResult struct {
	Question      string `json:"question"`
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correctAnswer"`
	UserAnswer    int    `json:"userAnswer"`
}

type QuizResult struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
	Passed     bool             `json:"passed"`
	Results    []QuestionResult `json:"results"`
	XPEarned   int              `json:"xp_earned"`
	LeveledUp  bool             `json:"leveled_up"`
	NewBadges  []model.Badge    `json:"new_badges"`
}

// SubmitQuiz grades the submission and, on a passing score, grants the flat
// pass bonus. Unlike lesson completion there is no duplicate gate: every
// passing resubmission re-grants the bonus.
func (s *ProgressionService) SubmitQuiz(userID, lessonID string, answers []int) (QuizResult, error) {
	lesson, _, err := s.Catalog.LessonByID(lessonID)
	if err != nil {
		return QuizResult{}, err
	}
	if len(lesson.Quiz) == 0 {
		return QuizResult{}, util.ErrQuizNotFound
	}

	score := 0
	results := make([]QuestionResult, len(lesson.Quiz))
	for i, q := range lesson.Quiz {
		// Missing or out-of-range answers grade as incorrect, never error.
		answer := -1
		if i < len(answers) {
			answer = answers[i]
		}
		correct := answer == q.Correct
		if correct {
			score++
		}
		results[i] = QuestionResult{
			Question:      q.Question,
			Correct:       correct,
			CorrectAnswer: q.Correct,
			UserAnswer:    answer,
		}
	}

	total := len(lesson.Quiz)
	percentage := int(math.Round(float64(score) / float64(total) * 100))
	passed := percentage >= QuizPassPercent

	res := QuizResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Passed:     passed,
		Results:    results,
		NewBadges:  []model.Badge{},
	}

	err = s.Store.Update(userID, func(p *model.UserProgress) error {
		p.QuizScores[lessonID] = model.QuizScore{Score: score, Total: total, Date: timeNow()}
		p.CorrectAnswers += score

		if passed {
			xp, err := awardXP(p, QuizPassXP)
			if err != nil {
				return err
			}
			res.XPEarned = QuizPassXP
			res.LeveledUp = xp.LeveledUp
		}

		if score == total {
			s.awardBadge(p, "perfect_quiz", &res.NewBadges)
		}
		if p.CorrectAnswers >= quizMasterCorrectAnswers {
			s.awardBadge(p, "quiz_master", &res.NewBadges)
		}
		return nil
	})
	return res, err
}

type ChallengeResult struct {
	Correct         bool          `json:"correct"`
	Feedback        string        `json:"feedback"`
	XPEarned        int           `json:"xp_earned"`
	ChapterComplete bool          `json:"chapter_complete"`
	CompletionXP    int           `json:"completion_xp"`
	NewBadges       []model.Badge `json:"new_badges"`
	LeveledUp       bool          `json:"leveled_up"`
}

// AnswerChallenge resolves one adventure challenge. Per-challenge XP is
// at-most-once. ChapterComplete reports the completion transition only on the
// call that causes it; replaying a challenge after the chapter is complete
// still reports correctness but grants nothing.
func (s *ProgressionService) AnswerChallenge(userID, chapterID, challengeID string, choice int) (ChallengeResult, error) {
	chapter, _, err := s.Catalog.ChapterByID(chapterID)
	if err != nil {
		return ChallengeResult{}, err
	}
	challenge, err := s.Catalog.ChallengeByID(chapterID, challengeID)
	if err != nil {
		return ChallengeResult{}, err
	}

	var res ChallengeResult
	err = s.Store.Update(userID, func(p *model.UserProgress) error {
		cp := p.Chapter(chapterID)
		res = ChallengeResult{NewBadges: []model.Badge{}}
		res.Correct = choice == challenge.Correct
		if res.Correct {
			res.Feedback = challenge.Success
		} else {
			res.Feedback = challenge.Failure
		}

		if res.Correct && !cp.CompletedChallenges[challengeID] {
			cp.CompletedChallenges[challengeID] = true
			xp, err := awardXP(p, challenge.XPReward)
			if err != nil {
				return err
			}
			res.XPEarned = challenge.XPReward
			res.LeveledUp = xp.LeveledUp
		}

		if len(cp.CompletedChallenges) == len(chapter.Challenges) && !cp.Completed {
			cp.Completed = true
			xp, err := awardXP(p, chapter.CompletionXP)
			if err != nil {
				return err
			}
			res.ChapterComplete = true
			res.CompletionXP = chapter.CompletionXP
			res.LeveledUp = res.LeveledUp || xp.LeveledUp
			if chapter.CompletionBadge != nil {
				s.awardBadge(p, chapter.CompletionBadge.ID, &res.NewBadges)
			}
		}
		return nil
	})
	return res, err
}

// ChapterUnlocked is a read-only derivation: the first chapter is always
// unlocked, every later one requires the previous chapter's completed flag.
func (s *ProgressionService) ChapterUnlocked(p *model.UserProgress, index int) bool {
	if index == 0 {
		return true
	}
	all := s.Catalog.Chapters()
	if index < 0 || index >= len(all) {
		return false
	}
	prev, ok := p.Chapters[all[index-1].ID]
	return ok && prev.Completed
}

type ChatCountResult struct {
	ChatCount int           `json:"chat_count"`
	NewBadges []model.Badge `json:"new_badges"`
}

// RecordChatMessage bumps the chat counter. No XP is attached; the counter
// only feeds the curious_mind badge threshold.
func (s *ProgressionService) RecordChatMessage(userID string) (ChatCountResult, error) {
	var res ChatCountResult
	err := s.Store.Update(userID, func(p *model.UserProgress) error {
		p.ChatCount++
		res = ChatCountResult{ChatCount: p.ChatCount, NewBadges: []model.Badge{}}
		if p.ChatCount >= curiousMindChatCount {
			s.awardBadge(p, "curious_mind", &res.NewBadges)
		}
		return nil
	})
	return res, err
}

type ExplainResult struct {
	ExplanationCount int           `json:"explanation_count"`
	XPEarned         int           `json:"xp_earned"`
	LeveledUp        bool          `json:"leveled_up"`
	NewLevel         int           `json:"new_level"`
	NewBadges        []model.Badge `json:"new_badges"`
}

// RecordCodeExplanation grants flat XP per contract explained and the
// code_scholar badge on the first one.
func (s *ProgressionService) RecordCodeExplanation(userID string) (ExplainResult, error) {
	var res ExplainResult
	err := s.Store.Update(userID, func(p *model.UserProgress) error {
		p.ContractsExplained++
		xp, err := awardXP(p, ExplainXP)
		if err != nil {
			return err
		}
		res = ExplainResult{
			ExplanationCount: p.ContractsExplained,
			XPEarned:         ExplainXP,
			LeveledUp:        xp.LeveledUp,
			NewLevel:         xp.NewLevel,
			NewBadges:        []model.Badge{},
		}
		if p.ContractsExplained == 1 {
			s.awardBadge(p, "code_scholar", &res.NewBadges)
		}
		return nil
	})
	return res, err
}

// ModuleProgressFor summarizes a user's completion of one module.
func (s *ProgressionService) ModuleProgressFor(p *model.UserProgress, m *model.Module) model.ModuleProgress {
	done := 0
	for _, l := range m.Lessons {
		if p.CompletedLessons[l.ID] {
			done++
		}
	}
	total := len(m.Lessons)
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(done) / float64(total) * 100))
	}
	return model.ModuleProgress{Completed: done, Total: total, Percentage: pct}
}

type UserStats struct {
	XP               int                        `json:"xp"`
	Level            int                        `json:"level"`
	LevelProgress    LevelProgress              `json:"level_progress"`
	Badges           []model.Badge              `json:"badges"`
	CompletedLessons int                        `json:"completed_lessons"`
	QuizScores       map[string]model.QuizScore `json:"quiz_scores"`
	ChatCount        int                        `json:"ai_chat_count"`
	CorrectAnswers   int                        `json:"correct_answers"`
	AllBadges        []model.Badge              `json:"all_badges"`
}

// UserStats assembles the full progress snapshot plus the badge catalog so
// clients can render locked vs earned.
func (s *ProgressionService) UserStats(userID string) UserStats {
	p := s.Store.Get(userID)

	earned := []model.Badge{}
	for _, b := range s.Catalog.Badges() {
		if p.Badges[b.ID] {
			earned = append(earned, b)
		}
	}

	return UserStats{
		XP:               p.XP,
		Level:            p.Level,
		LevelProgress:    ProgressForXP(p.XP),
		Badges:           earned,
		CompletedLessons: len(p.CompletedLessons),
		QuizScores:       p.QuizScores,
		ChatCount:        p.ChatCount,
		CorrectAnswers:   p.CorrectAnswers,
		AllBadges:        s.Catalog.Badges(),
	}
}
