package repository

import (
	"chainquest_backend/internal/model"
	"chainquest_backend/internal/util"
)

// CatalogRepository serves the static content catalog. All lookups go through
// maps built once at construction; the underlying data is never mutated.
type CatalogRepository struct {
	modules  []model.Module
	chapters []model.Chapter
	badges   []model.Badge

	moduleByID  map[string]*model.Module
	lessonByID  map[string]*lessonEntry
	chapterByID map[string]*chapterEntry
	badgeByID   map[string]*model.Badge

	moduleBadges map[string]string
}

type lessonEntry struct {
	lesson   *model.Lesson
	moduleID string
}

type chapterEntry struct {
	chapter       *model.Chapter
	index         int
	challengeByID map[string]*model.Challenge
}

func NewCatalogRepository() *CatalogRepository {
	r := &CatalogRepository{
		modules:      modules,
		chapters:     chapters,
		badges:       badges,
		moduleByID:   make(map[string]*model.Module),
		lessonByID:   make(map[string]*lessonEntry),
		chapterByID:  make(map[string]*chapterEntry),
		badgeByID:    make(map[string]*model.Badge),
		moduleBadges: moduleBadges,
	}

	for i := range r.modules {
		m := &r.modules[i]
		r.moduleByID[m.ID] = m
		for j := range m.Lessons {
			r.lessonByID[m.Lessons[j].ID] = &lessonEntry{lesson: &m.Lessons[j], moduleID: m.ID}
		}
	}

	for i := range r.chapters {
		ch := &r.chapters[i]
		entry := &chapterEntry{chapter: ch, index: i, challengeByID: make(map[string]*model.Challenge)}
		for j := range ch.Challenges {
			entry.challengeByID[ch.Challenges[j].ID] = &ch.Challenges[j]
		}
		r.chapterByID[ch.ID] = entry
	}

	for i := range r.badges {
		r.badgeByID[r.badges[i].ID] = &r.badges[i]
	}

	return r
}

func (r *CatalogRepository) Modules() []model.Module {
	return r.modules
}

func (r *CatalogRepository) ModuleByID(id string) (*model.Module, error) {
	m, ok := r.moduleByID[id]
	if !ok {
		return nil, util.ErrModuleNotFound
	}
	return m, nil
}

// LessonByID returns the lesson and the id of its owning module.
func (r *CatalogRepository) LessonByID(id string) (*model.Lesson, string, error) {
	e, ok := r.lessonByID[id]
	if !ok {
		return nil, "", util.ErrLessonNotFound
	}
	return e.lesson, e.moduleID, nil
}

func (r *CatalogRepository) Chapters() []model.Chapter {
	return r.chapters
}

// ChapterByID returns the chapter and its position in the unlock order.
func (r *CatalogRepository) ChapterByID(id string) (*model.Chapter, int, error) {
	e, ok := r.chapterByID[id]
	if !ok {
		return nil, 0, util.ErrChapterNotFound
	}
	return e.chapter, e.index, nil
}

func (r *CatalogRepository) ChallengeByID(chapterID, challengeID string) (*model.Challenge, error) {
	e, ok := r.chapterByID[chapterID]
	if !ok {
		return nil, util.ErrChapterNotFound
	}
	c, ok := e.challengeByID[challengeID]
	if !ok {
		return nil, util.ErrChallengeNotFound
	}
	return c, nil
}

func (r *CatalogRepository) Badges() []model.Badge {
	return r.badges
}

func (r *CatalogRepository) BadgeByID(id string) (*model.Badge, error) {
	b, ok := r.badgeByID[id]
	if !ok {
		return nil, util.ErrBadgeNotFound
	}
	return b, nil
}

// ModuleBadgeID returns the badge awarded for finishing every lesson of the
// given module, or "" when the module has none.
func (r *CatalogRepository) ModuleBadgeID(moduleID string) string {
	return r.moduleBadges[moduleID]
}
