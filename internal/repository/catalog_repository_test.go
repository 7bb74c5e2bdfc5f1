package repository

import (
	"testing"

	"chainquest_backend/internal/util"
)

func TestCatalogModules(t *testing.T) {
	r := NewCatalogRepository()

	modules := r.Modules()
	if len(modules) != 4 {
		t.Fatalf("module count = %d, want 4", len(modules))
	}

	m, err := r.ModuleByID("blockchain")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Lessons) != 3 {
		t.Errorf("blockchain lesson count = %d, want 3", len(m.Lessons))
	}

	if _, err := r.ModuleByID("nope"); err != util.ErrModuleNotFound {
		t.Errorf("unknown module err = %v", err)
	}
}

func TestCatalogLessonLookup(t *testing.T) {
	r := NewCatalogRepository()

	lesson, moduleID, err := r.LessonByID("wallet-1")
	if err != nil {
		t.Fatal(err)
	}
	if moduleID != "wallet" {
		t.Errorf("module for wallet-1 = %q", moduleID)
	}
	if lesson.XP != 20 {
		t.Errorf("wallet-1 XP = %d", lesson.XP)
	}
	if len(lesson.Quiz) == 0 {
		t.Error("wallet-1 has no quiz")
	}

	if _, _, err := r.LessonByID("nope"); err != util.ErrLessonNotFound {
		t.Errorf("unknown lesson err = %v", err)
	}
}

func TestCatalogChapters(t *testing.T) {
	r := NewCatalogRepository()

	chapters := r.Chapters()
	if len(chapters) != 3 {
		t.Fatalf("chapter count = %d, want 3", len(chapters))
	}

	for i, id := range []string{"chapter_1", "chapter_2", "chapter_3"} {
		ch, index, err := r.ChapterByID(id)
		if err != nil {
			t.Fatal(err)
		}
		if index != i {
			t.Errorf("%s index = %d, want %d", id, index, i)
		}
		if len(ch.Challenges) != 3 {
			t.Errorf("%s challenge count = %d", id, len(ch.Challenges))
		}
		if ch.CompletionBadge == nil {
			t.Errorf("%s has no completion badge", id)
		}
	}

	if _, _, err := r.ChapterByID("chapter_9"); err != util.ErrChapterNotFound {
		t.Errorf("unknown chapter err = %v", err)
	}
}

func TestCatalogChallengeLookup(t *testing.T) {
	r := NewCatalogRepository()

	c, err := r.ChallengeByID("chapter_2", "ch2_q3")
	if err != nil {
		t.Fatal(err)
	}
	if c.XPReward != 40 {
		t.Errorf("ch2_q3 XP = %d", c.XPReward)
	}

	if _, err := r.ChallengeByID("chapter_1", "ch2_q1"); err != util.ErrChallengeNotFound {
		t.Errorf("cross-chapter lookup err = %v", err)
	}
}

func TestCatalogBadges(t *testing.T) {
	r := NewCatalogRepository()

	if len(r.Badges()) != 10 {
		t.Errorf("badge count = %d, want 10", len(r.Badges()))
	}

	b, err := r.BadgeByID("first_lesson")
	if err != nil {
		t.Fatal(err)
	}
	if b.Name == "" {
		t.Error("first_lesson badge missing name")
	}

	if _, err := r.BadgeByID("nope"); err != util.ErrBadgeNotFound {
		t.Errorf("unknown badge err = %v", err)
	}

	if got := r.ModuleBadgeID("blockchain"); got != "blockchain_basics" {
		t.Errorf("blockchain module badge = %q", got)
	}
	if got := r.ModuleBadgeID("nope"); got != "" {
		t.Errorf("unknown module badge = %q", got)
	}
}
