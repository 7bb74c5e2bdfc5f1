package repository

import (
	"errors"
	"sync"
	"testing"

	"chainquest_backend/internal/model"
)

func TestStoreLazyCreation(t *testing.T) {
	s := NewMemoryProgressStore()

	p := s.Get("fresh")
	if p.ID != "fresh" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.XP != 0 || p.Level != 1 {
		t.Errorf("fresh progress: xp=%d level=%d", p.XP, p.Level)
	}
	if p.CompletedLessons == nil || p.Badges == nil || p.Chapters == nil || p.QuizScores == nil {
		t.Error("fresh progress has nil maps")
	}
}

func TestStoreGetReturnsSnapshot(t *testing.T) {
	s := NewMemoryProgressStore()

	p := s.Get("u1")
	p.XP = 999
	p.CompletedLessons["x"] = true

	if live := s.Get("u1"); live.XP != 0 || len(live.CompletedLessons) != 0 {
		t.Errorf("mutating a snapshot leaked into the store: %+v", live)
	}
}

func TestStoreUpdatePersists(t *testing.T) {
	s := NewMemoryProgressStore()

	err := s.Update("u1", func(p *model.UserProgress) error {
		p.XP = 42
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	p := s.Get("u1")
	if p.XP != 42 {
		t.Errorf("XP = %d, want 42", p.XP)
	}
	if p.LastActive.Before(p.CreatedAt) {
		t.Error("LastActive predates CreatedAt")
	}
}

func TestStoreUpdateErrorPassthrough(t *testing.T) {
	s := NewMemoryProgressStore()

	sentinel := errors.New("boom")
	if err := s.Update("u1", func(p *model.UserProgress) error { return sentinel }); err != sentinel {
		t.Errorf("err = %v, want sentinel", err)
	}
}

func TestStoreConcurrentUpdatesSameUser(t *testing.T) {
	s := NewMemoryProgressStore()

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update("u1", func(p *model.UserProgress) error {
				p.XP++
				return nil
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if p := s.Get("u1"); p.XP != n {
		t.Errorf("XP = %d, want %d", p.XP, n)
	}
}

func TestStoreConcurrentDistinctUsers(t *testing.T) {
	s := NewMemoryProgressStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%26))
			err := s.Update(id, func(p *model.UserProgress) error {
				p.ChatCount++
				return nil
			})
			if err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}

func TestChapterAccessorLazyInit(t *testing.T) {
	p := model.NewUserProgress("u1")

	cp := p.Chapter("chapter_1")
	if cp == nil || cp.CompletedChallenges == nil {
		t.Fatal("Chapter returned uninitialized progress")
	}
	cp.CompletedChallenges["ch1_q1"] = true

	if again := p.Chapter("chapter_1"); !again.CompletedChallenges["ch1_q1"] {
		t.Error("Chapter did not return the same record on second call")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := model.NewUserProgress("u1")
	p.Badges["b"] = true
	p.Chapter("chapter_1").CompletedChallenges["ch1_q1"] = true

	c := p.Clone()
	c.Badges["other"] = true
	c.Chapter("chapter_1").CompletedChallenges["ch1_q2"] = true

	if p.Badges["other"] {
		t.Error("clone shares the badge map")
	}
	if p.Chapter("chapter_1").CompletedChallenges["ch1_q2"] {
		t.Error("clone shares chapter progress")
	}
}
