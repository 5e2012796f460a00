package store

import (
	"errors"
	"testing"
	"time"

	"interview-prep-backend/internal/models"
)

func testSession(id string, start time.Time) *models.Session {
	return &models.Session{
		ID:        id,
		Level:     models.LevelFresher,
		Domain:    "JavaScript",
		Answers:   make([]models.Answer, 0),
		StartTime: start,
	}
}

func TestSessionStore_GetMissing(t *testing.T) {
	s := NewSessionStore()

	if _, err := s.Get("session_1_nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_InsertAndGet(t *testing.T) {
	s := NewSessionStore()
	s.Insert(testSession("session_1_aaaa", time.Now()))

	got, err := s.Get("session_1_aaaa")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "session_1_aaaa" {
		t.Errorf("wrong session returned: %q", got.ID)
	}
	if got.Answers == nil {
		t.Error("answers should stay a non-nil slice through snapshots")
	}
}

func TestSessionStore_GetReturnsSnapshot(t *testing.T) {
	s := NewSessionStore()
	s.Insert(testSession("session_1_aaaa", time.Now()))

	got, _ := s.Get("session_1_aaaa")
	got.TotalScore = 99
	got.Answers = append(got.Answers, models.Answer{QuestionID: 1, Points: 99})

	fresh, _ := s.Get("session_1_aaaa")
	if fresh.TotalScore != 0 || len(fresh.Answers) != 0 {
		t.Errorf("mutating a snapshot leaked into the store: %#v", fresh)
	}
}

func TestSessionStore_MutateCommitsOnSuccess(t *testing.T) {
	s := NewSessionStore()
	s.Insert(testSession("session_1_aaaa", time.Now()))

	updated, err := s.Mutate("session_1_aaaa", func(sess *models.Session) error {
		sess.Answers = append(sess.Answers, models.Answer{QuestionID: 3, Points: 6, IsCorrect: true})
		sess.TotalScore += 6
		sess.CurrentQuestionIndex++
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if updated.TotalScore != 6 || updated.CurrentQuestionIndex != 1 {
		t.Errorf("mutation result not returned: %#v", updated)
	}

	stored, _ := s.Get("session_1_aaaa")
	if stored.TotalScore != 6 || len(stored.Answers) != 1 {
		t.Errorf("mutation not visible to later readers: %#v", stored)
	}
}

func TestSessionStore_MutateErrorDiscardsChanges(t *testing.T) {
	s := NewSessionStore()
	s.Insert(testSession("session_1_aaaa", time.Now()))

	failed := errors.New("scoring failed")
	_, err := s.Mutate("session_1_aaaa", func(sess *models.Session) error {
		sess.TotalScore = 50
		sess.Answers = append(sess.Answers, models.Answer{QuestionID: 1})
		return failed
	})
	if !errors.Is(err, failed) {
		t.Fatalf("expected the closure error back, got %v", err)
	}

	stored, _ := s.Get("session_1_aaaa")
	if stored.TotalScore != 0 || len(stored.Answers) != 0 {
		t.Errorf("failed mutation left changes behind: %#v", stored)
	}
}

func TestSessionStore_MutateMissing(t *testing.T) {
	s := NewSessionStore()

	_, err := s.Mutate("session_1_nope", func(*models.Session) error { return nil })
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_AllOldestFirst(t *testing.T) {
	s := NewSessionStore()
	base := time.Now()
	s.Insert(testSession("session_3_cccc", base.Add(2*time.Second)))
	s.Insert(testSession("session_1_aaaa", base))
	s.Insert(testSession("session_2_bbbb", base.Add(time.Second)))

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}
	want := []string{"session_1_aaaa", "session_2_bbbb", "session_3_cccc"}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, all[i].ID)
		}
	}
}
