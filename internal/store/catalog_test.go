package store

import (
	"reflect"
	"testing"

	"interview-prep-backend/internal/models"
)

func TestList_NoFilterReturnsFullCatalog(t *testing.T) {
	catalog := NewQuestionCatalog(DefaultQuestions)

	questions := catalog.List(QuestionFilter{})
	if len(questions) != len(DefaultQuestions) {
		t.Fatalf("expected %d questions, got %d", len(DefaultQuestions), len(questions))
	}
	for i, q := range questions {
		if q.ID != DefaultQuestions[i].ID {
			t.Errorf("catalog order not preserved at %d: got id %d", i, q.ID)
		}
	}
}

func TestList_EveryEntryFindableByItsOwnScope(t *testing.T) {
	catalog := NewQuestionCatalog(DefaultQuestions)

	for _, want := range DefaultQuestions {
		questions := catalog.List(QuestionFilter{Level: want.Level, Domain: want.Domain})
		found := false
		for _, q := range questions {
			if q.ID == want.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("question %d missing from its own level/domain listing", want.ID)
		}
	}
}

func TestList_DomainSentinelsDisableFilter(t *testing.T) {
	catalog := NewQuestionCatalog(DefaultQuestions)

	unfiltered := catalog.List(QuestionFilter{Level: models.LevelFresher})
	for _, sentinel := range []string{"all", "ALL", "all domains", "ALL DOMAINS", "All Domains"} {
		got := catalog.List(QuestionFilter{Level: models.LevelFresher, Domain: sentinel})
		if !reflect.DeepEqual(got, unfiltered) {
			t.Errorf("domain %q: expected sentinel to disable the domain filter", sentinel)
		}
	}
}

func TestList_DomainCaseInsensitive(t *testing.T) {
	catalog := NewQuestionCatalog(DefaultQuestions)

	lower := catalog.List(QuestionFilter{Domain: "javascript"})
	exact := catalog.List(QuestionFilter{Domain: "JavaScript"})
	if len(lower) == 0 || !reflect.DeepEqual(lower, exact) {
		t.Errorf("domain filter should be case-insensitive: %d vs %d results", len(lower), len(exact))
	}
}

func TestList_LevelCaseSensitive(t *testing.T) {
	catalog := NewQuestionCatalog(DefaultQuestions)

	if got := catalog.List(QuestionFilter{Level: "Fresher"}); len(got) != 0 {
		t.Errorf("level filter should be exact, got %d results for %q", len(got), "Fresher")
	}
}

func TestList_UnknownValuesYieldEmptySlice(t *testing.T) {
	catalog := NewQuestionCatalog(DefaultQuestions)

	got := catalog.List(QuestionFilter{Domain: "Basket Weaving"})
	if got == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestGet(t *testing.T) {
	catalog := NewQuestionCatalog(DefaultQuestions)

	q, ok := catalog.Get(1)
	if !ok || q.ID != 1 {
		t.Errorf("expected question 1, got ok=%v id=%d", ok, q.ID)
	}
	if _, ok := catalog.Get(9999); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestDomainsAndLevels(t *testing.T) {
	catalog := NewQuestionCatalog(DefaultQuestions)

	wantDomains := []string{"JavaScript", "React", "Python", "Database", "System Design"}
	if got := catalog.Domains(); !reflect.DeepEqual(got, wantDomains) {
		t.Errorf("domains: got %v", got)
	}
	wantLevels := []string{models.LevelFresher, models.LevelExperienced}
	if got := catalog.Levels(); !reflect.DeepEqual(got, wantLevels) {
		t.Errorf("levels: got %v", got)
	}
}
