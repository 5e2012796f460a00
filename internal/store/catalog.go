package store

import (
	"strings"

	"interview-prep-backend/internal/models"
)

// QuestionFilter narrows a catalog listing. Zero values mean no filter.
type QuestionFilter struct {
	Level  string
	Domain string
}

// QuestionCatalog is the fixed, read-only set of interview questions loaded
// at process start.
type QuestionCatalog struct {
	questions []models.Question
}

func NewQuestionCatalog(questions []models.Question) *QuestionCatalog {
	return &QuestionCatalog{questions: questions}
}

// List returns the questions matching every set filter, in catalog order.
// Level matches are exact; domain matches are case-insensitive. The domain
// values "all" and "all domains" (any case) disable the domain filter, so
// clients can always send their current dropdown selection.
func (c *QuestionCatalog) List(filter QuestionFilter) []models.Question {
	domain := strings.ToLower(filter.Domain)
	byDomain := domain != "" && domain != "all" && domain != "all domains"

	result := make([]models.Question, 0, len(c.questions))
	for _, q := range c.questions {
		if filter.Level != "" && q.Level != filter.Level {
			continue
		}
		if byDomain && strings.ToLower(q.Domain) != domain {
			continue
		}
		result = append(result, q)
	}
	return result
}

func (c *QuestionCatalog) Get(id int) (models.Question, bool) {
	for _, q := range c.questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// Domains lists the distinct question domains in catalog order.
func (c *QuestionCatalog) Domains() []string {
	seen := make(map[string]bool)
	domains := make([]string, 0)
	for _, q := range c.questions {
		if !seen[q.Domain] {
			seen[q.Domain] = true
			domains = append(domains, q.Domain)
		}
	}
	return domains
}

func (c *QuestionCatalog) Levels() []string {
	return []string{models.LevelFresher, models.LevelExperienced}
}
