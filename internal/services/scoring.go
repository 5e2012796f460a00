package services

import (
	"strings"

	"interview-prep-backend/internal/models"
)

// matchThreshold is the fraction of reference keywords that must appear in a
// user answer for it to count as correct.
const matchThreshold = 0.4

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score grades a free-text answer against the question's reference answer by
// keyword overlap. Keywords are the whitespace tokens of the lowercased
// reference longer than three characters, duplicates kept; a keyword counts
// as matched when it appears anywhere in the lowercased user answer as a
// substring. Full points on a match ratio at or above the threshold,
// zero otherwise.
func (s *ScoringService) Score(question models.Question, userAnswer string) (bool, int) {
	reference := strings.ToLower(question.CorrectAnswer)
	answer := strings.ToLower(userAnswer)

	var keyWords, matching int
	for _, word := range strings.Fields(reference) {
		if len(word) <= 3 {
			continue
		}
		keyWords++
		if strings.Contains(answer, word) {
			matching++
		}
	}

	if keyWords == 0 {
		return false, 0
	}
	if float64(matching)/float64(keyWords) >= matchThreshold {
		return true, question.Points
	}
	return false, 0
}
