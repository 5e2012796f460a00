package services

import (
	"errors"
	"fmt"
	"time"

	"interview-prep-backend/internal/models"
	"interview-prep-backend/internal/store"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
)

type SessionService struct {
	catalog  *store.QuestionCatalog
	sessions *store.SessionStore
	scoring  *ScoringService
}

func NewSessionService(catalog *store.QuestionCatalog, sessions *store.SessionStore, scoring *ScoringService) *SessionService {
	return &SessionService{catalog: catalog, sessions: sessions, scoring: scoring}
}

// CreateSession starts a practice session scoped to a level and domain.
// Neither value is validated against the catalog; an unknown combination
// simply yields no questions to practice.
func (s *SessionService) CreateSession(level, domain string) models.Session {
	session := &models.Session{
		ID:        generateSessionID(),
		Level:     level,
		Domain:    domain,
		Answers:   make([]models.Answer, 0),
		StartTime: time.Now(),
	}
	s.sessions.Insert(session)
	snap, _ := s.sessions.Get(session.ID)
	return snap
}

func (s *SessionService) GetSession(id string) (models.Session, error) {
	session, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) ListSessions() []models.Session {
	return s.sessions.All()
}

// SubmitAnswer scores a free-text answer and records it on the session:
// the answer is appended, the awarded points are added to the running total,
// and the question index advances by one. The whole step is atomic; on any
// error the session is left unchanged.
func (s *SessionService) SubmitAnswer(sessionID string, questionID int, userAnswer string, timeSpent float64) (models.Session, models.Answer, error) {
	var answer models.Answer
	session, err := s.sessions.Mutate(sessionID, func(sess *models.Session) error {
		question, ok := s.catalog.Get(questionID)
		if !ok {
			return ErrQuestionNotFound
		}
		isCorrect, points := s.scoring.Score(question, userAnswer)
		answer = models.Answer{
			QuestionID: questionID,
			UserAnswer: userAnswer,
			IsCorrect:  isCorrect,
			Points:     points,
			TimeSpent:  timeSpent,
		}
		sess.Answers = append(sess.Answers, answer)
		sess.TotalScore += answer.Points
		sess.CurrentQuestionIndex++
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = ErrSessionNotFound
		}
		return models.Session{}, models.Answer{}, err
	}
	return session, answer, nil
}

// UpdateSession merges the set fields of update into the stored session.
func (s *SessionService) UpdateSession(id string, update models.SessionUpdate) (models.Session, error) {
	session, err := s.sessions.Mutate(id, func(sess *models.Session) error {
		if update.Level != nil {
			sess.Level = *update.Level
		}
		if update.Domain != nil {
			sess.Domain = *update.Domain
		}
		if update.EndTime != nil {
			sess.EndTime = update.EndTime
		}
		return nil
	})
	if err != nil {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// generateSessionID returns ids of the form session_<unix-seconds>_<token>.
// The random token keeps ids distinct when sessions are created within the
// same second.
func generateSessionID() string {
	token := uuid.NewString()[:8]
	return fmt.Sprintf("session_%d_%s", time.Now().Unix(), token)
}
