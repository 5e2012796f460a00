package handlers

import (
	"errors"
	"log"
	"net/http"

	"interview-prep-backend/internal/models"
	"interview-prep-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type CreateSessionRequest struct {
	Level  string `json:"level" example:"fresher"`
	Domain string `json:"domain" example:"JavaScript"`
}

type SubmitAnswerRequest struct {
	QuestionID int     `json:"questionId" example:"1"`
	UserAnswer string  `json:"userAnswer" example:"let and const are block scoped, var is function scoped"`
	TimeSpent  float64 `json:"timeSpent" example:"30"`
}

type SubmitAnswerResponse struct {
	Session Session `json:"session"`
	Answer  Answer  `json:"answer"`
}

// CreateSession godoc
// @Summary      Create a practice session
// @Description  Start a new practice session scoped to a level and domain
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body CreateSessionRequest true "Session scope"
// @Success      200 {object} Session
// @Failure      500 {object} ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	session := h.sessions.CreateSession(req.Level, req.Domain)
	c.JSON(http.StatusOK, session)
}

// ListSessions godoc
// @Summary      List all sessions
// @Tags         sessions
// @Produce      json
// @Success      200 {array} Session
// @Router       /api/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.ListSessions())
}

// GetSession godoc
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} Session
// @Failure      404 {object} ErrorResponse
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitAnswer godoc
// @Summary      Submit an answer
// @Description  Score a free-text answer, record it and advance the session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id      path string              true "Session ID"
// @Param        request body SubmitAnswerRequest true "Answer"
// @Success      200 {object} SubmitAnswerResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/sessions/{id}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	session, answer, err := h.sessions.SubmitAnswer(c.Param("id"), req.QuestionID, req.UserAnswer, req.TimeSpent)
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
	case errors.Is(err, services.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Question not found"})
	case err != nil:
		log.Printf("submit answer: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	default:
		c.JSON(http.StatusOK, SubmitAnswerResponse{Session: session, Answer: answer})
	}
}

// UpdateSession godoc
// @Summary      Update a session
// @Description  Partially update a session's level, domain or end time
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id      path string               true "Session ID"
// @Param        request body models.SessionUpdate true "Fields to update"
// @Success      200 {object} Session
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/sessions/{id} [put]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var req models.SessionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessions.UpdateSession(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}
