package handlers

import (
	"net/http"

	"interview-prep-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	catalog *store.QuestionCatalog
}

func NewQuestionHandler(catalog *store.QuestionCatalog) *QuestionHandler {
	return &QuestionHandler{catalog: catalog}
}

// ListQuestions godoc
// @Summary      List interview questions
// @Description  Filter by level and domain. A domain of "all" or "all domains" returns every domain.
// @Tags         questions
// @Produce      json
// @Param        level  query string false "Level (fresher or experienced)"
// @Param        domain query string false "Domain, case-insensitive"
// @Success      200 {array} Question
// @Router       /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions := h.catalog.List(store.QuestionFilter{
		Level:  c.Query("level"),
		Domain: c.Query("domain"),
	})
	c.JSON(http.StatusOK, questions)
}

// ListDomains godoc
// @Summary      List available domains and levels
// @Tags         questions
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/domains [get]
func (h *QuestionHandler) ListDomains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"domains": h.catalog.Domains(),
		"levels":  h.catalog.Levels(),
	})
}
