package handlers

import "interview-prep-backend/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"Session not found"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Backend is running"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type Session = models.Session
type Answer = models.Answer
