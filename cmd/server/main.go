package main

import (
	"log"

	"interview-prep-backend/internal/config"
	"interview-prep-backend/internal/handlers"
	"interview-prep-backend/internal/services"
	"interview-prep-backend/internal/store"

	_ "interview-prep-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Interview Prep API
// @version         1.0
// @description     Practice-session API serving interview questions with keyword-based answer scoring
// @host            localhost:8000
// @BasePath        /

func main() {
	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := store.NewQuestionCatalog(store.DefaultQuestions)
	sessionStore := store.NewSessionStore()

	scoringService := services.NewScoringService()
	sessionService := services.NewSessionService(catalog, sessionStore, scoringService)

	questionHandler := handlers.NewQuestionHandler(catalog)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/questions", questionHandler.ListQuestions)
		api.GET("/domains", questionHandler.ListDomains)

		sessions := api.Group("/sessions")
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.PUT("/:id", sessionHandler.UpdateSession)
			sessions.POST("/:id/answers", sessionHandler.SubmitAnswer)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
