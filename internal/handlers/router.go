package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/trivia-hub/trivia-service/internal/services"
	"github.com/trivia-hub/trivia-service/internal/utils"
)

type HandlerManager struct {
	questionHandler *QuestionHandler
	categoryHandler *CategoryHandler
	quizHandler     *QuizHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		questionHandler: NewQuestionHandler(serviceManager.Question(), serviceManager.ImportExport(), logger),
		categoryHandler: NewCategoryHandler(serviceManager.Category(), serviceManager.Question(), logger),
		quizHandler:     NewQuizHandler(serviceManager.Quiz(), logger),
	}
}

// CORSMiddleware permits cross-origin requests from any origin and
// advertises the allowed methods and request headers on all routes.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "Authorization"}
	return cors.New(config)
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.Use(CORSMiddleware())

	// Category routes
	router.GET("/", hm.categoryHandler.ListCategoryTypes)
	router.GET("/categories", hm.categoryHandler.ListCategories)
	router.GET("/categories/:id/questions", hm.categoryHandler.ListCategoryQuestions)

	// Question routes
	questions := router.Group("/questions")
	{
		questions.GET("", hm.questionHandler.ListQuestions)
		questions.PUT("", hm.questionHandler.CreateQuestion)
		questions.POST("", hm.questionHandler.SearchQuestions)
		questions.DELETE("/:id", hm.questionHandler.DeleteQuestion)

		questions.GET("/export", hm.questionHandler.ExportQuestions)
		questions.POST("/import", hm.questionHandler.ImportQuestions)
	}

	// Quiz routes
	router.POST("/quizzes", hm.quizHandler.NextQuizQuestion)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "trivia-service",
		})
	})
}
