package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trivia-hub/trivia-service/internal/services"
	"github.com/trivia-hub/trivia-service/internal/utils"
)

type QuizHandler struct {
	BaseHandler
	quizService services.QuizService
}

func NewQuizHandler(quizService services.QuizService, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: NewBaseHandler(logger),
		quizService: quizService,
	}
}

// QuizCategory selects which category to draw from; id 0 means all.
type QuizCategory struct {
	ID uint `json:"id"`
}

// NextQuizQuestionRequest is the POST /quizzes payload. The client
// accumulates previous_questions across calls; nothing is stored
// server-side.
type NextQuizQuestionRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []uint        `json:"previous_questions"`
}

// NextQuizQuestion returns one random unseen question from the chosen
// category, or a null question once the category is exhausted.
// POST /quizzes
func (h *QuizHandler) NextQuizQuestion(c *gin.Context) {
	var req NextQuizQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	if req.QuizCategory == nil {
		h.RespondWithError(c, http.StatusBadRequest, "quiz_category is required", nil)
		return
	}

	h.LogRequest(c, "Selecting quiz question",
		"category_id", req.QuizCategory.ID,
		"previous_count", len(req.PreviousQuestions))

	question, err := h.quizService.NextQuestion(c.Request.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	// question is nil once every candidate has been served; the null
	// body is the terminal signal for the client-side session.
	c.JSON(http.StatusOK, gin.H{"question": question})
}
