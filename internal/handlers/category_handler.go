package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trivia-hub/trivia-service/internal/services"
	"github.com/trivia-hub/trivia-service/internal/utils"
)

type CategoryHandler struct {
	BaseHandler
	categoryService services.CategoryService
	questionService services.QuestionService
}

func NewCategoryHandler(
	categoryService services.CategoryService,
	questionService services.QuestionService,
	logger utils.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     NewBaseHandler(logger),
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategoryTypes returns the category labels in store order.
// GET /
func (h *CategoryHandler) ListCategoryTypes(c *gin.Context) {
	h.LogRequest(c, "Listing category types")

	types, err := h.categoryService.ListTypes(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": types})
}

// ListCategories returns the id-to-type category map.
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	h.LogRequest(c, "Listing categories")

	categories, err := h.categoryService.ListMap(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListCategoryQuestions returns one page of the category's questions.
// GET /categories/:id/questions?page=1
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}
	page := h.parseIntQuery(c, "page", 1)

	h.LogRequest(c, "Listing category questions", "category_id", id, "page", page)

	response, err := h.questionService.ListByCategory(c.Request.Context(), id, page)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
