package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trivia-hub/trivia-service/internal/services"
	"github.com/trivia-hub/trivia-service/internal/utils"
)

type QuestionHandler struct {
	BaseHandler
	questionService services.QuestionService
	importExport    services.ImportExportService
}

func NewQuestionHandler(
	questionService services.QuestionService,
	importExport services.ImportExportService,
	logger utils.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
		importExport:    importExport,
	}
}

// SearchQuestionsRequest is the POST /questions payload. A missing
// searchTerm key is a validation failure, never a silent create.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Page       *int    `json:"page"`
}

// ListQuestions returns one page of questions, the unpaginated total
// and the full category map.
// GET /questions?page=1
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := h.parseIntQuery(c, "page", 1)
	h.LogRequest(c, "Listing questions", "page", page)

	response, err := h.questionService.List(c.Request.Context(), page)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateQuestion persists a new question and returns its assigned id.
// PUT /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	h.LogRequest(c, "Creating question")

	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	id, err := h.questionService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
	})
}

// DeleteQuestion removes a question permanently.
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting question", "question_id", id)

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SearchQuestions returns every question whose text contains the
// search term as a substring, paginated.
// POST /questions
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	if req.SearchTerm == nil {
		h.RespondWithError(c, http.StatusBadRequest, "searchTerm is required", nil)
		return
	}

	page := 1
	if req.Page != nil {
		page = *req.Page
	}

	h.LogRequest(c, "Searching questions", "search_term", *req.SearchTerm, "page", page)

	response, err := h.questionService.Search(c.Request.Context(), *req.SearchTerm, page)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExportQuestions streams the full question set as a CSV or Excel
// download.
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	h.LogRequest(c, "Exporting questions", "format", format)

	switch format {
	case "csv":
		data, err := h.importExport.ExportQuestionsToCSV(c.Request.Context())
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="questions.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx":
		data, err := h.importExport.ExportQuestionsToExcel(c.Request.Context())
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="questions.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		h.RespondWithError(c, http.StatusBadRequest, "format must be csv or xlsx", nil)
	}
}

// ImportQuestions bulk-loads questions from an uploaded CSV or Excel
// file and reports per-row failures.
// POST /questions/import
func (h *QuestionHandler) ImportQuestions(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "file upload is required", err)
		return
	}

	h.LogRequest(c, "Importing questions", "filename", fileHeader.Filename)

	file, err := fileHeader.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "failed to open uploaded file", err)
		return
	}
	defer file.Close()

	result, err := h.importExport.ImportQuestionsFromFile(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
