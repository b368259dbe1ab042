package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trivia-hub/trivia-service/internal/services"
	"github.com/trivia-hub/trivia-service/internal/utils"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse is the uniform failure body for every route.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse builds the failure body for the given status code.
func NewErrorResponse(statusCode int, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   statusCode,
		Message: message,
	}
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides logging and the shared error-to-status policy
// for all handlers.
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a new base handler with logging capability
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// LogRequest logs incoming HTTP requests with context information
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"remote_addr", c.ClientIP(),
		"request_id", c.GetHeader("X-Request-ID"),
	}
	fields = append(fields, additionalFields...)

	h.logger.Info(message, fields...)
}

// LogError logs error details with context information
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"request_id", c.GetHeader("X-Request-ID"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	fields = append(fields, additionalFields...)

	h.logger.LogError(err, message, fields...)
}

// RespondWithError sends the uniform failure body and logs it.
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		h.LogError(c, err, message, "status_code", statusCode)
	}
	c.JSON(statusCode, NewErrorResponse(statusCode, message))
}

// handleServiceError maps a service failure onto the fixed status
// policy: validation 400, not-found 404, invalid page 422, anything
// else 500. Internal detail never reaches the client on the 500 path.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.RespondWithError(c, http.StatusBadRequest, validationErrors.Error(), nil)
		return
	}

	var validationError *services.ValidationError
	if errors.As(err, &validationError) {
		h.RespondWithError(c, http.StatusBadRequest, validationError.Error(), nil)
		return
	}

	switch {
	case services.IsInvalidPage(err):
		h.RespondWithError(c, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, services.ErrQuestionNotFound):
		h.RespondWithError(c, http.StatusNotFound, "Question not found", nil)
	case errors.Is(err, services.ErrCategoryNotFound):
		h.RespondWithError(c, http.StatusNotFound, "Category not found", nil)
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, "Resource not found", nil)
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError,
			NewErrorResponse(http.StatusInternalServerError, "An error occurred while processing the request"))
	}
}

// parseIDParam parses a positive integer path parameter; on failure it
// writes the 404 response and returns 0.
func (h *BaseHandler) parseIDParam(c *gin.Context, param string) uint {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.RespondWithError(c, http.StatusNotFound, "Invalid "+param, err)
		return 0
	}
	return uint(id)
}

// parseIntQuery parses an integer query parameter with a default.
func (h *BaseHandler) parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
