package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trivia-hub/trivia-service/internal/models"
	"github.com/trivia-hub/trivia-service/internal/services"
	"github.com/trivia-hub/trivia-service/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Function-field stubs let each test pin down exactly the service
// behaviour the route under test should observe.

type stubQuestionService struct {
	ListFunc           func(ctx context.Context, page int) (*services.QuestionListResponse, error)
	CreateFunc         func(ctx context.Context, req *services.CreateQuestionRequest) (uint, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	SearchFunc         func(ctx context.Context, term string, page int) (*services.SearchResponse, error)
	ListByCategoryFunc func(ctx context.Context, categoryID uint, page int) (*services.CategoryQuestionsResponse, error)
}

func (s *stubQuestionService) List(ctx context.Context, page int) (*services.QuestionListResponse, error) {
	return s.ListFunc(ctx, page)
}

func (s *stubQuestionService) Create(ctx context.Context, req *services.CreateQuestionRequest) (uint, error) {
	return s.CreateFunc(ctx, req)
}

func (s *stubQuestionService) Delete(ctx context.Context, id uint) error {
	return s.DeleteFunc(ctx, id)
}

func (s *stubQuestionService) Search(ctx context.Context, term string, page int) (*services.SearchResponse, error) {
	return s.SearchFunc(ctx, term, page)
}

func (s *stubQuestionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*services.CategoryQuestionsResponse, error) {
	return s.ListByCategoryFunc(ctx, categoryID, page)
}

type stubCategoryService struct {
	ListTypesFunc func(ctx context.Context) ([]string, error)
	ListMapFunc   func(ctx context.Context) (map[string]string, error)
}

func (s *stubCategoryService) ListTypes(ctx context.Context) ([]string, error) {
	return s.ListTypesFunc(ctx)
}

func (s *stubCategoryService) ListMap(ctx context.Context) (map[string]string, error) {
	return s.ListMapFunc(ctx)
}

type stubQuizService struct {
	NextQuestionFunc func(ctx context.Context, categoryID uint, previousIDs []uint) (*models.FormattedQuestion, error)
}

func (s *stubQuizService) NextQuestion(ctx context.Context, categoryID uint, previousIDs []uint) (*models.FormattedQuestion, error) {
	return s.NextQuestionFunc(ctx, categoryID, previousIDs)
}

type stubImportExportService struct {
	ImportFromFileFunc func(ctx context.Context, file multipart.File, filename string) (*services.ImportResult, error)
	ExportCSVFunc      func(ctx context.Context) ([]byte, error)
	ExportExcelFunc    func(ctx context.Context) ([]byte, error)
}

func (s *stubImportExportService) ImportQuestionsFromFile(ctx context.Context, file multipart.File, filename string) (*services.ImportResult, error) {
	return s.ImportFromFileFunc(ctx, file, filename)
}

func (s *stubImportExportService) ImportQuestionsFromCSV(ctx context.Context, reader io.Reader) (*services.ImportResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubImportExportService) ImportQuestionsFromExcel(ctx context.Context, reader io.Reader) (*services.ImportResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubImportExportService) ExportQuestionsToCSV(ctx context.Context) ([]byte, error) {
	return s.ExportCSVFunc(ctx)
}

func (s *stubImportExportService) ExportQuestionsToExcel(ctx context.Context) ([]byte, error) {
	return s.ExportExcelFunc(ctx)
}

type stubServiceManager struct {
	question     services.QuestionService
	category     services.CategoryService
	quiz         services.QuizService
	importExport services.ImportExportService
}

func (m *stubServiceManager) Question() services.QuestionService         { return m.question }
func (m *stubServiceManager) Category() services.CategoryService         { return m.category }
func (m *stubServiceManager) Quiz() services.QuizService                 { return m.quiz }
func (m *stubServiceManager) ImportExport() services.ImportExportService { return m.importExport }

// newTestRouter wires the stubbed services through the real route
// table so tests exercise the same registrations production uses.
func newTestRouter(manager *stubServiceManager) *gin.Engine {
	router := gin.New()
	NewHandlerManager(manager, testLogger()).SetupRoutes(router)
	return router
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func httptestRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// assertErrorBody checks the uniform failure body: success false and
// the error field repeating the HTTP status code.
func assertErrorBody(t *testing.T, recorder *httptest.ResponseRecorder, wantStatus int) ErrorResponse {
	t.Helper()
	require.Equal(t, wantStatus, recorder.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, wantStatus, body.Error)
	assert.NotEmpty(t, body.Message)
	return body
}
