package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trivia-hub/trivia-service/internal/models"
	"github.com/trivia-hub/trivia-service/internal/services"
)

func TestQuestionHandler_ListQuestions(t *testing.T) {
	t.Run("returns current page with totals", func(t *testing.T) {
		questionStub := &stubQuestionService{
			ListFunc: func(ctx context.Context, page int) (*services.QuestionListResponse, error) {
				assert.Equal(t, 2, page)
				return &services.QuestionListResponse{
					Questions: []*models.FormattedQuestion{
						{ID: 11, Question: "Q?", Answer: "A", Category: 1, Difficulty: 3},
					},
					TotalQuestions: 11,
					Categories:     map[string]string{"1": "Science"},
				}, nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		req := httptestRequest(t, http.MethodGet, "/questions?page=2", nil)
		recorder := performRequest(router, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Questions      []models.FormattedQuestion `json:"questions"`
			TotalQuestions int                        `json:"total_questions"`
			Categories     map[string]string          `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Len(t, body.Questions, 1)
		assert.Equal(t, 11, body.TotalQuestions)
		assert.Equal(t, map[string]string{"1": "Science"}, body.Categories)
	})

	t.Run("page beyond the collection end", func(t *testing.T) {
		questionStub := &stubQuestionService{
			ListFunc: func(ctx context.Context, page int) (*services.QuestionListResponse, error) {
				return nil, services.ErrInvalidPage
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		recorder := performRequest(router, httptestRequest(t, http.MethodGet, "/questions?page=0", nil))

		assertErrorBody(t, recorder, http.StatusUnprocessableEntity)
	})

	t.Run("missing page defaults to one", func(t *testing.T) {
		var gotPage int
		questionStub := &stubQuestionService{
			ListFunc: func(ctx context.Context, page int) (*services.QuestionListResponse, error) {
				gotPage = page
				return &services.QuestionListResponse{}, nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		performRequest(router, httptestRequest(t, http.MethodGet, "/questions", nil))

		assert.Equal(t, 1, gotPage)
	})
}

func TestQuestionHandler_CreateQuestion(t *testing.T) {
	t.Run("created question id is returned", func(t *testing.T) {
		questionStub := &stubQuestionService{
			CreateFunc: func(ctx context.Context, req *services.CreateQuestionRequest) (uint, error) {
				require.NotNil(t, req.Question)
				assert.Equal(t, "What is the largest lake in Africa?", *req.Question)
				return 24, nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		payload := `{"question":"What is the largest lake in Africa?","answer":"Lake Victoria","category":3,"difficulty":2}`
		req := httptestRequest(t, http.MethodPut, "/questions", strings.NewReader(payload))
		recorder := performRequest(router, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Success bool `json:"success"`
			ID      uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, uint(24), body.ID)
	})

	t.Run("validation failure", func(t *testing.T) {
		questionStub := &stubQuestionService{
			CreateFunc: func(ctx context.Context, req *services.CreateQuestionRequest) (uint, error) {
				return 0, services.ValidationErrors{
					{Field: "difficulty", Message: "must be an integer between 1 and 5"},
				}
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		payload := `{"question":"Q?","answer":"A","category":1,"difficulty":9}`
		recorder := performRequest(router, httptestRequest(t, http.MethodPut, "/questions", strings.NewReader(payload)))

		body := assertErrorBody(t, recorder, http.StatusBadRequest)
		assert.Contains(t, body.Message, "difficulty")
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newTestRouter(&stubServiceManager{question: &stubQuestionService{}})

		recorder := performRequest(router, httptestRequest(t, http.MethodPut, "/questions", strings.NewReader("{not json")))

		assertErrorBody(t, recorder, http.StatusBadRequest)
	})
}

func TestQuestionHandler_DeleteQuestion(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		var deletedID uint
		questionStub := &stubQuestionService{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		recorder := performRequest(router, httptestRequest(t, http.MethodDelete, "/questions/5", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, uint(5), deletedID)
		assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
	})

	t.Run("unknown question", func(t *testing.T) {
		questionStub := &stubQuestionService{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return services.ErrQuestionNotFound
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		recorder := performRequest(router, httptestRequest(t, http.MethodDelete, "/questions/999", nil))

		assertErrorBody(t, recorder, http.StatusNotFound)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := newTestRouter(&stubServiceManager{question: &stubQuestionService{}})

		recorder := performRequest(router, httptestRequest(t, http.MethodDelete, "/questions/abc", nil))

		assertErrorBody(t, recorder, http.StatusNotFound)
	})
}

func TestQuestionHandler_SearchQuestions(t *testing.T) {
	t.Run("search term is forwarded", func(t *testing.T) {
		questionStub := &stubQuestionService{
			SearchFunc: func(ctx context.Context, term string, page int) (*services.SearchResponse, error) {
				assert.Equal(t, "title", term)
				assert.Equal(t, 1, page)
				return &services.SearchResponse{
					TotalQuestions: 2,
					Questions: []*models.FormattedQuestion{
						{ID: 5, Question: "Which title?", Answer: "A", Category: 4, Difficulty: 2},
						{ID: 6, Question: "Another title?", Answer: "B", Category: 5, Difficulty: 3},
					},
				}, nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		recorder := performRequest(router, httptestRequest(t, http.MethodPost, "/questions",
			strings.NewReader(`{"searchTerm":"title"}`)))

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			TotalQuestions int                        `json:"totalQuestions"`
			Questions      []models.FormattedQuestion `json:"questions"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, 2, body.TotalQuestions)
		assert.Len(t, body.Questions, 2)
	})

	t.Run("missing search term never creates", func(t *testing.T) {
		questionStub := &stubQuestionService{
			CreateFunc: func(ctx context.Context, req *services.CreateQuestionRequest) (uint, error) {
				t.Fatal("create must not be reached from POST /questions")
				return 0, nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		recorder := performRequest(router, httptestRequest(t, http.MethodPost, "/questions",
			strings.NewReader(`{"question":"Q?","answer":"A","category":1,"difficulty":1}`)))

		body := assertErrorBody(t, recorder, http.StatusBadRequest)
		assert.Equal(t, "searchTerm is required", body.Message)
	})

	t.Run("empty term matches everything", func(t *testing.T) {
		questionStub := &stubQuestionService{
			SearchFunc: func(ctx context.Context, term string, page int) (*services.SearchResponse, error) {
				assert.Equal(t, "", term)
				return &services.SearchResponse{TotalQuestions: 19}, nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: questionStub})

		recorder := performRequest(router, httptestRequest(t, http.MethodPost, "/questions",
			strings.NewReader(`{"searchTerm":""}`)))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestQuestionHandler_ExportQuestions(t *testing.T) {
	t.Run("csv download", func(t *testing.T) {
		exportStub := &stubImportExportService{
			ExportCSVFunc: func(ctx context.Context) ([]byte, error) {
				return []byte("id,question,answer,category,difficulty\n"), nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: &stubQuestionService{}, importExport: exportStub})

		recorder := performRequest(router, httptestRequest(t, http.MethodGet, "/questions/export", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "questions.csv")
	})

	t.Run("unknown format", func(t *testing.T) {
		router := newTestRouter(&stubServiceManager{question: &stubQuestionService{}, importExport: &stubImportExportService{}})

		recorder := performRequest(router, httptestRequest(t, http.MethodGet, "/questions/export?format=pdf", nil))

		assertErrorBody(t, recorder, http.StatusBadRequest)
	})
}

func TestQuestionHandler_ImportQuestions(t *testing.T) {
	t.Run("multipart upload reaches the service", func(t *testing.T) {
		importStub := &stubImportExportService{
			ImportFromFileFunc: func(ctx context.Context, file multipart.File, filename string) (*services.ImportResult, error) {
				assert.Equal(t, "questions.csv", filename)
				return &services.ImportResult{TotalRows: 1, SuccessCount: 1, QuestionIDs: []uint{3}}, nil
			},
		}
		router := newTestRouter(&stubServiceManager{question: &stubQuestionService{}, importExport: importStub})

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", "questions.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte("question,answer,category,difficulty\nQ?,A,1,2\n"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req, err := http.NewRequest(http.MethodPost, "/questions/import", &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		recorder := performRequest(router, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var result services.ImportResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Equal(t, 1, result.SuccessCount)
	})

	t.Run("missing file part", func(t *testing.T) {
		router := newTestRouter(&stubServiceManager{question: &stubQuestionService{}, importExport: &stubImportExportService{}})

		recorder := performRequest(router, httptestRequest(t, http.MethodPost, "/questions/import", nil))

		assertErrorBody(t, recorder, http.StatusBadRequest)
	})
}

func TestQuestionHandler_StoreFailure(t *testing.T) {
	questionStub := &stubQuestionService{
		ListFunc: func(ctx context.Context, page int) (*services.QuestionListResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := newTestRouter(&stubServiceManager{question: questionStub})

	recorder := performRequest(router, httptestRequest(t, http.MethodGet, "/questions", nil))

	body := assertErrorBody(t, recorder, http.StatusInternalServerError)
	// Store detail stays server-side.
	assert.NotContains(t, body.Message, "connection refused")
}
