package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/trivia-hub/trivia-service/internal/events"
	"github.com/trivia-hub/trivia-service/internal/models"
	"github.com/trivia-hub/trivia-service/internal/repositories"
	"github.com/trivia-hub/trivia-service/internal/utils"
	"github.com/trivia-hub/trivia-service/internal/validator"
)

// ===== REQUEST / RESPONSE STRUCTURES =====

// CreateQuestionRequest carries the four required question fields.
// Pointer types distinguish an absent field from a zero value.
type CreateQuestionRequest struct {
	Question   *string `json:"question" validate:"required"`
	Answer     *string `json:"answer" validate:"required"`
	Category   *uint   `json:"category" validate:"required"`
	Difficulty *int    `json:"difficulty" validate:"required,difficulty_level"`
}

// QuestionListResponse is the paginated listing of all questions.
// TotalQuestions counts the whole collection, not the page.
type QuestionListResponse struct {
	Questions      []*models.FormattedQuestion `json:"questions"`
	TotalQuestions int                         `json:"total_questions"`
	Categories     map[string]string           `json:"categories"`
}

// SearchResponse is the paginated set of substring matches.
type SearchResponse struct {
	TotalQuestions int                         `json:"totalQuestions"`
	Questions      []*models.FormattedQuestion `json:"questions"`
}

// CategoryQuestionsResponse is the paginated listing for one category.
type CategoryQuestionsResponse struct {
	Questions       []*models.FormattedQuestion `json:"questions"`
	TotalQuestions  int                         `json:"totalQuestions"`
	CurrentCategory string                      `json:"currentCategory"`
}

// ===== SERVICE INTERFACE =====

type QuestionService interface {
	List(ctx context.Context, page int) (*QuestionListResponse, error)
	Create(ctx context.Context, req *CreateQuestionRequest) (uint, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, term string, page int) (*SearchResponse, error)
	ListByCategory(ctx context.Context, categoryID uint, page int) (*CategoryQuestionsResponse, error)
}

type questionService struct {
	repo      repositories.Repository
	category  CategoryService
	publisher events.EventPublisher
	logger    utils.Logger
	validator *validator.Validator
}

func NewQuestionService(
	repo repositories.Repository,
	categoryService CategoryService,
	publisher events.EventPublisher,
	logger utils.Logger,
	v *validator.Validator,
) QuestionService {
	return &questionService{
		repo:      repo,
		category:  categoryService,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

// List returns one page of questions together with the unpaginated
// total and the full category map.
func (s *questionService) List(ctx context.Context, page int) (*QuestionListResponse, error) {
	questions, err := s.repo.Question().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	pageQuestions, err := Paginate(questions, page, QuestionsPerPage)
	if err != nil {
		return nil, err
	}

	categories, err := s.category.ListMap(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionListResponse{
		Questions:      models.FormatQuestions(pageQuestions),
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

// Create validates the request, persists one row and returns the
// store-assigned id.
func (s *questionService) Create(ctx context.Context, req *CreateQuestionRequest) (uint, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return 0, err
	}

	question := &models.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		CategoryID: *req.Category,
		Difficulty: *req.Difficulty,
	}

	if err := s.repo.Question().Create(ctx, question); err != nil {
		return 0, fmt.Errorf("create question: %w", err)
	}

	s.logger.InfoContext(ctx, "question created",
		"question_id", question.ID,
		"category", question.CategoryID,
		"difficulty", question.Difficulty)

	if err := s.publisher.PublishQuestionEvent(ctx,
		events.NewQuestionCreatedEvent(question.ID, question.CategoryID, question.Difficulty)); err != nil {
		// The row is already committed; event delivery is best effort.
		s.logger.WarnContext(ctx, "failed to publish question created event",
			"question_id", question.ID, "error", err)
	}

	return question.ID, nil
}

// Delete removes a question permanently.
func (s *questionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Question().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrQuestionNotFound, id)
		}
		return fmt.Errorf("delete question: %w", err)
	}

	s.logger.InfoContext(ctx, "question deleted", "question_id", id)

	if err := s.publisher.PublishQuestionEvent(ctx, events.NewQuestionDeletedEvent(id)); err != nil {
		s.logger.WarnContext(ctx, "failed to publish question deleted event",
			"question_id", id, "error", err)
	}

	return nil
}

// Search returns one page of the questions whose text contains term as
// a case-sensitive substring, plus the unpaginated match count.
func (s *questionService) Search(ctx context.Context, term string, page int) (*SearchResponse, error) {
	matches, err := s.repo.Question().Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}

	pageMatches, err := Paginate(matches, page, QuestionsPerPage)
	if err != nil {
		return nil, err
	}

	return &SearchResponse{
		TotalQuestions: len(matches),
		Questions:      models.FormatQuestions(pageMatches),
	}, nil
}

// ListByCategory returns one page of the category's questions plus the
// unpaginated per-category count and the category's type label.
func (s *questionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*CategoryQuestionsResponse, error) {
	category, err := s.repo.Category().GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCategoryNotFound, categoryID)
		}
		return nil, fmt.Errorf("fetch category: %w", err)
	}

	questions, err := s.repo.Question().GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("fetch category questions: %w", err)
	}

	pageQuestions, err := Paginate(questions, page, QuestionsPerPage)
	if err != nil {
		return nil, err
	}

	return &CategoryQuestionsResponse{
		Questions:       models.FormatQuestions(pageQuestions),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}
