package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trivia-hub/trivia-service/internal/models"
	"github.com/trivia-hub/trivia-service/internal/repositories"
)

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetAll(ctx context.Context) ([]*models.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByCategory(ctx context.Context, categoryID uint) ([]*models.Question, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) Search(ctx context.Context, term string) ([]*models.Question, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

// MockRepository aggregates the entity mocks behind the Repository
// interface
type MockRepository struct {
	questionRepo *MockQuestionRepository
	categoryRepo *MockCategoryRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		questionRepo: &MockQuestionRepository{},
		categoryRepo: &MockCategoryRepository{},
	}
}

func (m *MockRepository) Question() repositories.QuestionRepository { return m.questionRepo }
func (m *MockRepository) Category() repositories.CategoryRepository { return m.categoryRepo }
func (m *MockRepository) Ping(ctx context.Context) error            { return nil }
func (m *MockRepository) Close() error                              { return nil }
