package services

import (
	"math/rand"

	"github.com/trivia-hub/trivia-service/internal/cache"
	"github.com/trivia-hub/trivia-service/internal/events"
	"github.com/trivia-hub/trivia-service/internal/repositories"
	"github.com/trivia-hub/trivia-service/internal/utils"
	"github.com/trivia-hub/trivia-service/internal/validator"
)

// ServiceManager hands the wired service set to the HTTP layer.
type ServiceManager interface {
	Question() QuestionService
	Category() CategoryService
	Quiz() QuizService
	ImportExport() ImportExportService
}

type serviceManager struct {
	question     QuestionService
	category     CategoryService
	quiz         QuizService
	importExport ImportExportService
}

// NewServiceManager wires all services over shared dependencies. A nil
// rng means quiz selection draws from the process-wide random source.
func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger utils.Logger,
	v *validator.Validator,
	rng *rand.Rand,
) ServiceManager {
	categoryService := NewCategoryService(repo, cacheService, logger)
	questionService := NewQuestionService(repo, categoryService, publisher, logger, v)

	return &serviceManager{
		question:     questionService,
		category:     categoryService,
		quiz:         NewQuizService(repo, logger, rng),
		importExport: NewImportExportService(repo, questionService, logger, v),
	}
}

func (m *serviceManager) Question() QuestionService         { return m.question }
func (m *serviceManager) Category() CategoryService         { return m.category }
func (m *serviceManager) Quiz() QuizService                 { return m.quiz }
func (m *serviceManager) ImportExport() ImportExportService { return m.importExport }
