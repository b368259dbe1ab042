package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/trivia-hub/trivia-service/internal/models"
	"github.com/trivia-hub/trivia-service/internal/repositories"
	"github.com/trivia-hub/trivia-service/internal/utils"
)

// AllCategories selects quiz questions across every category.
const AllCategories uint = 0

// QuizService serves one randomized question per call. Session state
// (the ids already served) is held by the client and passed back in.
type QuizService interface {
	// NextQuestion picks one question from the category uniformly at
	// random, excluding previousIDs. A nil question signals the
	// category is exhausted; that is the terminal state, not an error.
	NextQuestion(ctx context.Context, categoryID uint, previousIDs []uint) (*models.FormattedQuestion, error)
}

type quizService struct {
	repo   repositories.Repository
	logger utils.Logger

	// rng is optional; tests inject a seeded source for determinism.
	// rand.Rand is not safe for concurrent use, hence the mutex.
	rng *rand.Rand
	mu  sync.Mutex
}

func NewQuizService(repo repositories.Repository, logger utils.Logger, rng *rand.Rand) QuizService {
	return &quizService{
		repo:   repo,
		logger: logger,
		rng:    rng,
	}
}

func (s *quizService) NextQuestion(ctx context.Context, categoryID uint, previousIDs []uint) (*models.FormattedQuestion, error) {
	var questions []*models.Question
	var err error

	if categoryID == AllCategories {
		questions, err = s.repo.Question().GetAll(ctx)
	} else {
		if _, err := s.repo.Category().GetByID(ctx, categoryID); err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrCategoryNotFound, categoryID)
			}
			return nil, fmt.Errorf("fetch category: %w", err)
		}
		questions, err = s.repo.Question().GetByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch quiz candidates: %w", err)
	}

	seen := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	candidates := questions[:0:0]
	for _, q := range questions {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	return candidates[s.intn(len(candidates))].Format(), nil
}

func (s *quizService) intn(n int) int {
	if s.rng == nil {
		return rand.Intn(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
