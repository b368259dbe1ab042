package repositories

import (
	"context"
	"errors"

	"github.com/trivia-hub/trivia-service/internal/models"
)

// ErrRecordNotFound is returned by lookups and deletes that match no
// row, so callers can distinguish absence from store failure.
var ErrRecordNotFound = errors.New("record not found")

// QuestionRepository is the narrow capability set the trivia core needs
// over question storage: fetch-all, fetch-by-predicate, insert,
// delete. Results of every multi-row query come back in store
// iteration order (primary key order).
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetAll(ctx context.Context) ([]*models.Question, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]*models.Question, error)
	Search(ctx context.Context, term string) ([]*models.Question, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository exposes read-only access to category records,
// which are seeded outside this service.
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetAll(ctx context.Context) ([]*models.Category, error)
}

// Repository aggregates the per-entity repositories behind one handle.
type Repository interface {
	Question() QuestionRepository
	Category() CategoryRepository

	Ping(ctx context.Context) error
	Close() error
}
