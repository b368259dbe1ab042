package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/trivia-hub/trivia-service/internal/repositories"
)

type postgresRepository struct {
	db       *gorm.DB
	question repositories.QuestionRepository
	category repositories.CategoryRepository
}

// NewRepository wires the per-entity repositories over a shared gorm
// handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &postgresRepository{
		db:       db,
		question: NewQuestionPostgreSQL(db),
		category: NewCategoryPostgreSQL(db),
	}
}

func (r *postgresRepository) Question() repositories.QuestionRepository {
	return r.question
}

func (r *postgresRepository) Category() repositories.CategoryRepository {
	return r.category
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *postgresRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
