package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/trivia-hub/trivia-service/internal/models"
	"github.com/trivia-hub/trivia-service/internal/repositories"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// Create inserts a new question row; the store assigns the id.
func (q *QuestionPostgreSQL) Create(ctx context.Context, question *models.Question) error {
	if err := q.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetAll retrieves every question in primary key order.
func (q *QuestionPostgreSQL) GetAll(ctx context.Context) ([]*models.Question, error) {
	var questions []*models.Question
	if err := q.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// GetByCategory retrieves every question in the given category in
// primary key order.
func (q *QuestionPostgreSQL) GetByCategory(ctx context.Context, categoryID uint) ([]*models.Question, error) {
	var questions []*models.Question
	if err := q.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}

// Search retrieves every question containing term as a substring of
// its text. LIKE is case-sensitive on Postgres, which is the intended
// matching behavior.
func (q *QuestionPostgreSQL) Search(ctx context.Context, term string) ([]*models.Question, error) {
	var questions []*models.Question
	if err := q.db.WithContext(ctx).
		Where("question LIKE ?", "%"+term+"%").
		Order("id").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// Delete removes a question row permanently.
func (q *QuestionPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := q.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrRecordNotFound
	}
	return nil
}
