package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/trivia-hub/trivia-service/internal/models"
	"github.com/trivia-hub/trivia-service/internal/repositories"
)

type CategoryPostgreSQL struct {
	db *gorm.DB
}

func NewCategoryPostgreSQL(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryPostgreSQL{db: db}
}

// GetByID retrieves a category by id.
func (c *CategoryPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := c.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetAll retrieves every category in primary key order.
func (c *CategoryPostgreSQL) GetAll(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := c.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
