package services

import (
	"context"

	"github.com/mjacquet/eventdesk/internal/client/api"
	"github.com/mjacquet/eventdesk/internal/client/models"
)

// CategoryService exposes the category lookup data. Categories are read-only
// from this client's perspective.
type CategoryService struct {
	categories api.Categories
}

func NewCategoryService(categories api.Categories) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.categories.Get(ctx, id)
}
