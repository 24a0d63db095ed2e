package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mjacquet/eventdesk/internal/client/models"
)

// CategoriesClient accesses the categories resource.
type CategoriesClient struct {
	core *Core
}

func NewCategoriesClient(core *Core) *CategoriesClient {
	return &CategoriesClient{core: core}
}

func (c *CategoriesClient) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.core.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CategoriesClient) Get(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := c.core.do(ctx, http.MethodGet, "/categories/"+strconv.FormatInt(id, 10), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
