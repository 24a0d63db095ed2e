package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mjacquet/eventdesk/internal/client/models"
)

// UsersClient accesses the users resource.
type UsersClient struct {
	core *Core
}

func NewUsersClient(core *Core) *UsersClient {
	return &UsersClient{core: core}
}

// List returns users matching the given query filter, e.g. email=j@x.com.
// The store has no single-record lookup by email, only this filtered read.
func (c *UsersClient) List(ctx context.Context, filter url.Values) ([]models.User, error) {
	var users []models.User
	if err := c.core.do(ctx, http.MethodGet, "/users", filter, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create posts a new identity record and returns the stored copy (with the
// server-assigned id).
func (c *UsersClient) Create(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.core.do(ctx, http.MethodPost, "/users", nil, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Replace overwrites the whole record; the store has no partial user update
// in use, profile edits send the full entity.
func (c *UsersClient) Replace(ctx context.Context, id string, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.core.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), nil, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
