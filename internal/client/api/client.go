// Package api contains the resource clients talking to the events backend:
// a json-server-style REST store exposing users, events and categories.
//
// # Overview
//
// One shared Core owns the HTTP plumbing: JSON encoding, bearer-token
// injection, request correlation ids, and status-code mapping. Per-resource
// clients (Users, Events, Categories) are thin accessors over it.
//
// # Error Handling
//
// Failures are logged with their structured cause and surfaced to callers as
// sentinel errors matched with errors.Is: common.ErrNotFound,
// common.ErrUnauthorized, common.ErrUnavailable. No status codes or response
// bodies propagate past this boundary. A 401 additionally fires the
// configured on-unauthorized hook before the error is returned.
package api

import (
	"context"
	"net/url"

	"github.com/mjacquet/eventdesk/internal/client/models"
)

// Users is the accessor contract for the users resource.
type Users interface {
	List(ctx context.Context, filter url.Values) ([]models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
	Replace(ctx context.Context, id string, user models.User) (*models.User, error)
}

// Events is the accessor contract for the events resource.
type Events interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	ListByUser(ctx context.Context, userID string) ([]models.Event, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Event, error)
	SearchByTitle(ctx context.Context, term string) ([]models.Event, error)
	Create(ctx context.Context, event models.Event) (*models.Event, error)
	Update(ctx context.Context, id int64, patch models.UpdateEvent) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// Categories is the accessor contract for the categories resource.
type Categories interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
}
