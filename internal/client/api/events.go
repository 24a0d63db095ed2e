package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mjacquet/eventdesk/internal/client/models"
)

// EventsClient accesses the events resource.
type EventsClient struct {
	core *Core
}

func NewEventsClient(core *Core) *EventsClient {
	return &EventsClient{core: core}
}

func eventPath(id int64) string {
	return "/events/" + strconv.FormatInt(id, 10)
}

func (c *EventsClient) List(ctx context.Context) ([]models.Event, error) {
	return c.list(ctx, nil)
}

func (c *EventsClient) Get(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := c.core.do(ctx, http.MethodGet, eventPath(id), nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *EventsClient) ListByUser(ctx context.Context, userID string) ([]models.Event, error) {
	return c.list(ctx, url.Values{"userId": {userID}})
}

func (c *EventsClient) ListByCategory(ctx context.Context, categoryID int64) ([]models.Event, error) {
	return c.list(ctx, url.Values{"categoryId": {strconv.FormatInt(categoryID, 10)}})
}

// SearchByTitle performs a substring match on titles (json-server's
// title_like filter).
func (c *EventsClient) SearchByTitle(ctx context.Context, term string) ([]models.Event, error) {
	return c.list(ctx, url.Values{"title_like": {term}})
}

func (c *EventsClient) Create(ctx context.Context, event models.Event) (*models.Event, error) {
	var created models.Event
	if err := c.core.do(ctx, http.MethodPost, "/events", nil, event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update issues a partial update; only the fields set in patch are sent.
func (c *EventsClient) Update(ctx context.Context, id int64, patch models.UpdateEvent) (*models.Event, error) {
	var updated models.Event
	if err := c.core.do(ctx, http.MethodPatch, eventPath(id), nil, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *EventsClient) Delete(ctx context.Context, id int64) error {
	return c.core.do(ctx, http.MethodDelete, eventPath(id), nil, nil, nil)
}

func (c *EventsClient) list(ctx context.Context, filter url.Values) ([]models.Event, error) {
	var events []models.Event
	if err := c.core.do(ctx, http.MethodGet, "/events", filter, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
