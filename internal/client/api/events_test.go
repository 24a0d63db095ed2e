package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjacquet/eventdesk/internal/client/models"
)

// recorder captures the last request and replays a canned response.
type recorder struct {
	method string
	path   string
	query  url.Values
	body   []byte

	status   int
	response string
}

func (r *recorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		r.method = req.Method
		r.path = req.URL.Path
		r.query = req.URL.Query()
		r.body, _ = io.ReadAll(req.Body)
		if r.status != 0 {
			w.WriteHeader(r.status)
		}
		_, _ = w.Write([]byte(r.response))
	}
}

func newEventsClient(t *testing.T, rec *recorder) *EventsClient {
	t.Helper()
	srv := httptest.NewServer(rec.handler())
	t.Cleanup(srv.Close)
	return NewEventsClient(NewCore(srv.URL, time.Second, testLogger()))
}

func TestEventsClient_Get(t *testing.T) {
	rec := &recorder{response: `{"id":5,"title":"Go Meetup","description":"d","date":"2026-11-15","currentParticipants":49,"maxParticipants":50}`}
	c := newEventsClient(t, rec)

	event, err := c.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/events/5", rec.path)
	assert.Equal(t, int64(5), event.ID)
	assert.Equal(t, 49, event.CurrentParticipants)
}

func TestEventsClient_ListFilters(t *testing.T) {
	rec := &recorder{response: `[]`}
	c := newEventsClient(t, rec)
	ctx := context.Background()

	_, err := c.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", rec.query.Get("userId"))

	_, err = c.ListByCategory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "3", rec.query.Get("categoryId"))

	_, err = c.SearchByTitle(ctx, "meetup")
	require.NoError(t, err)
	assert.Equal(t, "meetup", rec.query.Get("title_like"))
}

func TestEventsClient_UpdateSendsPartialPatch(t *testing.T) {
	rec := &recorder{response: `{"id":5,"title":"Go Meetup","description":"d","date":"2026-11-15","currentParticipants":50}`}
	c := newEventsClient(t, rec)

	n := 50
	updated, err := c.Update(context.Background(), 5, models.UpdateEvent{CurrentParticipants: &n})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/events/5", rec.path)
	assert.JSONEq(t, `{"currentParticipants":50}`, string(rec.body))
	assert.Equal(t, 50, updated.CurrentParticipants)
}

func TestEventsClient_CreateRoundTrip(t *testing.T) {
	rec := &recorder{response: `{"id":7,"title":"New","description":"d","date":"2026-01-02","currentParticipants":0,"userId":"u1"}`}
	c := newEventsClient(t, rec)

	created, err := c.Create(context.Background(), models.Event{
		Title: "New", Description: "d", Date: "2026-01-02", UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, int64(7), created.ID)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "u1", sent["userId"])
	assert.Equal(t, float64(0), sent["currentParticipants"])
}

func TestEventsClient_Delete(t *testing.T) {
	rec := &recorder{}
	c := newEventsClient(t, rec)

	require.NoError(t, c.Delete(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/events/9", rec.path)
}
