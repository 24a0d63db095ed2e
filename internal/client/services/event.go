package services

import (
	"context"
	"time"

	"github.com/mjacquet/eventdesk/internal/client/api"
	"github.com/mjacquet/eventdesk/internal/client/models"
	"github.com/mjacquet/eventdesk/internal/common"
	"github.com/mjacquet/eventdesk/internal/logging"
)

// EventService wraps the events resource with the client-side workflows:
// listing/filtering, lifecycle operations, and participant registration.
type EventService struct {
	events api.Events
	log    logging.Logger
	now    func() time.Time
}

func NewEventService(events api.Events, log logging.Logger) *EventService {
	return &EventService{events: events, log: log, now: time.Now}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.List(ctx)
}

func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.events.Get(ctx, id)
}

func (s *EventService) ListByUser(ctx context.Context, userID string) ([]models.Event, error) {
	return s.events.ListByUser(ctx, userID)
}

func (s *EventService) ListByCategory(ctx context.Context, categoryID int64) ([]models.Event, error) {
	return s.events.ListByCategory(ctx, categoryID)
}

func (s *EventService) Search(ctx context.Context, term string) ([]models.Event, error) {
	return s.events.SearchByTitle(ctx, term)
}

// Upcoming returns events dated today or later. Events with unparseable
// dates are excluded.
func (s *EventService) Upcoming(ctx context.Context) ([]models.Event, error) {
	return s.filterByDate(ctx, func(when, now time.Time) bool { return !when.Before(now) })
}

// Past returns events dated strictly before now.
func (s *EventService) Past(ctx context.Context) ([]models.Event, error) {
	return s.filterByDate(ctx, func(when, now time.Time) bool { return when.Before(now) })
}

func (s *EventService) filterByDate(ctx context.Context, keep func(when, now time.Time) bool) ([]models.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	filtered := make([]models.Event, 0, len(events))
	for _, e := range events {
		when := e.When()
		if when.IsZero() {
			continue
		}
		if keep(when, now) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Create stamps ownership and the initial participant count onto the payload
// and posts it.
func (s *EventService) Create(ctx context.Context, data models.CreateEvent, userID string) (*models.Event, error) {
	event := models.Event{
		Title:               data.Title,
		Description:         data.Description,
		Date:                data.Date,
		Location:            data.Location,
		CategoryID:          data.CategoryID,
		MaxParticipants:     data.MaxParticipants,
		CurrentParticipants: 0,
		UserID:              userID,
		CreatedAt:           s.now().UTC().Format(time.RFC3339),
	}
	return s.events.Create(ctx, event)
}

func (s *EventService) Update(ctx context.Context, id int64, patch models.UpdateEvent) (*models.Event, error) {
	updatedAt := s.now().UTC().Format(time.RFC3339)
	patch.UpdatedAt = &updatedAt
	return s.events.Update(ctx, id, patch)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}

// RegisterParticipant increments an event's participant count when capacity
// allows: fetch, check, then one partial update setting the incremented
// count. No retry on any failure.
//
// This is a read-then-write against a store with no conditional update:
// two clients can both read the same count before either writes and oversell
// capacity. Known limitation of the backend contract.
func (s *EventService) RegisterParticipant(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.IsFull() {
		s.log.Info(ctx, "event at capacity", "event_id", id,
			"current", event.CurrentParticipants, "max", event.MaxParticipants)
		return nil, common.ErrEventFull
	}

	next := event.CurrentParticipants + 1
	updated, err := s.events.Update(ctx, id, models.UpdateEvent{CurrentParticipants: &next})
	if err != nil {
		s.log.Error(ctx, "participant registration failed", "event_id", id, "error", err)
		return nil, err
	}

	if updated != nil && updated.ID != 0 {
		// Server-confirmed state.
		return updated, nil
	}

	// No body in the response; fall back to the optimistic local copy.
	event.CurrentParticipants = next
	return event, nil
}
