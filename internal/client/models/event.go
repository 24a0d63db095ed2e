package models

import "time"

// Event is a domain record from the events resource. Date and the timestamps
// are strings as stored by the backend (RFC 3339, or a bare yyyy-mm-dd in
// older records).
//
// Intended invariant, not enforced server-side:
// 0 <= CurrentParticipants <= MaxParticipants when MaxParticipants is set.
type Event struct {
	ID                  int64  `json:"id,omitempty"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Date                string `json:"date"`
	Location            string `json:"location,omitempty"`
	CategoryID          int64  `json:"categoryId,omitempty"`
	UserID              string `json:"userId,omitempty"`
	MaxParticipants     int    `json:"maxParticipants,omitempty"`
	CurrentParticipants int    `json:"currentParticipants"`
	Status              string `json:"status,omitempty"`
	ImageURL            string `json:"imageUrl,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty"`
	UpdatedAt           string `json:"updatedAt,omitempty"`
}

// CreateEvent is the payload for creating an event. The event service stamps
// userId, currentParticipants and createdAt on top of it.
type CreateEvent struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Location        string `json:"location,omitempty"`
	CategoryID      int64  `json:"categoryId,omitempty"`
	MaxParticipants int    `json:"maxParticipants,omitempty"`
}

// UpdateEvent is a partial update; nil fields are left untouched by the
// backend.
type UpdateEvent struct {
	Title               *string `json:"title,omitempty"`
	Description         *string `json:"description,omitempty"`
	Date                *string `json:"date,omitempty"`
	Location            *string `json:"location,omitempty"`
	CategoryID          *int64  `json:"categoryId,omitempty"`
	CurrentParticipants *int    `json:"currentParticipants,omitempty"`
	MaxParticipants     *int    `json:"maxParticipants,omitempty"`
	Status              *string `json:"status,omitempty"`
	ImageURL            *string `json:"imageUrl,omitempty"`
	UpdatedAt           *string `json:"updatedAt,omitempty"`
}

// IsFull reports whether the event has reached capacity. An unset
// MaxParticipants means unlimited.
func (e *Event) IsFull() bool {
	return e.MaxParticipants > 0 && e.CurrentParticipants >= e.MaxParticipants
}

// When parses the event date, accepting RFC 3339 or a bare date. The zero
// time is returned for unparseable values.
func (e *Event) When() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, e.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
