package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_IsFull(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{name: "at capacity", event: Event{CurrentParticipants: 50, MaxParticipants: 50}, want: true},
		{name: "over capacity", event: Event{CurrentParticipants: 51, MaxParticipants: 50}, want: true},
		{name: "below capacity", event: Event{CurrentParticipants: 49, MaxParticipants: 50}, want: false},
		{name: "no limit", event: Event{CurrentParticipants: 1000}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.IsFull())
		})
	}
}

func TestEvent_When(t *testing.T) {
	e := Event{Date: "2026-11-15"}
	assert.Equal(t, time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC), e.When())

	e = Event{Date: "2026-11-15T18:30:00Z"}
	assert.Equal(t, time.Date(2026, 11, 15, 18, 30, 0, 0, time.UTC), e.When())

	e = Event{Date: "soon"}
	assert.True(t, e.When().IsZero())
}

func TestUpdateEvent_OnlySetFieldsSerialized(t *testing.T) {
	n := 50
	b, err := json.Marshal(UpdateEvent{CurrentParticipants: &n})
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentParticipants":50}`, string(b))
}
