// Package audit publishes entity change events off the request path.
package audit

import (
	"context"
	"time"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

type Event struct {
	Action   Action         `json:"action"`
	Entity   string         `json:"entity"`
	EntityID uint           `json:"entityId"`
	Fields   map[string]any `json:"fields,omitempty"`
	At       time.Time      `json:"at"`
}

// Publisher delivers one event. Implementations may block.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Recorder is what controllers use to emit events.
type Recorder interface {
	Dispatch(ev Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Dispatch(Event) {}
