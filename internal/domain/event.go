package domain

import "time"

// Event is a fact raised by an aggregate during mutation. Events stay buffered
// on the aggregate until the commit sequence drains and publishes them.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

type BaseEvent struct {
	occurredAt time.Time
}

func NewBaseEvent() BaseEvent {
	return BaseEvent{occurredAt: time.Now().UTC()}
}

func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
