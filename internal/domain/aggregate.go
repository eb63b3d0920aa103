package domain

// Root is the aggregate-root view the unit of work tracks: the event buffer
// plus a changed flag driving the no-op commit fast path.
type Root interface {
	DomainEvents() []Event
	ClearDomainEvents()
	Changed() bool
}

// AggregateRoot buffers events raised during one in-memory mutation episode.
// The buffer is drained exactly once, by the commit sequence.
type AggregateRoot struct {
	Auditable
	events  []Event
	changed bool
}

// Raise appends an event to the buffer and marks the aggregate changed.
func (a *AggregateRoot) Raise(event Event) {
	a.events = append(a.events, event)
	a.changed = true
}

// MarkChanged flags a mutation that raised no event.
func (a *AggregateRoot) MarkChanged() { a.changed = true }

func (a *AggregateRoot) Changed() bool { return a.changed }

// MarkClean resets change tracking after a successful commit.
func (a *AggregateRoot) MarkClean() { a.changed = false }

func (a *AggregateRoot) DomainEvents() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}

func (a *AggregateRoot) ClearDomainEvents() { a.events = nil }
