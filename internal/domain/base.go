package domain

import (
	"time"
)

// Event is a domain event collected from an aggregate and published to the
// in-process message bus after the originating operation commits.
type Event interface {
	Type() string
	PublishedAt() time.Time
}

type Aggregate struct {
	events []Event
}

func (a *Aggregate) PopEvents() []Event {
	events := a.events
	a.events = nil
	return events
}

func (a *Aggregate) PushEvent(e Event) {
	a.events = append(a.events, e)
}
