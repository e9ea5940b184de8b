package owner

import "sync"

// Category identifies one kind of service-allocated resource.
type Category uint8

const (
	CategorySession Category = iota
	CategoryIDSet
	CategoryDefinition
	CategoryPathString
)

// Event types for owner lifecycle notifications.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventReleased
)

// Event represents an owner lifecycle event.
type Event struct {
	Category Category
	Type     EventType
}

// Observer receives notifications about owner lifecycle events.
type Observer interface {
	OnOwnerEvent(Event)
}

var (
	obsMu     sync.RWMutex
	observers []Observer
)

// Subscribe adds an observer for lifecycle events.
func Subscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	observers = append(observers, o)
}

// Unsubscribe removes an observer.
func Unsubscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	for i, obs := range observers {
		if obs == o {
			observers = append(observers[:i], observers[i+1:]...)
			return
		}
	}
}

func notify(e Event) {
	obsMu.RLock()
	defer obsMu.RUnlock()
	for _, o := range observers {
		o.OnOwnerEvent(e)
	}
}
