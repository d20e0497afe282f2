package entitysystem

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can
// be registered on an EventBus. This value is fixed at 256.
const MaxEventTypes = 256

// EventBus is a simple type-safe event bus for decoupled communication
// between processors. Handlers subscribe per event type and are invoked
// synchronously, in subscription order, when a matching event is published.
//
// Subscribe is meant for setup time and is not safe to call concurrently
// with Publish. Publish itself is allocation-free and may be called from
// any goroutine once subscriptions are in place.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]interface{}
	nextEventTypeID uint8
}

// Inserted is published on a manager's bus after a component of type `T`
// has been stored.
type Inserted[T Component] struct {
	Entity    Entity
	Handle    Handle
	Component T
}

// Removed is published on a manager's bus after a record of type `T` has
// been removed, whether through Remove or RemoveType.
type Removed[T Component] struct {
	Entity Entity
	Handle Handle
}

// Subscribe registers a handler to be called whenever an event of type `T`
// is published on the bus.
//
// Parameters:
//   - bus: The EventBus to subscribe to.
//   - handler: A function taking a single argument of type `T`.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.eventTypeID(reflect.TypeOf((*T)(nil)).Elem())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]interface{}, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts event to every handler registered for type `T`, in
// subscription order. Publishing a type nobody subscribed to is a no-op.
func Publish[T any](bus *EventBus, event T) {
	if id, ok := bus.eventTypeMap[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

// eventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) eventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if len(bus.eventTypeMap) >= MaxEventTypes {
		panic("entitysystem: too many event types")
	}
	id := bus.nextEventTypeID
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
