package entitysystem

import (
	"fmt"
	"reflect"
	"sync"
)

// MaxComponentTypes defines the maximum number of unique component types
// that can be registered with a ComponentManager. This value is fixed at 256.
const MaxComponentTypes = 256

// ComponentManager manages the relationships between entities and
// components. It owns every inserted record, indexes records per component
// type and per owning entity, and hands out access exclusively as read-only
// or mutable views.
//
// Entity identifiers are treated as opaque keys: the manager never
// validates them against an EntityManager, so the two can be composed
// freely or used apart.
//
// All operations are safe for concurrent use. Structural mutation (insert
// and removal) is serialized internally; view acquisition is lock-free and
// enforced per record, so holding a mutable view of one record never blocks
// access to another.
type ComponentManager struct {
	mu         sync.RWMutex
	types      map[reflect.Type]uint8
	stores     []container           // indexed by type ID
	masks      map[Entity]bitmask256 // which component types each entity owns
	events     *EventBus
	nextTypeID uint16
}

// NewComponentManager creates an empty component manager.
func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		types:  make(map[reflect.Type]uint8, 16),
		stores: make([]container, 0, 16),
		masks:  make(map[Entity]bitmask256),
		events: &EventBus{},
	}
}

// Events returns the manager's event bus. The manager publishes Inserted
// and Removed lifecycle events on it; callers may subscribe to those or
// publish their own event types on the same bus.
func (m *ComponentManager) Events() *EventBus {
	return m.events
}

// Handle identifies one stored component record. It is minted by Insert and
// stays valid until the record is removed; inserting the same component
// value twice yields two records with two distinct handles.
type Handle struct {
	id     ID
	entity Entity
	typeID uint8
}

// ID returns the store-assigned identity of the record.
func (h Handle) ID() ID {
	return h.id
}

// Entity returns the entity that owns the record.
func (h Handle) Entity() Entity {
	return h.entity
}

// record is one stored component plus its borrow ledger.
type record[T Component] struct {
	borrowState
	comp   T
	entity Entity
	handle Handle
}

// container is the type-erased face a per-type store shows the manager.
// Concrete typing is recovered either through the generic API (storeFor)
// or, for the removal paths, inside the store's own methods.
type container interface {
	// removeByHandle deletes one record. The returned notify closure, when
	// non-nil, publishes the Removed event and must be called after the
	// manager's lock is dropped.
	removeByHandle(m *ComponentManager, h Handle) (bool, func(*EventBus), error)
}

// store holds every record of a single component type. records preserves
// global insertion order for Find; byEntity serves per-entity lookup;
// byHandle serves removal; order lists distinct owning entities in
// first-insertion order for FindEntities and filters.
type store[T Component] struct {
	id       uint8
	records  []*record[T]
	byEntity map[Entity][]*record[T]
	byHandle map[ID]*record[T]
	order    []Entity
}

// storeFor returns the store for T, registering the type on first use.
// Caller must hold m.mu for writing.
func storeFor[T Component](m *ComponentManager) *store[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := m.types[t]; ok {
		return m.stores[id].(*store[T])
	}
	if m.nextTypeID >= MaxComponentTypes {
		panic(fmt.Sprintf("entitysystem: cannot register component %s: maximum number of component types (%d) reached", t.Name(), MaxComponentTypes))
	}
	id := uint8(m.nextTypeID)
	m.nextTypeID++
	s := &store[T]{
		id:       id,
		byEntity: make(map[Entity][]*record[T]),
		byHandle: make(map[ID]*record[T]),
	}
	m.types[t] = id
	m.stores = append(m.stores, s)
	return s
}

// lookupStore returns the store for T without registering anything.
// Caller must hold m.mu for reading or writing.
func lookupStore[T Component](m *ComponentManager) (*store[T], bool) {
	id, ok := m.types[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return m.stores[id].(*store[T]), true
}

// setMask marks the type bit in the entity's owned-type mask.
func (m *ComponentManager) setMask(e Entity, bit uint8) {
	mask := m.masks[e]
	mask.set(bit)
	m.masks[e] = mask
}

// unsetMask clears the type bit, dropping the entry once no bits remain.
func (m *ComponentManager) unsetMask(e Entity, bit uint8) {
	mask := m.masks[e]
	mask.unset(bit)
	if mask.isZero() {
		delete(m.masks, e)
	} else {
		m.masks[e] = mask
	}
}

func (s *store[T]) removeByHandle(m *ComponentManager, h Handle) (bool, func(*EventBus), error) {
	r, ok := s.byHandle[h.id]
	if !ok {
		return false, nil, nil
	}
	if !r.idle() {
		return false, nil, fmt.Errorf("remove %s: %w", h.id, ErrConcurrentAccess)
	}
	delete(s.byHandle, h.id)
	s.records = dropRecord(s.records, r)
	recs := dropRecord(s.byEntity[r.entity], r)
	if len(recs) == 0 {
		delete(s.byEntity, r.entity)
		s.order = dropEntity(s.order, r.entity)
		m.unsetMask(r.entity, s.id)
	} else {
		s.byEntity[r.entity] = recs
	}
	ent, handle := r.entity, r.handle
	notify := func(bus *EventBus) {
		Publish(bus, Removed[T]{Entity: ent, Handle: handle})
	}
	return true, notify, nil
}

// dropRecord removes one record pointer, preserving order.
func dropRecord[T Component](recs []*record[T], r *record[T]) []*record[T] {
	for i, rr := range recs {
		if rr == r {
			return append(recs[:i], recs[i+1:]...)
		}
	}
	return recs
}

// dropEntity removes one entity, preserving order.
func dropEntity(ents []Entity, e Entity) []Entity {
	for i, ee := range ents {
		if ee == e {
			return append(ents[:i], ents[i+1:]...)
		}
	}
	return ents
}
