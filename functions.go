package entitysystem

import "fmt"

// Insert stores component as owned by entity and returns the handle of the
// new record. Multiple inserts of the same type for the same entity are
// permitted and each produces an independent record; the store never
// deduplicates. The entity is not validated against any registry.
//
// Insert publishes an Inserted[T] event on the manager's bus after the
// record is stored.
//
// Parameters:
//   - m: The ComponentManager that will own the record.
//   - entity: The owning Entity.
//   - component: The component data of type `T` to store.
//
// Returns:
//   - The Handle of the stored record.
func Insert[T Component](m *ComponentManager, entity Entity, component T) Handle {
	m.mu.Lock()
	s := storeFor[T](m)
	h := Handle{id: NewID(), entity: entity, typeID: s.id}
	r := &record[T]{comp: component, entity: entity, handle: h}
	s.records = append(s.records, r)
	if _, ok := s.byEntity[entity]; !ok {
		s.order = append(s.order, entity)
	}
	s.byEntity[entity] = append(s.byEntity[entity], r)
	s.byHandle[h.id] = r
	m.setMask(entity, s.id)
	bus := m.events
	m.mu.Unlock()
	Publish(bus, Inserted[T]{Entity: entity, Handle: h, Component: component})
	return h
}

// FindFor retrieves read-only views of every component of type `T` owned by
// entity, in insertion order. An entity with no matching components yields
// an empty result, not an error.
//
// Acquisition is all-or-nothing: if any matching record currently has a
// mutable view outstanding, FindFor fails with ErrConcurrentAccess and
// leaves nothing acquired.
//
// Parameters:
//   - m: The ComponentManager to query.
//   - entity: The Entity whose components to retrieve.
//
// Returns:
//   - Read-only views in insertion order, or ErrConcurrentAccess.
func FindFor[T Component](m *ComponentManager, entity Entity) ([]*View[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := lookupStore[T](m)
	if !ok {
		return nil, nil
	}
	return acquireReads(s.byEntity[entity])
}

// FindForMut retrieves exclusively-mutable views of every component of type
// `T` owned by entity, in insertion order. It fails with
// ErrConcurrentAccess, acquiring nothing, if any matching record has any
// view outstanding.
func FindForMut[T Component](m *ComponentManager, entity Entity) ([]*MutView[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := lookupStore[T](m)
	if !ok {
		return nil, nil
	}
	return acquireWrites(s.byEntity[entity])
}

// Find retrieves read-only views of every component of type `T` across all
// entities, in global insertion order. The order is stable between calls as
// long as no records are removed.
//
// Acquisition is all-or-nothing, as with FindFor.
func Find[T Component](m *ComponentManager) ([]*View[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := lookupStore[T](m)
	if !ok {
		return nil, nil
	}
	return acquireReads(s.records)
}

// FindMut retrieves exclusively-mutable views of every component of type
// `T` across all entities, in global insertion order. It fails with
// ErrConcurrentAccess, acquiring nothing, if any record of `T` has any view
// outstanding.
func FindMut[T Component](m *ComponentManager) ([]*MutView[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := lookupStore[T](m)
	if !ok {
		return nil, nil
	}
	return acquireWrites(s.records)
}

// Get retrieves a read-only view of the first component of type `T` owned
// by entity. It returns ErrNoComponent when the entity owns none, and
// ErrConcurrentAccess when the record has a mutable view outstanding.
func Get[T Component](m *ComponentManager, entity Entity) (*View[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, err := firstRecord[T](m, entity)
	if err != nil {
		return nil, err
	}
	if !r.acquireRead() {
		return nil, fmt.Errorf("get %s: %w", r.handle.id, ErrConcurrentAccess)
	}
	return &View[T]{rec: r}, nil
}

// GetMut retrieves the exclusively-mutable view of the first component of
// type `T` owned by entity. It returns ErrNoComponent when the entity owns
// none, and ErrConcurrentAccess when the record has any view outstanding.
func GetMut[T Component](m *ComponentManager, entity Entity) (*MutView[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, err := firstRecord[T](m, entity)
	if err != nil {
		return nil, err
	}
	if !r.acquireWrite() {
		return nil, fmt.Errorf("get mut %s: %w", r.handle.id, ErrConcurrentAccess)
	}
	return &MutView[T]{rec: r}, nil
}

// Contains reports whether the manager holds any records of type `T`.
func Contains[T Component](m *ComponentManager) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := lookupStore[T](m)
	return ok && len(s.records) > 0
}

// FindEntities returns the distinct entities owning at least one component
// of type `T`, in first-insertion order.
func FindEntities[T Component](m *ComponentManager) []Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := lookupStore[T](m)
	if !ok || len(s.order) == 0 {
		return nil
	}
	return append([]Entity(nil), s.order...)
}

// Remove deletes the record identified by handle. It reports false when no
// such record exists, and fails with ErrConcurrentAccess, removing nothing,
// when the record has any view outstanding. A successful removal publishes
// a Removed event for the record's type.
//
// Removal is an explicit extension of the store's contract: records are
// otherwise retained for the lifetime of the manager.
func Remove(m *ComponentManager, handle Handle) (bool, error) {
	m.mu.Lock()
	if int(handle.typeID) >= len(m.stores) {
		m.mu.Unlock()
		return false, nil
	}
	removed, notify, err := m.stores[handle.typeID].removeByHandle(m, handle)
	bus := m.events
	m.mu.Unlock()
	if notify != nil {
		notify(bus)
	}
	return removed, err
}

// RemoveType deletes every record of type `T`, dropping the whole per-type
// index. It reports false when the manager holds no records of `T`, and
// fails with ErrConcurrentAccess, removing nothing, when any record of `T`
// has a view outstanding. Each removed record publishes a Removed[T] event.
func RemoveType[T Component](m *ComponentManager) (bool, error) {
	m.mu.Lock()
	s, ok := lookupStore[T](m)
	if !ok || len(s.records) == 0 {
		m.mu.Unlock()
		return false, nil
	}
	for _, r := range s.records {
		if !r.idle() {
			m.mu.Unlock()
			return false, fmt.Errorf("remove type %s: %w", r.handle.id, ErrConcurrentAccess)
		}
	}
	removed := s.records
	s.records = nil
	s.byEntity = make(map[Entity][]*record[T])
	s.byHandle = make(map[ID]*record[T])
	for _, e := range s.order {
		m.unsetMask(e, s.id)
	}
	s.order = nil
	bus := m.events
	m.mu.Unlock()
	for _, r := range removed {
		Publish(bus, Removed[T]{Entity: r.entity, Handle: r.handle})
	}
	return true, nil
}

// firstRecord returns the first record of T for the entity. Caller must
// hold m.mu.
func firstRecord[T Component](m *ComponentManager, entity Entity) (*record[T], error) {
	s, ok := lookupStore[T](m)
	if ok {
		if recs := s.byEntity[entity]; len(recs) > 0 {
			return recs[0], nil
		}
	}
	return nil, fmt.Errorf("entity %s: %w", entity, ErrNoComponent)
}

// acquireReads turns records into read views, all-or-nothing.
func acquireReads[T Component](recs []*record[T]) ([]*View[T], error) {
	if len(recs) == 0 {
		return nil, nil
	}
	views := make([]*View[T], 0, len(recs))
	for _, r := range recs {
		if !r.acquireRead() {
			ReleaseAll(views)
			return nil, fmt.Errorf("read %s: %w", r.handle.id, ErrConcurrentAccess)
		}
		views = append(views, &View[T]{rec: r})
	}
	return views, nil
}

// acquireWrites turns records into mutable views, all-or-nothing.
func acquireWrites[T Component](recs []*record[T]) ([]*MutView[T], error) {
	if len(recs) == 0 {
		return nil, nil
	}
	views := make([]*MutView[T], 0, len(recs))
	for _, r := range recs {
		if !r.acquireWrite() {
			ReleaseAllMut(views)
			return nil, fmt.Errorf("write %s: %w", r.handle.id, ErrConcurrentAccess)
		}
		views = append(views, &MutView[T]{rec: r})
	}
	return views, nil
}
