package entitysystem

import "reflect"

// Filter iterates over all entities owning at least one component of type
// `T`, in first-insertion order. It is the mechanism processors use to walk
// the world each tick.
//
// The entity set is snapshotted on creation and on Reset; inserts and
// removals after that point are not reflected until the next Reset.
type Filter[T Component] struct {
	manager  *ComponentManager
	entities []Entity
	cur      int
}

// NewFilter creates a new Filter over every entity owning a component of
// type `T`.
//
// Parameters:
//   - m: The ComponentManager to query.
//
// Returns:
//   - A pointer to the newly created Filter[T].
func NewFilter[T Component](m *ComponentManager) *Filter[T] {
	f := &Filter[T]{manager: m}
	f.Reset()
	return f
}

// Reset rewinds the iterator and re-snapshots the matching entity set from
// the live store state.
func (f *Filter[T]) Reset() {
	f.manager.mu.RLock()
	if s, ok := lookupStore[T](f.manager); ok {
		f.entities = append(f.entities[:0], s.order...)
	} else {
		f.entities = f.entities[:0]
	}
	f.manager.mu.RUnlock()
	f.cur = -1
}

// Next advances the filter to the next matching entity. It returns true if
// one was found and must be called before Entity or Get.
//
// Example:
//
//	filter := entitysystem.NewFilter[Position](manager)
//	for filter.Next() {
//	    // ... process filter.Entity()
//	}
func (f *Filter[T]) Next() bool {
	f.cur++
	return f.cur < len(f.entities)
}

// Entity returns the current entity in the iteration. This should only be
// called after Next has returned true.
func (f *Filter[T]) Entity() Entity {
	return f.entities[f.cur]
}

// Get returns a copy of the first component of type `T` for the current
// entity. It fails with ErrConcurrentAccess while a mutable view of that
// record is outstanding, and with ErrNoComponent if the record was removed
// after the last Reset.
func (f *Filter[T]) Get() (T, error) {
	v, err := Get[T](f.manager, f.Entity())
	if err != nil {
		var zero T
		return zero, err
	}
	c := v.Component()
	v.Release()
	return c, nil
}

// Filter2 iterates over all entities owning at least one component of each
// of the types `A` and `B`. Order follows the first-insertion order of `A`.
type Filter2[A, B Component] struct {
	manager  *ComponentManager
	entities []Entity
	cur      int
}

// NewFilter2 creates a new Filter2 over every entity owning components of
// both type `A` and type `B`.
func NewFilter2[A, B Component](m *ComponentManager) *Filter2[A, B] {
	f := &Filter2[A, B]{manager: m}
	f.Reset()
	return f
}

// Reset rewinds the iterator and re-snapshots the matching entity set.
func (f *Filter2[A, B]) Reset() {
	f.manager.mu.RLock()
	f.entities = f.entities[:0]
	sa, okA := lookupStore[A](f.manager)
	idB, okB := f.manager.types[reflect.TypeOf((*B)(nil)).Elem()]
	if okA && okB {
		for _, e := range sa.order {
			if f.manager.masks[e].containsBit(idB) {
				f.entities = append(f.entities, e)
			}
		}
	}
	f.manager.mu.RUnlock()
	f.cur = -1
}

// Next advances the filter to the next matching entity.
func (f *Filter2[A, B]) Next() bool {
	f.cur++
	return f.cur < len(f.entities)
}

// Entity returns the current entity in the iteration.
func (f *Filter2[A, B]) Entity() Entity {
	return f.entities[f.cur]
}

// Get returns copies of the first components of types `A` and `B` for the
// current entity, under the same failure contract as Filter.Get.
func (f *Filter2[A, B]) Get() (A, B, error) {
	var zeroA A
	var zeroB B
	va, err := Get[A](f.manager, f.Entity())
	if err != nil {
		return zeroA, zeroB, err
	}
	a := va.Component()
	va.Release()
	vb, err := Get[B](f.manager, f.Entity())
	if err != nil {
		return zeroA, zeroB, err
	}
	b := vb.Component()
	vb.Release()
	return a, b, nil
}
