package entitysystem

// View is a read-only view of one stored component record. While any Views
// of a record are outstanding, no mutable view of it can be acquired, so
// the data read through Component is stable until Release.
//
// A View must be released when no longer needed and must not be used
// afterwards.
type View[T Component] struct {
	rec      *record[T]
	released bool
}

// Component returns a copy of the record's data.
func (v *View[T]) Component() T {
	return v.rec.comp
}

// Entity returns the entity that owns the record.
func (v *View[T]) Entity() Entity {
	return v.rec.entity
}

// Handle returns the record's handle.
func (v *View[T]) Handle() Handle {
	return v.rec.handle
}

// Release returns the view to the store. Releasing twice is a no-op.
func (v *View[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.rec.releaseRead()
}

// MutView is the exclusively-mutable view of one stored component record.
// While it is outstanding no other view of the record, read-only or
// mutable, can be acquired. Mutations through Component become visible to
// subsequent queries once the view is released.
type MutView[T Component] struct {
	rec      *record[T]
	released bool
}

// Component returns a pointer to the record's data. The pointer must not be
// retained past Release.
func (v *MutView[T]) Component() *T {
	return &v.rec.comp
}

// Entity returns the entity that owns the record.
func (v *MutView[T]) Entity() Entity {
	return v.rec.entity
}

// Handle returns the record's handle.
func (v *MutView[T]) Handle() Handle {
	return v.rec.handle
}

// Release returns the view to the store. Releasing twice is a no-op.
func (v *MutView[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.rec.releaseWrite()
}

// ReleaseAll releases every view in the slice.
func ReleaseAll[T Component](views []*View[T]) {
	for _, v := range views {
		v.Release()
	}
}

// ReleaseAllMut releases every mutable view in the slice.
func ReleaseAllMut[T Component](views []*MutView[T]) {
	for _, v := range views {
		v.Release()
	}
}
