package entitysystem

import "errors"

var (
	// ErrConcurrentAccess reports a violation of the borrow discipline: a
	// mutable view was requested for a record that already has outstanding
	// views, or a read-only view was requested while a mutable view is held.
	// The failing operation acquires nothing.
	ErrConcurrentAccess = errors.New("entitysystem: concurrent access violation")

	// ErrNoComponent reports that an entity owns no component of the
	// requested type. Only single-record lookups (Get, GetMut, Filter.Get)
	// return it; sequence queries report absence as an empty result.
	ErrNoComponent = errors.New("entitysystem: no component")

	// ErrNoSuchEntity reports a lookup of an unregistered entity name.
	ErrNoSuchEntity = errors.New("entitysystem: no such entity")
)
