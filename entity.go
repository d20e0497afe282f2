package entitysystem

import (
	"fmt"
	"sync"
)

// EntityManager mints entity identifiers. Entities are pure identity: the
// manager keeps no per-entity state beyond the optional name registry, and
// an Entity it returns is valid forever.
type EntityManager struct {
	mu    sync.RWMutex
	named map[string]Entity
}

// NewEntityManager creates an empty entity manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{named: make(map[string]Entity)}
}

// Create returns an anonymous entity, guaranteed distinct from every
// previously issued one. It cannot fail and is safe for concurrent use.
//
// Example:
//
//	em := entitysystem.NewEntityManager()
//	entity := em.Create()
func (em *EntityManager) Create() Entity {
	return NewID()
}

// CreateNamed returns an entity that can be looked up again with Named.
// Creating a second entity under the same name replaces the registration,
// not the earlier entity.
func (em *EntityManager) CreateNamed(name string) Entity {
	e := em.Create()
	em.mu.Lock()
	em.named[name] = e
	em.mu.Unlock()
	return e
}

// Named retrieves a previously registered named entity. It returns
// ErrNoSuchEntity when no entity was registered under name.
func (em *EntityManager) Named(name string) (Entity, error) {
	em.mu.RLock()
	e, ok := em.named[name]
	em.mu.RUnlock()
	if !ok {
		return Entity{}, fmt.Errorf("%w: no entity for name %q", ErrNoSuchEntity, name)
	}
	return e, nil
}
