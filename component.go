package entitysystem

// Component is pure data used to compose discrete aspects on an entity.
// Every component type must expose its own unique record identity, distinct
// from the identifier of the entity that owns it.
type Component interface {
	// ComponentID returns the unique identity of this component record.
	ComponentID() ID
}

// Meta carries the identity every component must expose. Embedding it in a
// struct initialized with NewMeta satisfies Component with no further code:
//
//	type Position struct {
//	    entitysystem.Meta
//	    X, Y float32
//	}
//
//	pos := Position{Meta: entitysystem.NewMeta(), X: 1, Y: 2}
//
// Construction is explicit on purpose: a zero Meta is usable but all zero
// Metas share the same ComponentID, so records that rely on their own
// identity must be built through NewMeta.
type Meta struct {
	id ID
}

// NewMeta mints the identity for a new component record.
func NewMeta() Meta {
	return Meta{id: NewID()}
}

// ComponentID returns the component's own unique identity.
func (m Meta) ComponentID() ID {
	return m.id
}
