package entitysystem

// Builder couples an EntityManager with a ComponentManager to spawn an
// entity and attach its first component in one call.
type Builder[T Component] struct {
	entities   *EntityManager
	components *ComponentManager
}

// NewBuilder creates a builder spawning entities with a component of type
// `T` attached.
func NewBuilder[T Component](em *EntityManager, cm *ComponentManager) *Builder[T] {
	return &Builder[T]{entities: em, components: cm}
}

// Spawn mints a new entity and inserts component under it.
func (b *Builder[T]) Spawn(component T) (Entity, Handle) {
	e := b.entities.Create()
	return e, Insert(b.components, e, component)
}

// SpawnNamed is Spawn with the entity registered under name.
func (b *Builder[T]) SpawnNamed(name string, component T) (Entity, Handle) {
	e := b.entities.CreateNamed(name)
	return e, Insert(b.components, e, component)
}

// Builder2 spawns entities with two components attached.
type Builder2[A, B Component] struct {
	entities   *EntityManager
	components *ComponentManager
}

// NewBuilder2 creates a builder spawning entities with components of types
// `A` and `B` attached.
func NewBuilder2[A, B Component](em *EntityManager, cm *ComponentManager) *Builder2[A, B] {
	return &Builder2[A, B]{entities: em, components: cm}
}

// Spawn mints a new entity and inserts both components under it.
func (b *Builder2[A, B]) Spawn(a A, bb B) (Entity, Handle, Handle) {
	e := b.entities.Create()
	return e, Insert(b.components, e, a), Insert(b.components, e, bb)
}

// SpawnNamed is Spawn with the entity registered under name.
func (b *Builder2[A, B]) SpawnNamed(name string, a A, bb B) (Entity, Handle, Handle) {
	e := b.entities.CreateNamed(name)
	return e, Insert(b.components, e, a), Insert(b.components, e, bb)
}
