package entitysystem

import "github.com/google/uuid"

// ID is a unique 128-bit identifier (uuid v4). Entities, component records
// and store handles are all identified by IDs. Random generation makes the
// identifier space practically collision-free, so minting an ID never needs
// coordination and cannot fail.
type ID = uuid.UUID

// Entity is the identifier of a game object. It carries no payload; all of
// an entity's state lives in the components attached to it through a
// ComponentManager.
type Entity = ID

// NewID generates a fresh unique ID.
func NewID() ID {
	return uuid.New()
}
