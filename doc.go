// Package entitysystem implements a typed, queryable component store for
// game development, designed around the "RDBMS with code in systems"
// approach. It keeps game logic and data separate so that behavior is built
// by composition rather than inheritance.
//
//  1. Entity: a unique identifier of type ID for a game object. An Entity
//     does not contain data or code.
//  2. Component: pure data that composes one discrete aspect of an entity.
//  3. Processor: caller-supplied logic that runs continuously, iterating
//     over and modifying components. Processors live outside this package;
//     they drive it through the query API.
//
// Components of any caller-defined type are stored per entity, with any
// multiplicity, and queried either per entity or across all entities.
// Access is handed out as read-only or exclusively-mutable views under an
// enforced per-record borrow discipline: any number of read-only views may
// coexist, a mutable view is exclusive, and a violation fails with
// ErrConcurrentAccess instead of corrupting data.
package entitysystem
