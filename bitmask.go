package entitysystem

// bitmask256 represents a set of up to 256 component type IDs. The
// ComponentManager keeps one per entity, recording which component types the
// entity currently owns; multi-type filters match against it without
// consulting every per-type store.
type bitmask256 [4]uint64

// set enables the bit corresponding to the given type ID.
func (m *bitmask256) set(bit uint8) {
	i := bit >> 6 // (bit / 64) to find the uint64 index
	o := bit & 63 // (bit % 64) to find the bit offset
	m[i] |= uint64(1) << uint64(o)
}

// unset disables the bit corresponding to the given type ID.
func (m *bitmask256) unset(bit uint8) {
	i := bit >> 6
	o := bit & 63
	m[i] &= ^(uint64(1) << uint64(o))
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(bit uint8) bool {
	i := bit >> 6
	o := bit & 63
	return (m[i] & (uint64(1) << uint64(o))) != 0
}

// isZero reports whether no bits are set.
func (m bitmask256) isZero() bool {
	return m == bitmask256{}
}
