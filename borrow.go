package entitysystem

import "sync/atomic"

// writerHeld marks a record whose single mutable view is outstanding.
const writerHeld = -1

// borrowState is the per-record borrow ledger. The state counts outstanding
// read-only views, or holds writerHeld while a mutable view exists. It is
// manipulated with compare-and-swap only, so views can be acquired and
// released from any goroutine without taking the manager's lock.
type borrowState struct {
	state atomic.Int32
}

// acquireRead registers one more read-only view. It fails when a mutable
// view is outstanding.
func (b *borrowState) acquireRead() bool {
	for {
		s := b.state.Load()
		if s == writerHeld {
			return false
		}
		if b.state.CompareAndSwap(s, s+1) {
			return true
		}
	}
}

// releaseRead drops one read-only view.
func (b *borrowState) releaseRead() {
	b.state.Add(-1)
}

// acquireWrite claims the exclusive mutable view. It fails when any view,
// read-only or mutable, is outstanding.
func (b *borrowState) acquireWrite() bool {
	return b.state.CompareAndSwap(0, writerHeld)
}

// releaseWrite drops the mutable view.
func (b *borrowState) releaseWrite() {
	b.state.CompareAndSwap(writerHeld, 0)
}

// idle reports whether no view of any kind is outstanding.
func (b *borrowState) idle() bool {
	return b.state.Load() == 0
}
