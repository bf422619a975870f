package ecs

import "fmt"

// Entity is an opaque identifier correlating components that belong to the
// same logical game object. Zero is never issued and means "no entity".
type Entity uint32

// maxEntity is the last id the allocator would hand out before overflow.
const maxEntity = ^Entity(0)

// Allocator issues entity identifiers. Ids are strictly increasing and never
// recycled for the lifetime of the process, so a stored Entity can never
// silently come to refer to a different object.
type Allocator struct {
	next Entity
}

func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Allocate returns the next unused identifier.
//
// Exhausting the 32-bit id space at gameplay allocation rates takes years of
// continuous play, so overflow is treated as a programming invariant
// violation and panics rather than wrapping onto live ids.
func (a *Allocator) Allocate() Entity {
	if a.next == maxEntity {
		panic(fmt.Sprintf("ecs: entity id space exhausted at %d", uint32(maxEntity)))
	}
	id := a.next
	a.next++
	return id
}

// Allocated reports how many ids have been issued so far.
func (a *Allocator) Allocated() int {
	return int(a.next - 1)
}
