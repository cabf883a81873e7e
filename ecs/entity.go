package ecs

import (
	"fmt"
	"math"
)

// maxVersion is the terminal version value. A slot whose version reaches it
// is retired forever: it is never pushed back onto the recycle list.
const maxVersion uint32 = math.MaxUint32

// EntityId is an opaque, copyable, equality-comparable entity identifier.
// Index addresses a slot in the allocator; Version distinguishes successive
// lifetimes of that slot so a stale id can never be confused with whatever
// currently occupies the index.
type EntityId struct {
	Index   uint32
	Version uint32
}

// String renders an id as "<index>v<version>".
func (id EntityId) String() string {
	return fmt.Sprintf("%dv%d", id.Index, id.Version)
}

// LiveEntity is a proof-of-liveness view of an EntityId: it can only be
// produced by validating the id against the allocator that issued it, and
// its only observable operation is yielding the index a component store
// should be keyed on.
type LiveEntity struct {
	id    EntityId
	alloc *EntityAllocator
}

// Index returns the component-store key for this live entity.
func (e LiveEntity) Index() uint32 {
	return e.id.Index
}

// Id returns the underlying EntityId.
func (e LiveEntity) Id() EntityId {
	return e.id
}

// EntityAllocator hands out generational entity identifiers and recycles
// despawned slots through an implicit free list threaded through the slots
// themselves.
//
// storage[index] holds the slot's current EntityId. While a slot is live,
// Version is authoritative and Index equals the slot's own index. While a
// slot is dead and recyclable, its Index field is repurposed to point at the
// next free slot in the chain (or at itself, for the last link), and
// Version is whatever the slot will carry the next time it is spawned.
type EntityAllocator struct {
	next         uint32
	recycleHead  uint32
	recycleCount uint32
	storage      SparseSet[EntityId]
}

// NewEntityAllocator returns an empty allocator.
func NewEntityAllocator() *EntityAllocator {
	return &EntityAllocator{}
}

// Spawn allocates a fresh or recycled EntityId. It panics if the index space
// is exhausted, which is a terminal, implementation-defined condition.
func (a *EntityAllocator) Spawn() EntityId {
	if a.recycleCount > 0 {
		index := a.recycleHead
		slot, _ := a.storage.Get(index)
		if slot.Index == index {
			a.recycleHead = index // last link in the chain pointed at itself
		} else {
			a.recycleHead = slot.Index
		}
		a.recycleCount--

		id := EntityId{Index: index, Version: slot.Version}
		*slot = id
		return id
	}

	if a.next == maxVersion {
		panic("ecs: out of entities")
	}

	index := a.next
	a.next++
	id := EntityId{Index: index, Version: 0}
	a.storage.Insert(index, id)
	return id
}

// Despawn retires the given id's slot. It panics if the id is already dead
// or was never allocated, since calling Despawn twice on the same id is a
// programming error, not a runtime condition.
func (a *EntityAllocator) Despawn(id EntityId) {
	slot, ok := a.storage.Get(id.Index)
	if !ok || slot.Version != id.Version {
		panic(fmt.Sprintf("ecs: despawn of dead entity %s", id))
	}

	newVersion := slot.Version + 1
	slot.Version = newVersion
	if newVersion < maxVersion {
		if a.recycleCount == 0 {
			slot.Index = id.Index // last (only) link points at itself
		} else {
			slot.Index = a.recycleHead
		}
		a.recycleHead = id.Index
		a.recycleCount++
	}
	// newVersion == maxVersion: slot is retired, left out of the free list.
}

// IsAlive reports whether id names the current occupant of its slot.
func (a *EntityAllocator) IsAlive(id EntityId) bool {
	slot, ok := a.storage.Get(id.Index)
	return ok && slot.Version == id.Version
}

// EntityToAlive validates id and returns a LiveEntity usable as a component
// store key. It panics if id is dead, since using a dead id is a
// programming error.
func (a *EntityAllocator) EntityToAlive(id EntityId) LiveEntity {
	if !a.IsAlive(id) {
		panic(fmt.Sprintf("ecs: entity %s is not alive", id))
	}
	return LiveEntity{id: id, alloc: a}
}

// Count returns the number of slots ever allocated, live or retired.
func (a *EntityAllocator) Count() int {
	return int(a.next)
}
