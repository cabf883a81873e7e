package ecs

// EntityHandle is a transient builder for inserting and removing components
// on one specific entity. Its lifetime is bounded by the call that produced
// it; it does not hold any borrow guard open between calls.
type EntityHandle struct {
	storages *AllStorages
	id       EntityId
}

// Id returns the handle's underlying EntityId.
func (h EntityHandle) Id() EntityId {
	return h.id
}

// Insert ensures a ComponentStore[C] exists, inserts c at this entity's
// index, and returns the handle for chaining.
func Insert[C any](h EntityHandle, c C) EntityHandle {
	live := h.storages.entities.EntityToAlive(h.id)

	t := componentType[C]()
	pos := h.storages.components.lookupOrInsert(t, newComponentStore[C])
	store, release, err := borrowMut[*ComponentStore[C]](&h.storages.components, pos)
	if err != nil {
		panic("ecs: " + err.Error())
	}
	defer release()

	store.Insert(live.Index(), c)
	return h
}

// Remove deletes C from this entity, if a ComponentStore[C] is registered;
// it is a no-op otherwise. Returns the handle for chaining.
func Remove[C any](h EntityHandle) EntityHandle {
	live := h.storages.entities.EntityToAlive(h.id)

	t := componentType[C]()
	pos, ok := h.storages.components.lookup(t)
	if !ok {
		return h
	}
	store, release, err := borrowMut[*ComponentStore[C]](&h.storages.components, pos)
	if err != nil {
		panic("ecs: " + err.Error())
	}
	defer release()

	store.Remove(live.Index())
	return h
}

// Despawn consumes the handle, removing every component the entity carries
// and retiring its id.
func (h EntityHandle) Despawn() {
	h.storages.DespawnEntity(h.id)
}
