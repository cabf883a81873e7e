package ecs

// World is the top-level object a host program interacts with. It owns an
// AllStorages and exposes the spawn / entity / insert-unique / get / run
// surface described in the package's design notes.
type World struct {
	storages AllStorages
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{}
}

// Spawn allocates a new entity and returns a handle bound to it.
func (w *World) Spawn() EntityHandle {
	return w.storages.Spawn()
}

// Entity returns a handle to id. It panics if id is not alive.
func (w *World) Entity(id EntityId) EntityHandle {
	return w.storages.Entity(id)
}

// DespawnEntity removes every component id carries and retires it. It
// panics if id is dead or if any component store is currently borrowed.
func (w *World) DespawnEntity(id EntityId) {
	w.storages.DespawnEntity(id)
}

// InsertUnique registers the single process-wide instance of T, returning
// false without effect if T was already registered.
func InsertUnique[T any](w *World, v T) bool {
	return insertUnique(&w.storages, v)
}

// GetComp acquires a read borrow descriptor for component type C. It panics
// if the borrow cannot be acquired, which is the convenience path;
// TryGetComp is the non-panicking equivalent.
func GetComp[C any](w *World) Comp[C] {
	d, err := TryGetComp[C](w)
	if err != nil {
		panic("ecs: get failed: " + err.Error())
	}
	return d
}

// TryGetComp is the non-panicking form of GetComp.
func TryGetComp[C any](w *World) (Comp[C], error) {
	var d Comp[C]
	if err := d.bind(w); err != nil {
		return Comp[C]{}, err
	}
	return d, nil
}

// GetCompMut acquires a write borrow descriptor for component type C. It
// panics if the borrow cannot be acquired; TryGetCompMut is the
// non-panicking equivalent.
func GetCompMut[C any](w *World) CompMut[C] {
	d, err := TryGetCompMut[C](w)
	if err != nil {
		panic("ecs: get failed: " + err.Error())
	}
	return d
}

// TryGetCompMut is the non-panicking form of GetCompMut.
func TryGetCompMut[C any](w *World) (CompMut[C], error) {
	var d CompMut[C]
	if err := d.bind(w); err != nil {
		return CompMut[C]{}, err
	}
	return d, nil
}

// GetUnique acquires a read borrow descriptor for unique type T. It panics
// if T was never inserted or the borrow cannot be acquired; TryGetUnique is
// the non-panicking equivalent.
func GetUnique[T any](w *World) Unique[T] {
	d, err := TryGetUnique[T](w)
	if err != nil {
		panic("ecs: get failed: " + err.Error())
	}
	return d
}

// TryGetUnique is the non-panicking form of GetUnique.
func TryGetUnique[T any](w *World) (Unique[T], error) {
	var d Unique[T]
	if err := d.bind(w); err != nil {
		return Unique[T]{}, err
	}
	return d, nil
}

// GetUniqueMut acquires a write borrow descriptor for unique type T. It
// panics if T was never inserted or the borrow cannot be acquired;
// TryGetUniqueMut is the non-panicking equivalent.
func GetUniqueMut[T any](w *World) UniqueMut[T] {
	d, err := TryGetUniqueMut[T](w)
	if err != nil {
		panic("ecs: get failed: " + err.Error())
	}
	return d
}

// TryGetUniqueMut is the non-panicking form of GetUniqueMut.
func TryGetUniqueMut[T any](w *World) (UniqueMut[T], error) {
	var d UniqueMut[T]
	if err := d.bind(w); err != nil {
		return UniqueMut[T]{}, err
	}
	return d, nil
}
