package ecs

// Param is the Borrow Protocol every system parameter type implements:
// bind acquires whatever storage borrow the descriptor needs from w,
// populating the descriptor in place (hence the pointer receiver every
// implementation uses), and Release lets the caller give the borrow back.
// Component descriptors register their component type on first use;
// unique descriptors only look up and fail if the unique was never
// inserted.
type Param interface {
	bind(w *World) error
	Release()
}

// Comp is a read borrow over ComponentStore[C].
type Comp[C any] struct {
	store   *ComponentStore[C]
	alloc   *EntityAllocator
	release func()
}

func (c *Comp[C]) bind(w *World) error {
	t := componentType[C]()
	pos := w.storages.components.lookupOrInsert(t, newComponentStore[C])
	store, release, err := borrowRef[*ComponentStore[C]](&w.storages.components, pos)
	if err != nil {
		return err
	}
	c.store = store
	c.alloc = &w.storages.entities
	c.release = release
	return nil
}

// Release gives the borrow back. Safe to call more than once.
func (c Comp[C]) Release() {
	if c.release != nil {
		c.release()
	}
}

// Get returns the component held by id, implicitly validating id's
// liveness first: a dead or unknown id reads as absent, never as a stale
// value.
func (c Comp[C]) Get(id EntityId) (*C, bool) {
	if c.alloc == nil || !c.alloc.IsAlive(id) {
		return nil, false
	}
	return c.store.Get(id.Index)
}

// Contains reports whether id has this component.
func (c Comp[C]) Contains(id EntityId) bool {
	if c.alloc == nil || !c.alloc.IsAlive(id) {
		return false
	}
	return c.store.Contains(id.Index)
}

// Iter visits every live component in dense order.
func (c Comp[C]) Iter(fn func(*C)) {
	c.store.Iter(fn)
}

// CompMut is a write borrow over ComponentStore[C].
type CompMut[C any] struct {
	store   *ComponentStore[C]
	alloc   *EntityAllocator
	release func()
}

func (c *CompMut[C]) bind(w *World) error {
	t := componentType[C]()
	pos := w.storages.components.lookupOrInsert(t, newComponentStore[C])
	store, release, err := borrowMut[*ComponentStore[C]](&w.storages.components, pos)
	if err != nil {
		return err
	}
	c.store = store
	c.alloc = &w.storages.entities
	c.release = release
	return nil
}

// Release gives the borrow back. Safe to call more than once.
func (c CompMut[C]) Release() {
	if c.release != nil {
		c.release()
	}
}

// Get returns the component held by id.
func (c CompMut[C]) Get(id EntityId) (*C, bool) {
	if c.alloc == nil || !c.alloc.IsAlive(id) {
		return nil, false
	}
	return c.store.Get(id.Index)
}

// GetMut is an alias for Get kept for symmetry with the read-only
// descriptor's naming; both return a mutable pointer since CompMut always
// holds the write guard.
func (c CompMut[C]) GetMut(id EntityId) (*C, bool) {
	return c.Get(id)
}

// Contains reports whether id has this component.
func (c CompMut[C]) Contains(id EntityId) bool {
	if c.alloc == nil || !c.alloc.IsAlive(id) {
		return false
	}
	return c.store.Contains(id.Index)
}

// Insert stores v on id, returning the previous value if any.
func (c CompMut[C]) Insert(id EntityId, v C) (C, bool) {
	live := c.alloc.EntityToAlive(id)
	return c.store.Insert(live.Index(), v)
}

// Remove deletes the component from id, returning it if present.
func (c CompMut[C]) Remove(id EntityId) (C, bool) {
	if c.alloc == nil || !c.alloc.IsAlive(id) {
		var zero C
		return zero, false
	}
	return c.store.Remove(id.Index)
}

// Iter visits every live component in dense order.
func (c CompMut[C]) Iter(fn func(*C)) {
	c.store.Iter(fn)
}

// IterMut is an alias for Iter kept for symmetry with Get/GetMut.
func (c CompMut[C]) IterMut(fn func(*C)) {
	c.store.Iter(fn)
}

// Unique is a read borrow over UniqueStore[T]. Unlike Comp, it does not
// register T on first use: a unique must already have been inserted via
// World.InsertUnique.
type Unique[T any] struct {
	store   *UniqueStore[T]
	release func()
}

func (u *Unique[T]) bind(w *World) error {
	t := uniqueType[T]()
	pos, ok := w.storages.uniques.lookup(t)
	if !ok {
		return errStorageNotFound(t.String())
	}
	store, release, err := borrowRef[*UniqueStore[T]](&w.storages.uniques, pos)
	if err != nil {
		return err
	}
	u.store = store
	u.release = release
	return nil
}

// Release gives the borrow back. Safe to call more than once.
func (u Unique[T]) Release() {
	if u.release != nil {
		u.release()
	}
}

// Get returns the unique value.
func (u Unique[T]) Get() T {
	return *u.store.Get()
}

// UniqueMut is a write borrow over UniqueStore[T]. Like Unique, it never
// registers T — it errors with StorageNotFound if none was inserted.
type UniqueMut[T any] struct {
	store   *UniqueStore[T]
	release func()
}

func (u *UniqueMut[T]) bind(w *World) error {
	t := uniqueType[T]()
	pos, ok := w.storages.uniques.lookup(t)
	if !ok {
		return errStorageNotFound(t.String())
	}
	store, release, err := borrowMut[*UniqueStore[T]](&w.storages.uniques, pos)
	if err != nil {
		return err
	}
	u.store = store
	u.release = release
	return nil
}

// Release gives the borrow back. Safe to call more than once.
func (u UniqueMut[T]) Release() {
	if u.release != nil {
		u.release()
	}
}

// Get returns the unique value.
func (u UniqueMut[T]) Get() T {
	return *u.store.Get()
}

// Set overwrites the unique value.
func (u UniqueMut[T]) Set(v T) {
	*u.store.Get() = v
}

// GetPtr returns a pointer to the unique value for in-place mutation.
func (u UniqueMut[T]) GetPtr() *T {
	return u.store.Get()
}
