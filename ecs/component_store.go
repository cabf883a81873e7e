package ecs

import "reflect"

// ComponentStore is a SparseSet of C given component-kind semantics: it is
// keyed by a LiveEntity's index and created lazily, the first time a
// borrow descriptor or insert touches component type C.
type ComponentStore[C any] struct {
	set SparseSet[C]
}

func newComponentStore[C any]() ErasedStore {
	return &ComponentStore[C]{}
}

// Get returns a pointer to the component at index, if present.
func (s *ComponentStore[C]) Get(index uint32) (*C, bool) {
	return s.set.Get(index)
}

// Contains reports whether index has a component.
func (s *ComponentStore[C]) Contains(index uint32) bool {
	return s.set.Contains(index)
}

// Insert stores c at index, returning the previous value if any.
func (s *ComponentStore[C]) Insert(index uint32, c C) (C, bool) {
	return s.set.Insert(index, c)
}

// Remove deletes the component at index, returning it if present.
func (s *ComponentStore[C]) Remove(index uint32) (C, bool) {
	return s.set.Remove(index)
}

// Len returns the number of entities carrying this component.
func (s *ComponentStore[C]) Len() int {
	return s.set.Len()
}

// Iter visits every live component in dense order.
func (s *ComponentStore[C]) Iter(fn func(*C)) {
	s.set.Iter(func(_ uint32, v *C) { fn(v) })
}

// removeEntity implements removableStore, the capability that lets
// AllStorages sweep every component store during despawn without knowing
// their concrete component types.
func (s *ComponentStore[C]) removeEntity(index uint32) {
	s.set.Remove(index)
}

func componentType[C any]() reflect.Type {
	var zero C
	return reflect.TypeOf(zero)
}
