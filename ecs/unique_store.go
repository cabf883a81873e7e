package ecs

import "reflect"

// UniqueStore holds the single process-wide instance of resource type T.
// It is created once by World.InsertUnique and, unlike ComponentStore,
// never implements removableStore: a despawn sweep only ever walks
// component stores, never uniques.
type UniqueStore[T any] struct {
	value T
}

func newUniqueStore[T any](v T) ErasedStore {
	return &UniqueStore[T]{value: v}
}

// Get returns a pointer to the held value.
func (u *UniqueStore[T]) Get() *T {
	return &u.value
}

func uniqueType[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}
