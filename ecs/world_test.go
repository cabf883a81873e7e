package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Foo struct{ V int }
type Bar struct{ V int }

func TestWorld_BasicInsertAndGet(t *testing.T) {
	w := NewWorld()
	a := Insert(w.Spawn(), Foo{V: 10}).Id()
	b := Insert(w.Spawn(), Foo{V: 20}).Id()

	comp := GetComp[Foo](w)
	defer comp.Release()

	va, ok := comp.Get(a)
	assert.True(t, ok)
	assert.Equal(t, 10, va.V)

	vb, ok := comp.Get(b)
	assert.True(t, ok)
	assert.Equal(t, 20, vb.V)
}

func TestWorld_RemoveThenReinsert(t *testing.T) {
	w := NewWorld()
	handle := w.Spawn()
	a := handle.Id()
	Insert(handle, Foo{V: 10})

	compMut := GetCompMut[Foo](w)
	removed, ok := compMut.Remove(a)
	assert.True(t, ok)
	assert.Equal(t, 10, removed.V)
	compMut.Release()

	Insert(w.Entity(a), Foo{V: 20})

	comp := GetComp[Foo](w)
	defer comp.Release()
	v, ok := comp.Get(a)
	assert.True(t, ok)
	assert.Equal(t, 20, v.V)
}

func TestWorld_IterateAndMutateInsideSystem(t *testing.T) {
	w := NewWorld()
	a := Insert(w.Spawn(), Foo{V: 10}).Id()
	Insert(w.Spawn(), Foo{V: 20})

	result := w.Run(func(foo Comp[Foo]) int {
		sum := 0
		foo.Iter(func(f *Foo) { sum += f.V })
		return sum
	})
	assert.True(t, result.Ok())
	assert.Equal(t, 30, result.Value)

	result = w.Run(func(foo CompMut[Foo]) error {
		ptr, ok := foo.GetMut(a)
		assert.True(t, ok)
		ptr.V = 30
		return nil
	})
	assert.True(t, result.Ok())

	comp := GetComp[Foo](w)
	defer comp.Release()
	v, _ := comp.Get(a)
	assert.Equal(t, 30, v.V)
}

func TestWorld_UniqueLifecycle(t *testing.T) {
	w := NewWorld()
	assert.True(t, InsertUnique(w, 100))

	u := GetUnique[int](w)
	assert.Equal(t, 100, u.Get())
	u.Release()

	um := GetUniqueMut[int](w)
	um.Set(200)
	um.Release()

	u = GetUnique[int](w)
	defer u.Release()
	assert.Equal(t, 200, u.Get())
}

func TestWorld_InsertUniqueTwiceIsRejected(t *testing.T) {
	w := NewWorld()
	assert.True(t, InsertUnique(w, 1))
	assert.False(t, InsertUnique(w, 2))
}

func TestWorld_EntityReuseClearsOldComponents(t *testing.T) {
	w := NewWorld()
	handle := w.Spawn()
	a := handle.Id()
	Insert(handle, Foo{V: 1})
	handle.Despawn()

	b := w.Spawn().Id()

	assert.Equal(t, a.Index, b.Index)
	assert.Less(t, a.Version, b.Version)

	comp := GetComp[Foo](w)
	defer comp.Release()
	_, ok := comp.Get(b)
	assert.False(t, ok)
}

func TestWorld_OverlappingMutConflictFailsViaRun(t *testing.T) {
	w := NewWorld()
	Insert(w.Spawn(), Foo{V: 1})

	result := w.Run(func(a CompMut[Foo], b CompMut[Foo]) {})
	assert.False(t, result.Ok())
	assert.NotNil(t, result.Err.Borrow)
	assert.Equal(t, InvalidBorrow, result.Err.Borrow.Kind)
}

func TestWorld_GetUniquePanicsWhenNeverInserted(t *testing.T) {
	w := NewWorld()
	assert.Panics(t, func() { GetUnique[int](w) })
}

func TestWorld_EntityPanicsOnDeadId(t *testing.T) {
	w := NewWorld()
	handle := w.Spawn()
	id := handle.Id()
	handle.Despawn()

	assert.Panics(t, func() { w.Entity(id) })
}

func TestWorld_DespawnPanicsWhileStorageBorrowed(t *testing.T) {
	w := NewWorld()
	handle := w.Spawn()
	id := handle.Id()
	Insert(handle, Foo{V: 1})

	comp := GetCompMut[Foo](w)
	defer comp.Release()

	assert.Panics(t, func() { w.DespawnEntity(id) })
}

func TestWorld_RunSupportsMultipleComponentTypes(t *testing.T) {
	w := NewWorld()
	e := Insert(Insert(w.Spawn(), Foo{V: 1}), Bar{V: 2}).Id()

	result := w.Run(func(foo Comp[Foo], bar CompMut[Bar]) {
		f, _ := foo.Get(e)
		b, _ := bar.GetMut(e)
		b.V += f.V
	})
	assert.True(t, result.Ok())

	bar := GetComp[Bar](w)
	defer bar.Release()
	v, _ := bar.Get(e)
	assert.Equal(t, 3, v.V)
}
