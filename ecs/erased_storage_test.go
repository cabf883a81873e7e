package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fooStore struct{ n int }
type barStore struct{ n int }

func TestErasedStorageMap_HandleStability(t *testing.T) {
	var m ErasedStorageMap
	fooType := reflect.TypeOf(fooStore{})
	barType := reflect.TypeOf(barStore{})

	pos1 := m.lookupOrInsert(fooType, func() ErasedStore { return &fooStore{} })
	m.lookupOrInsert(barType, func() ErasedStore { return &barStore{} })
	pos2, ok := m.lookup(fooType)

	assert.True(t, ok)
	assert.Equal(t, pos1, pos2)
}

func TestErasedStorageMap_InsertNewRejectsDuplicate(t *testing.T) {
	var m ErasedStorageMap
	fooType := reflect.TypeOf(fooStore{})

	assert.True(t, m.insertNew(fooType, &fooStore{}))
	assert.False(t, m.insertNew(fooType, &fooStore{}))
}

func TestErasedStorageMap_WriteExcludesReadAndWrite(t *testing.T) {
	var m ErasedStorageMap
	fooType := reflect.TypeOf(fooStore{})
	pos := m.lookupOrInsert(fooType, func() ErasedStore { return &fooStore{} })

	_, releaseWrite, err := borrowMut[*fooStore](&m, pos)
	assert.NoError(t, err)

	_, _, err = borrowRef[*fooStore](&m, pos)
	assert.Error(t, err)
	assert.Equal(t, InvalidBorrow, err.(*BorrowError).Kind)

	_, _, err = borrowMut[*fooStore](&m, pos)
	assert.Error(t, err)

	releaseWrite()

	_, releaseRead, err := borrowRef[*fooStore](&m, pos)
	assert.NoError(t, err)
	_, _, err = borrowMut[*fooStore](&m, pos)
	assert.Error(t, err)
	releaseRead()
}

func TestErasedStorageMap_MultipleReadersAllowed(t *testing.T) {
	var m ErasedStorageMap
	fooType := reflect.TypeOf(fooStore{})
	pos := m.lookupOrInsert(fooType, func() ErasedStore { return &fooStore{} })

	_, release1, err := borrowRef[*fooStore](&m, pos)
	assert.NoError(t, err)
	_, release2, err := borrowRef[*fooStore](&m, pos)
	assert.NoError(t, err)

	release1()
	release2()
}
