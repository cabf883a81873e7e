package ecs

import "fmt"

// BorrowErrorKind distinguishes the ways a storage borrow can fail.
type BorrowErrorKind int

const (
	// StorageNotFound means the requested type was never registered with the World.
	StorageNotFound BorrowErrorKind = iota
	// InvalidBorrow means the read/write exclusion rule was violated: a write
	// was requested while any borrow was outstanding, or a read was requested
	// while a write was outstanding.
	InvalidBorrow
	// ValueNotFound means the storage exists but holds no value for the key
	// that was queried (reserved for value-not-present-in-store paths).
	ValueNotFound
)

func (k BorrowErrorKind) String() string {
	switch k {
	case StorageNotFound:
		return "storage not found"
	case InvalidBorrow:
		return "invalid borrow"
	case ValueNotFound:
		return "value not found"
	default:
		return "unknown borrow error"
	}
}

// BorrowError is the only recoverable error the library produces; it is
// returned by value, never swallowed, and never used for programming-error
// conditions (those panic instead).
type BorrowError struct {
	Kind BorrowErrorKind
	Type string
}

func (e *BorrowError) Error() string {
	if e.Type == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Type)
}

func errStorageNotFound(typeName string) *BorrowError {
	return &BorrowError{Kind: StorageNotFound, Type: typeName}
}

func errInvalidBorrow(typeName string) *BorrowError {
	return &BorrowError{Kind: InvalidBorrow, Type: typeName}
}

// SystemError wraps whatever caused a system invocation to fail: either a
// borrow could not be acquired for one of its parameters, or the system's own
// body returned a failure.
type SystemError struct {
	Borrow *BorrowError
	Exec   error
}

func (e *SystemError) Error() string {
	if e.Borrow != nil {
		return "borrow error: " + e.Borrow.Error()
	}
	if e.Exec != nil {
		return "execution error: " + e.Exec.Error()
	}
	return "system error"
}

func (e *SystemError) Unwrap() error {
	if e.Borrow != nil {
		return e.Borrow
	}
	return e.Exec
}
