package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Pop on an empty vector.
	ErrEmpty = errors.New("vec: no elements")
	// ErrInvalidSnapshot is returned when snapshot data cannot be decoded.
	ErrInvalidSnapshot = errors.New("vec: invalid snapshot")
)

// ErrOutOfBounds indicates a position at or beyond the vector length.
type ErrOutOfBounds struct {
	Pos int
	Len int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("vec: position %d out of bounds (len %d)", e.Pos, e.Len)
}

// ErrSizeMismatch indicates a buffer whose size does not match the vector's
// element size (or the required multiple of it).
type ErrSizeMismatch struct {
	Want int
	Got  int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("vec: size mismatch: want %d bytes, got %d", e.Want, e.Got)
}

func outOfBounds(pos, n int) error {
	return &ErrOutOfBounds{Pos: pos, Len: n}
}

func sizeMismatch(want, got int) error {
	return &ErrSizeMismatch{Want: want, Got: got}
}
