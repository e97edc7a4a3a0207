package ntree

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a payload is not stored in the index.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when adding a payload that is already stored.
	ErrAlreadyExists = errors.New("already exists")

	// ErrOutOfRegion is returned when a point lies outside the half-open
	// region of the index.
	ErrOutOfRegion = errors.New("point outside index region")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidRadius is returned when a radius is negative or NaN.
	ErrInvalidRadius = errors.New("radius must be a non-negative number")

	// ErrInvalidRegion is returned when the corners of the index region are
	// not finite or span no volume.
	ErrInvalidRegion = errors.New("region must have a positive finite extent on every axis")

	// ErrInvalidCapacity is returned when the leaf capacity is not positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrInvalidMaxDepth is returned when the maximum depth is outside
	// [1, MaxDepthLimit].
	ErrInvalidMaxDepth = errors.New("max depth must be between 1 and 64")
)

// ErrDimensionMismatch indicates a point/query dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
