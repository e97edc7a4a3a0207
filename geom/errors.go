package geom

import (
	"errors"
	"fmt"
)

// ErrOutsideRegion is the panic value of Region.Classify for a point that is
// not a member of the region.
var ErrOutsideRegion = errors.New("geom: point outside region")

// DimensionMismatchError reports two vectors of different length being
// combined. Vector and Region methods panic with it.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("geom: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func mustMatch(expected, actual int) {
	if expected != actual {
		panic(&DimensionMismatchError{Expected: expected, Actual: actual})
	}
}
