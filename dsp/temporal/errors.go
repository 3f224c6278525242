package temporal

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is matched by every [*DimensionMismatchError].
var ErrDimensionMismatch = errors.New("temporal: pyramid does not match seeded state")

// DimensionMismatchError reports a pyramid whose shape differs from the one
// that seeded the filter. Level is -1 when the level count differs.
type DimensionMismatchError struct {
	Level      int
	GotWidth   int
	GotHeight  int
	WantWidth  int
	WantHeight int
	GotLevels  int
	WantLevels int
}

func (e *DimensionMismatchError) Error() string {
	if e.Level < 0 {
		return fmt.Sprintf("%v: %d levels, seeded with %d", ErrDimensionMismatch, e.GotLevels, e.WantLevels)
	}

	return fmt.Sprintf("%v: level %d is %dx%d, seeded with %dx%d",
		ErrDimensionMismatch, e.Level, e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}

// Unwrap returns [ErrDimensionMismatch].
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
