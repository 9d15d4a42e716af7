// core/dotplot/grid.go
package dotplot

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every configuration error returned from
// this package.
var ErrInvalidConfig = errors.New("invalid dot plot configuration")

// MaxGridSize bounds the side length of a matrix (1 GiB of cells).
const MaxGridSize = 1 << 15

// ConfigError names the parameter that made a build impossible.
type ConfigError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %v: %s", ErrInvalidConfig, e.Param, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// GridSize resolves the width parameter into the side length of the matrix.
// A width above 1 is an absolute cell count; otherwise it is a fraction of the
// longer sequence. Both forms truncate. A size above MaxGridSize is a
// ConfigError, as is a non-finite or non-positive width.
func GridSize(len1, len2 int, width float64) (int, error) {
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return 0, &ConfigError{Param: "width", Value: width, Reason: "must be finite"}
	}
	if width <= 0 {
		return 0, &ConfigError{Param: "width", Value: width, Reason: "must be positive"}
	}
	cells := width
	if width <= 1.0 {
		cells = float64(max(len1, len2)) * width
	}
	if cells >= MaxGridSize+1 {
		return 0, &ConfigError{Param: "width", Value: width, Reason: fmt.Sprintf("grid would exceed %d cells per side", MaxGridSize)}
	}
	size := int(cells)
	if size <= 0 {
		return 0, &ConfigError{
			Param:  "width",
			Value:  width,
			Reason: fmt.Sprintf("resolves to grid size %d for longest sequence %d", size, max(len1, len2)),
		}
	}
	return size, nil
}

// Coordinate maps a sequence offset onto [0, size) by proportional scaling
// with round-half-up. Offsets close to the end of the sequence may land on
// size itself; callers drop those. A non-positive seqLen yields -1.
func Coordinate(pos, seqLen, size int) int {
	if seqLen <= 0 {
		return -1
	}
	return int(math.Floor(float64(pos)/float64(seqLen)*float64(size) + 0.5))
}
