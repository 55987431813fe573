package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates non-positive grid dimensions.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the W×H lattice.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrRoleConflict indicates an attempt to overwrite Start or Target
	// with a blocking state without first clearing the role.
	ErrRoleConflict = errors.New("gridgraph: cell holds start or target role")
	// ErrNonRectangular indicates rows of differing lengths in From2D.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownPreset indicates LoadPreset was given an unrecognised name.
	ErrUnknownPreset = errors.New("gridgraph: unknown preset")
)
