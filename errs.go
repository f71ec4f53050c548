package textgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is the root of all errors returned by mutators that
	// would violate a temporal invariant. The receiver is unchanged
	// whenever an ErrInvariant-wrapping error is returned.
	ErrInvariant = errors.New("invariant violation")

	// ErrNotFound is the root of all lookup failures: bad indices,
	// unknown tier names, times outside any item.
	ErrNotFound = errors.New("not found")

	ErrOverlap      = fmt.Errorf("%w: overlapping intervals", ErrInvariant)
	ErrOutOfBounds  = fmt.Errorf("%w: outside bounds", ErrInvariant)
	ErrDuplicate    = fmt.Errorf("%w: duplicate point time", ErrInvariant)
	ErrEmptySpan    = fmt.Errorf("%w: interval duration must be positive", ErrInvariant)
	ErrReversedSpan = fmt.Errorf("%w: reversed time span", ErrInvariant)

	// ErrTierClass reports a tier class string that is neither
	// "IntervalTier" nor "TextTier".
	ErrTierClass = errors.New("unrecognized tier class")

	// ErrKind reports an interval operation on a point tier or vice
	// versa.
	ErrKind = errors.New("wrong tier kind")
)
