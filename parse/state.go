package parse

import (
	"github.com/phonlab/textgrid-format/textgrid"
)

// fieldState drives tier parsing. In the short form a field's meaning
// is purely positional, so the grammar is made explicit here instead
// of living in implicit counters; the full form walks the same states
// and additionally verifies each field's key name.
type fieldState int

const (
	stateTierClass fieldState = iota
	stateTierName
	stateTierMin
	stateTierMax
	stateItemCount
	stateIntervalMin
	stateIntervalMax
	stateIntervalText
	statePointNumber
	statePointMark
	stateTierDone
)

func (s fieldState) String() string {
	switch s {
	case stateTierClass:
		return "tier-class"
	case stateTierName:
		return "tier-name"
	case stateTierMin:
		return "tier-xmin"
	case stateTierMax:
		return "tier-xmax"
	case stateItemCount:
		return "item-count"
	case stateIntervalMin:
		return "interval-xmin"
	case stateIntervalMax:
		return "interval-xmax"
	case stateIntervalText:
		return "interval-text"
	case statePointNumber:
		return "point-number"
	case statePointMark:
		return "point-mark"
	case stateTierDone:
		return "tier-done"
	}
	return "invalid"
}

// next returns the state after the current field has been consumed.
// kind is meaningful once the class field has been read; remaining is
// the number of items still to be read after the current one
// completes.
func (s fieldState) next(kind textgrid.Kind, remaining int) fieldState {
	switch s {
	case stateTierClass:
		return stateTierName
	case stateTierName:
		return stateTierMin
	case stateTierMin:
		return stateTierMax
	case stateTierMax:
		return stateItemCount
	case stateItemCount:
		if remaining == 0 {
			return stateTierDone
		}
		return firstItemState(kind)
	case stateIntervalMin:
		return stateIntervalMax
	case stateIntervalMax:
		return stateIntervalText
	case stateIntervalText:
		if remaining == 0 {
			return stateTierDone
		}
		return stateIntervalMin
	case statePointNumber:
		return statePointMark
	case statePointMark:
		if remaining == 0 {
			return stateTierDone
		}
		return statePointNumber
	}
	return stateTierDone
}

func firstItemState(kind textgrid.Kind) fieldState {
	if kind == textgrid.PointKind {
		return statePointNumber
	}
	return stateIntervalMin
}

// startsItem reports whether s is the first field of an item block,
// where the full form carries an "intervals [N]:" or "points [N]:"
// index line.
func (s fieldState) startsItem() bool {
	return s == stateIntervalMin || s == statePointNumber
}
