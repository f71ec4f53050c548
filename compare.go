package textgrid

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two grids field for field.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Interval tiers are compared through their contiguous Filled view,
// so a sparse tier and its gap-padded serialization compare equal.
// Grid names are ignored: the TextGrid serializations do not record
// them.
func Compare(a, b *TextGrid) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.MinTime, b.MinTime); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MaxTime, b.MaxTime); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.Tiers), len(b.Tiers)); c != 0 {
		return c
	}
	for i := range a.Tiers {
		if c := compareTiers(a.Tiers[i], b.Tiers[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *TextGrid) bool {
	return Compare(a, b) == 0
}

// Equal reports whether Compare(g, other) == 0.
func (g *TextGrid) Equal(other *TextGrid) bool {
	return Compare(g, other) == 0
}

// Equal reports whether the two tiers hold the same annotations over
// the same span, comparing interval tiers through their Filled view.
func (t *Tier) Equal(other *Tier) bool {
	return compareTiers(t, other) == 0
}

func compareTiers(a, b *Tier) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MinTime, b.MinTime); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MaxTime, b.MaxTime); c != 0 {
		return c
	}
	if a.Kind == PointKind {
		if c := cmp.Compare(len(a.Points), len(b.Points)); c != 0 {
			return c
		}
		for i := range a.Points {
			if c := comparePoints(a.Points[i], b.Points[i]); c != 0 {
				return c
			}
		}
		return 0
	}
	av, bv := a.Filled(""), b.Filled("")
	if c := cmp.Compare(len(av), len(bv)); c != 0 {
		return c
	}
	for i := range av {
		if c := compareIntervals(av[i], bv[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareIntervals(a, b Interval) int {
	if c := cmp.Compare(a.MinTime, b.MinTime); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MaxTime, b.MaxTime); c != 0 {
		return c
	}
	return strings.Compare(a.Mark, b.Mark)
}

func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.Time, b.Time); c != 0 {
		return c
	}
	return strings.Compare(a.Mark, b.Mark)
}
