package textgrid

import (
	"fmt"
	"slices"
)

// TextGrid is an ordered collection of tiers over a shared timeline.
// Tier order is user visible and significant. Name is only meaningful
// for grids built from HTK label files, where it carries the
// utterance file name; the TextGrid serializations do not record it.
type TextGrid struct {
	Name    string
	MinTime float64
	MaxTime float64
	Tiers   []*Tier
}

// New returns an empty TextGrid spanning [minTime, maxTime].
func New(name string, minTime, maxTime float64) (*TextGrid, error) {
	if minTime > maxTime {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrReversedSpan, minTime, maxTime)
	}
	return &TextGrid{Name: name, MinTime: minTime, MaxTime: maxTime}, nil
}

func (g *TextGrid) Len() int {
	return len(g.Tiers)
}

// Append adds t as the last tier. The tier span must be containable
// in the grid span; tiers may be narrower, never wider.
func (g *TextGrid) Append(t *Tier) error {
	return g.Insert(len(g.Tiers), t)
}

// Insert adds t at tier index i.
func (g *TextGrid) Insert(i int, t *Tier) error {
	if i < 0 || i > len(g.Tiers) {
		return fmt.Errorf("%w: tier index %d of %d", ErrNotFound, i, len(g.Tiers))
	}
	if t.MinTime < g.MinTime || t.MaxTime > g.MaxTime {
		return fmt.Errorf("%w: tier [%v, %v] outside grid [%v, %v]",
			ErrOutOfBounds, t.MinTime, t.MaxTime, g.MinTime, g.MaxTime)
	}
	g.Tiers = slices.Insert(g.Tiers, i, t)
	return nil
}

// Remove removes and returns the ith tier.
func (g *TextGrid) Remove(i int) (*Tier, error) {
	t, err := g.Tier(i)
	if err != nil {
		return nil, err
	}
	g.Tiers = slices.Delete(g.Tiers, i, i+1)
	return t, nil
}

// Tier returns the ith tier.
func (g *TextGrid) Tier(i int) (*Tier, error) {
	if i < 0 || i >= len(g.Tiers) {
		return nil, fmt.Errorf("%w: tier %d of %d", ErrNotFound, i, len(g.Tiers))
	}
	return g.Tiers[i], nil
}

// ByName returns the first tier with the given name, scanning in tier
// index order. Duplicate names are allowed; the first match wins.
func (g *TextGrid) ByName(name string) (*Tier, error) {
	for _, t := range g.Tiers {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: tier %q", ErrNotFound, name)
}

// Names returns the tier names in index order.
func (g *TextGrid) Names() []string {
	names := make([]string, len(g.Tiers))
	for i, t := range g.Tiers {
		names[i] = t.Name
	}
	return names
}

func (g *TextGrid) String() string {
	return fmt.Sprintf("<TextGrid %q, %d tiers>", g.Name, len(g.Tiers))
}
