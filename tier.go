package textgrid

import (
	"fmt"
	"slices"
	"sort"
)

// Kind tags the two tier variants. Tier operations dispatch on it;
// there is no tier class hierarchy.
type Kind int

const (
	IntervalKind Kind = iota
	PointKind
)

// Praat's serialized class names for the two kinds. A point tier is
// historically called a TextTier.
const (
	IntervalTierClass = "IntervalTier"
	PointTierClass    = "TextTier"
)

// Class returns the Praat class string for the kind.
func (k Kind) Class() string {
	switch k {
	case IntervalKind:
		return IntervalTierClass
	case PointKind:
		return PointTierClass
	}
	return fmt.Sprintf("<err: %d is not a kind>", k)
}

func (k Kind) String() string {
	return k.Class()
}

// KindOfClass maps a serialized class string to a Kind. This is the
// single place the class field is interpreted.
func KindOfClass(class string) (Kind, error) {
	switch class {
	case IntervalTierClass:
		return IntervalKind, nil
	case PointTierClass:
		return PointKind, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrTierClass, class)
}

// Tier is a named channel of annotations over [MinTime, MaxTime]:
// either intervals or points, per Kind.
//
// Interval storage is sparse: only labelled (possibly empty-marked)
// intervals are held, ordered and non-overlapping; unlabelled time is
// implicit and materialized by Filled. Intervals and Points are
// exported for iteration but must be treated as read-only; edits go
// through the mutators, which keep the invariants.
type Tier struct {
	Name    string
	MinTime float64
	MaxTime float64
	Kind    Kind

	Intervals []Interval
	Points    []Point
}

// NewIntervalTier returns an empty interval tier over the span.
func NewIntervalTier(name string, minTime, maxTime float64) (*Tier, error) {
	if minTime > maxTime {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrReversedSpan, minTime, maxTime)
	}
	return &Tier{Name: name, MinTime: minTime, MaxTime: maxTime, Kind: IntervalKind}, nil
}

// NewPointTier returns an empty point tier over the span.
func NewPointTier(name string, minTime, maxTime float64) (*Tier, error) {
	if minTime > maxTime {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrReversedSpan, minTime, maxTime)
	}
	return &Tier{Name: name, MinTime: minTime, MaxTime: maxTime, Kind: PointKind}, nil
}

// NewTier constructs a tier from a serialized class string.
func NewTier(class, name string, minTime, maxTime float64) (*Tier, error) {
	kind, err := KindOfClass(class)
	if err != nil {
		return nil, err
	}
	if kind == IntervalKind {
		return NewIntervalTier(name, minTime, maxTime)
	}
	return NewPointTier(name, minTime, maxTime)
}

// Len reports the number of stored items.
func (t *Tier) Len() int {
	if t.Kind == IntervalKind {
		return len(t.Intervals)
	}
	return len(t.Points)
}

func (t *Tier) Duration() float64 {
	return t.MaxTime - t.MinTime
}

// Class returns the tier's Praat class string.
func (t *Tier) Class() string {
	return t.Kind.Class()
}

// Interval returns the ith stored interval.
func (t *Tier) Interval(i int) (Interval, error) {
	if t.Kind != IntervalKind {
		return Interval{}, fmt.Errorf("%w: %s", ErrKind, t.Class())
	}
	if i < 0 || i >= len(t.Intervals) {
		return Interval{}, fmt.Errorf("%w: interval %d of %d", ErrNotFound, i, len(t.Intervals))
	}
	return t.Intervals[i], nil
}

// Point returns the ith point.
func (t *Tier) Point(i int) (Point, error) {
	if t.Kind != PointKind {
		return Point{}, fmt.Errorf("%w: %s", ErrKind, t.Class())
	}
	if i < 0 || i >= len(t.Points) {
		return Point{}, fmt.Errorf("%w: point %d of %d", ErrNotFound, i, len(t.Points))
	}
	return t.Points[i], nil
}

// Add constructs an interval and adds it, keeping order.
func (t *Tier) Add(minTime, maxTime float64, mark string) error {
	return t.AddInterval(Interval{MinTime: minTime, MaxTime: maxTime, Mark: mark})
}

// AddInterval inserts iv at its ordered position. It fails, leaving
// the tier unchanged, if iv has no positive duration, falls outside
// the tier bounds, or overlaps a stored interval.
func (t *Tier) AddInterval(iv Interval) error {
	if t.Kind != IntervalKind {
		return fmt.Errorf("%w: %s", ErrKind, t.Class())
	}
	if iv.MinTime >= iv.MaxTime {
		return fmt.Errorf("%w: %s", ErrEmptySpan, iv)
	}
	if iv.MinTime < t.MinTime || iv.MaxTime > t.MaxTime {
		return fmt.Errorf("%w: %s outside tier [%v, %v]", ErrOutOfBounds, iv, t.MinTime, t.MaxTime)
	}
	i := sort.Search(len(t.Intervals), func(i int) bool {
		return t.Intervals[i].MinTime >= iv.MinTime
	})
	if i > 0 && t.Intervals[i-1].Overlaps(iv) {
		return fmt.Errorf("%w: %s and %s", ErrOverlap, t.Intervals[i-1], iv)
	}
	if i < len(t.Intervals) && t.Intervals[i].Overlaps(iv) {
		return fmt.Errorf("%w: %s and %s", ErrOverlap, iv, t.Intervals[i])
	}
	t.Intervals = slices.Insert(t.Intervals, i, iv)
	return nil
}

// AddPoint inserts p at its ordered position. It fails, leaving the
// tier unchanged, if p falls outside the tier bounds or a point with
// the same time already exists.
func (t *Tier) AddPoint(p Point) error {
	if t.Kind != PointKind {
		return fmt.Errorf("%w: %s", ErrKind, t.Class())
	}
	if p.Time < t.MinTime || p.Time > t.MaxTime {
		return fmt.Errorf("%w: %s outside tier [%v, %v]", ErrOutOfBounds, p, t.MinTime, t.MaxTime)
	}
	i := sort.Search(len(t.Points), func(i int) bool {
		return t.Points[i].Time >= p.Time
	})
	if i < len(t.Points) && t.Points[i].Time == p.Time {
		return fmt.Errorf("%w: %s", ErrDuplicate, p)
	}
	t.Points = slices.Insert(t.Points, i, p)
	return nil
}

// RemoveInterval removes and returns the ith interval.
func (t *Tier) RemoveInterval(i int) (Interval, error) {
	iv, err := t.Interval(i)
	if err != nil {
		return Interval{}, err
	}
	t.Intervals = slices.Delete(t.Intervals, i, i+1)
	return iv, nil
}

// RemovePoint removes and returns the ith point.
func (t *Tier) RemovePoint(i int) (Point, error) {
	p, err := t.Point(i)
	if err != nil {
		return Point{}, err
	}
	t.Points = slices.Delete(t.Points, i, i+1)
	return p, nil
}

// IntervalAt returns the index of the stored interval whose closed
// span contains time. A boundary time shared by two intervals
// resolves to the earlier one.
func (t *Tier) IntervalAt(time float64) (int, error) {
	if t.Kind != IntervalKind {
		return 0, fmt.Errorf("%w: %s", ErrKind, t.Class())
	}
	i := sort.Search(len(t.Intervals), func(i int) bool {
		return t.Intervals[i].MaxTime >= time
	})
	if i < len(t.Intervals) && t.Intervals[i].Contains(time) {
		return i, nil
	}
	return 0, fmt.Errorf("%w: no interval at %v", ErrNotFound, time)
}

// PointAt returns the index of the point at exactly time.
func (t *Tier) PointAt(time float64) (int, error) {
	if t.Kind != PointKind {
		return 0, fmt.Errorf("%w: %s", ErrKind, t.Class())
	}
	i := sort.Search(len(t.Points), func(i int) bool {
		return t.Points[i].Time >= time
	})
	if i < len(t.Points) && t.Points[i].Time == time {
		return i, nil
	}
	return 0, fmt.Errorf("%w: no point at %v", ErrNotFound, time)
}

// RemoveIntervalAt removes and returns the interval containing time.
func (t *Tier) RemoveIntervalAt(time float64) (Interval, error) {
	i, err := t.IntervalAt(time)
	if err != nil {
		return Interval{}, err
	}
	return t.RemoveInterval(i)
}

// RemovePointAt removes and returns the point at exactly time.
func (t *Tier) RemovePointAt(time float64) (Point, error) {
	i, err := t.PointAt(time)
	if err != nil {
		return Point{}, err
	}
	return t.RemovePoint(i)
}

// Crop narrows the tier to [minTime, maxTime], which must lie within
// the tier's span: widening would let the tier escape its grid's
// bounds. Items overlapping the span are kept, boundary intervals
// truncated to it; everything else is dropped. On error the tier is
// unchanged.
func (t *Tier) Crop(minTime, maxTime float64) error {
	if minTime >= maxTime {
		return fmt.Errorf("%w: [%v, %v]", ErrReversedSpan, minTime, maxTime)
	}
	if minTime < t.MinTime || maxTime > t.MaxTime {
		return fmt.Errorf("%w: crop [%v, %v] outside tier [%v, %v]",
			ErrOutOfBounds, minTime, maxTime, t.MinTime, t.MaxTime)
	}
	switch t.Kind {
	case IntervalKind:
		kept := make([]Interval, 0, len(t.Intervals))
		for _, iv := range t.Intervals {
			if iv.MaxTime <= minTime || iv.MinTime >= maxTime {
				continue
			}
			iv.MinTime = max(iv.MinTime, minTime)
			iv.MaxTime = min(iv.MaxTime, maxTime)
			kept = append(kept, iv)
		}
		t.Intervals = kept
	case PointKind:
		kept := make([]Point, 0, len(t.Points))
		for _, p := range t.Points {
			if p.Time < minTime || p.Time > maxTime {
				continue
			}
			kept = append(kept, p)
		}
		t.Points = kept
	}
	t.MinTime = minTime
	t.MaxTime = maxTime
	return nil
}

// Filled materializes the contiguous view of an interval tier: the
// stored intervals plus null-marked padding for every gap, so that
// consecutive items touch and the first and last items reach the tier
// bounds. Point tiers return nil.
func (t *Tier) Filled(null string) []Interval {
	if t.Kind != IntervalKind {
		return nil
	}
	out := make([]Interval, 0, 2*len(t.Intervals)+1)
	prev := t.MinTime
	for _, iv := range t.Intervals {
		if prev < iv.MinTime {
			out = append(out, Interval{MinTime: prev, MaxTime: iv.MinTime, Mark: null})
		}
		out = append(out, iv)
		prev = iv.MaxTime
	}
	if prev < t.MaxTime {
		out = append(out, Interval{MinTime: prev, MaxTime: t.MaxTime, Mark: null})
	}
	return out
}

func (t *Tier) String() string {
	return fmt.Sprintf("<%s %q, %d items>", t.Class(), t.Name, t.Len())
}
