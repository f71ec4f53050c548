package textgrid

import "fmt"

// Interval is a labelled time span inside an interval tier.
type Interval struct {
	MinTime float64
	MaxTime float64
	Mark    string
}

func (iv Interval) Duration() float64 {
	return iv.MaxTime - iv.MinTime
}

// Overlaps reports whether the two spans share any positive-duration
// time. Touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return other.MinTime < iv.MaxTime && iv.MinTime < other.MaxTime
}

// Contains reports whether t lies within the closed span.
func (iv Interval) Contains(t float64) bool {
	return iv.MinTime <= t && t <= iv.MaxTime
}

func (iv Interval) String() string {
	return fmt.Sprintf("Interval(%v, %v, %q)", iv.MinTime, iv.MaxTime, iv.Mark)
}
