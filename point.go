package textgrid

import "fmt"

// Point is a labelled instant inside a point tier.
type Point struct {
	Time float64
	Mark string
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%v, %q)", p.Time, p.Mark)
}
