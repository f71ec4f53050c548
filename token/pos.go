package token

import (
	"fmt"
	"strconv"
)

// Pos identifies a line in the scanned document.
type Pos struct {
	// Line is 1-based.
	Line int
	// Text is the raw line content, kept for diagnostics.
	Text string
}

func (p *Pos) String() string {
	sample := p.Text
	if len(sample) > 40 {
		sample = sample[:40] + "..."
	}
	sample = strconv.Quote(sample)
	return fmt.Sprintf("line %d: %s", p.Line, sample)
}
