// Package tgdiff reports the differences between two TextGrids:
// structural changes tier by tier, and character-level diffs of
// changed marks.
package tgdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/phonlab/textgrid-format/textgrid"
	"github.com/phonlab/textgrid-format/textgrid/encode"
)

// A Change describes one difference. Path locates it ("tier 1
// \"words\" intervals[3]"); From and To are the two sides' renderings,
// either of which may be empty when an element exists on one side
// only. Marks carries the character-level diff when both sides are
// marks.
type Change struct {
	Path  string
	From  string
	To    string
	Marks []diffpatch.Diff
}

type Report struct {
	Changes []Change
}

func (r *Report) Empty() bool {
	return len(r.Changes) == 0
}

// String renders the report one change per line, in unified-diff
// spirit. Use Pretty for colorized inline mark diffs.
func (r *Report) String() string {
	var sb strings.Builder
	for _, c := range r.Changes {
		fmt.Fprintf(&sb, "%s:\n", c.Path)
		if c.From != "" {
			fmt.Fprintf(&sb, "\t- %s\n", c.From)
		}
		if c.To != "" {
			fmt.Fprintf(&sb, "\t+ %s\n", c.To)
		}
	}
	return sb.String()
}

// Pretty is String with changed marks rendered as inline colorized
// diffs. The output is for terminals, not for parsing.
func (r *Report) Pretty() string {
	dmp := diffpatch.New()
	var sb strings.Builder
	for _, c := range r.Changes {
		fmt.Fprintf(&sb, "%s:\n", c.Path)
		if c.Marks != nil {
			fmt.Fprintf(&sb, "\t%s\n", dmp.DiffPrettyText(c.Marks))
			continue
		}
		if c.From != "" {
			fmt.Fprintf(&sb, "\t- %s\n", c.From)
		}
		if c.To != "" {
			fmt.Fprintf(&sb, "\t+ %s\n", c.To)
		}
	}
	return sb.String()
}

// Diff compares two grids. Tiers are paired by index; interval tiers
// are compared over their gap-padded views so sparse and materialized
// storage of the same annotation compare equal.
func Diff(a, b *textgrid.TextGrid) *Report {
	r := &Report{}
	if a.MinTime != b.MinTime || a.MaxTime != b.MaxTime {
		r.add("bounds", span(a.MinTime, a.MaxTime), span(b.MinTime, b.MaxTime), nil)
	}
	for i := 0; i < max(a.Len(), b.Len()); i++ {
		switch {
		case i >= a.Len():
			r.add(tierPath(i, b.Tiers[i]), "", describeTier(b.Tiers[i]), nil)
		case i >= b.Len():
			r.add(tierPath(i, a.Tiers[i]), describeTier(a.Tiers[i]), "", nil)
		default:
			r.diffTier(i, a.Tiers[i], b.Tiers[i])
		}
	}
	return r
}

func (r *Report) diffTier(i int, a, b *textgrid.Tier) {
	path := tierPath(i, a)
	if a.Kind != b.Kind {
		r.add(path, a.Class(), b.Class(), nil)
		return
	}
	if a.Name != b.Name {
		r.add(path+" name", a.Name, b.Name, nil)
	}
	if a.MinTime != b.MinTime || a.MaxTime != b.MaxTime {
		r.add(path+" bounds", span(a.MinTime, a.MaxTime), span(b.MinTime, b.MaxTime), nil)
	}
	if a.Kind == textgrid.PointKind {
		r.diffPoints(path, a.Points, b.Points)
		return
	}
	r.diffIntervals(path, a.Filled(""), b.Filled(""))
}

func (r *Report) diffIntervals(path string, as, bs []textgrid.Interval) {
	for j := 0; j < max(len(as), len(bs)); j++ {
		p := fmt.Sprintf("%s intervals[%d]", path, j+1)
		switch {
		case j >= len(as):
			r.add(p, "", bs[j].String(), nil)
		case j >= len(bs):
			r.add(p, as[j].String(), "", nil)
		case as[j] != bs[j]:
			a, b := as[j], bs[j]
			if a.MinTime == b.MinTime && a.MaxTime == b.MaxTime {
				r.add(p+" "+span(a.MinTime, a.MaxTime), a.Mark, b.Mark, markDiff(a.Mark, b.Mark))
			} else {
				r.add(p, a.String(), b.String(), nil)
			}
		}
	}
}

func (r *Report) diffPoints(path string, as, bs []textgrid.Point) {
	for j := 0; j < max(len(as), len(bs)); j++ {
		p := fmt.Sprintf("%s points[%d]", path, j+1)
		switch {
		case j >= len(as):
			r.add(p, "", bs[j].String(), nil)
		case j >= len(bs):
			r.add(p, as[j].String(), "", nil)
		case as[j] != bs[j]:
			a, b := as[j], bs[j]
			if a.Time == b.Time {
				r.add(p+" at "+encode.FormatTime(a.Time), a.Mark, b.Mark, markDiff(a.Mark, b.Mark))
			} else {
				r.add(p, a.String(), b.String(), nil)
			}
		}
	}
}

func (r *Report) add(path, from, to string, marks []diffpatch.Diff) {
	r.Changes = append(r.Changes, Change{Path: path, From: from, To: to, Marks: marks})
}

func markDiff(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	return dmp.DiffCleanupSemantic(diffs)
}

func tierPath(i int, t *textgrid.Tier) string {
	return fmt.Sprintf("tier %d %q", i+1, t.Name)
}

func describeTier(t *textgrid.Tier) string {
	return fmt.Sprintf("%s %q with %d items", t.Class(), t.Name, t.Len())
}

func span(lo, hi float64) string {
	return "(" + encode.FormatTime(lo) + ", " + encode.FormatTime(hi) + ")"
}
