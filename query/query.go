// Package query selects tier items with compiled filter expressions.
//
// A filter is an expr-lang boolean expression over one item:
//
//	Mark != "" && Duration > 0.1
//	Time >= 1.5
//
// Interval items expose Mark, MinTime, MaxTime and Duration; point
// items expose Mark and Time. Index is the item's position in the
// tier, counting from 1.
package query

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/phonlab/textgrid-format/textgrid"
)

// Env is the variable set a filter expression sees. Fields that do
// not apply to the item's kind are zero.
type Env struct {
	Mark     string
	MinTime  float64
	MaxTime  float64
	Time     float64
	Duration float64
	Index    int
}

type Filter struct {
	src string
	prg *vm.Program
}

// Compile type-checks src against Env and prepares it for repeated
// runs. The expression must yield a boolean.
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Intervals returns t's intervals matching the filter, in tier order.
func (f *Filter) Intervals(t *textgrid.Tier) ([]textgrid.Interval, error) {
	if t.Kind != textgrid.IntervalKind {
		return nil, textgrid.ErrKind
	}
	var res []textgrid.Interval
	for i, iv := range t.Intervals {
		ok, err := f.run(Env{
			Mark:     iv.Mark,
			MinTime:  iv.MinTime,
			MaxTime:  iv.MaxTime,
			Duration: iv.Duration(),
			Index:    i + 1,
		})
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, iv)
		}
	}
	return res, nil
}

// Points returns t's points matching the filter, in tier order.
func (f *Filter) Points(t *textgrid.Tier) ([]textgrid.Point, error) {
	if t.Kind != textgrid.PointKind {
		return nil, textgrid.ErrKind
	}
	var res []textgrid.Point
	for i, p := range t.Points {
		ok, err := f.run(Env{Mark: p.Mark, Time: p.Time, Index: i + 1})
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, p)
		}
	}
	return res, nil
}

// Tier returns a copy of t holding only the matching items. The copy
// keeps t's name and bounds; interval copies are sparse, gaps are not
// padded.
func (f *Filter) Tier(t *textgrid.Tier) (*textgrid.Tier, error) {
	res, err := textgrid.NewTier(t.Class(), t.Name, t.MinTime, t.MaxTime)
	if err != nil {
		return nil, err
	}
	if t.Kind == textgrid.PointKind {
		ps, err := f.Points(t)
		if err != nil {
			return nil, err
		}
		for _, p := range ps {
			if err := res.AddPoint(p); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	ivs, err := f.Intervals(t)
	if err != nil {
		return nil, err
	}
	for _, iv := range ivs {
		if err := res.AddInterval(iv); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (f *Filter) run(env Env) (bool, error) {
	out, err := expr.Run(f.prg, env)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}
