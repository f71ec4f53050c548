// Package interchange maps TextGrids to a plain document form for
// YAML and JSON tooling. Decoding goes through the invariant-checking
// constructors, so a document that violates the temporal invariants
// does not produce a grid.
package interchange

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/phonlab/textgrid-format/textgrid"
)

type Grid struct {
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	MinTime float64 `json:"xmin" yaml:"xmin"`
	MaxTime float64 `json:"xmax" yaml:"xmax"`
	Tiers   []Tier  `json:"tiers" yaml:"tiers"`
}

type Tier struct {
	Class     string     `json:"class" yaml:"class"`
	Name      string     `json:"name" yaml:"name"`
	MinTime   float64    `json:"xmin" yaml:"xmin"`
	MaxTime   float64    `json:"xmax" yaml:"xmax"`
	Intervals []Interval `json:"intervals,omitempty" yaml:"intervals,omitempty"`
	Points    []Point    `json:"points,omitempty" yaml:"points,omitempty"`
}

type Interval struct {
	MinTime float64 `json:"xmin" yaml:"xmin"`
	MaxTime float64 `json:"xmax" yaml:"xmax"`
	Text    string  `json:"text" yaml:"text"`
}

type Point struct {
	Time float64 `json:"time" yaml:"time"`
	Mark string  `json:"mark" yaml:"mark"`
}

// FromGrid builds the document form of g. Interval tiers are carried
// sparsely, without gap padding.
func FromGrid(g *textgrid.TextGrid) *Grid {
	d := &Grid{Name: g.Name, MinTime: g.MinTime, MaxTime: g.MaxTime}
	for _, t := range g.Tiers {
		dt := Tier{Class: t.Class(), Name: t.Name, MinTime: t.MinTime, MaxTime: t.MaxTime}
		for _, iv := range t.Intervals {
			dt.Intervals = append(dt.Intervals, Interval{MinTime: iv.MinTime, MaxTime: iv.MaxTime, Text: iv.Mark})
		}
		for _, p := range t.Points {
			dt.Points = append(dt.Points, Point{Time: p.Time, Mark: p.Mark})
		}
		d.Tiers = append(d.Tiers, dt)
	}
	return d
}

// ToGrid rebuilds a TextGrid, validating every invariant on the way.
func (d *Grid) ToGrid() (*textgrid.TextGrid, error) {
	g, err := textgrid.New(d.Name, d.MinTime, d.MaxTime)
	if err != nil {
		return nil, err
	}
	for _, dt := range d.Tiers {
		t, err := textgrid.NewTier(dt.Class, dt.Name, dt.MinTime, dt.MaxTime)
		if err != nil {
			return nil, err
		}
		for _, iv := range dt.Intervals {
			if err := t.Add(iv.MinTime, iv.MaxTime, iv.Text); err != nil {
				return nil, err
			}
		}
		for _, p := range dt.Points {
			if err := t.AddPoint(textgrid.Point{Time: p.Time, Mark: p.Mark}); err != nil {
				return nil, err
			}
		}
		if err := g.Append(t); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func MarshalYAML(g *textgrid.TextGrid) ([]byte, error) {
	return yaml.Marshal(FromGrid(g))
}

func UnmarshalYAML(d []byte) (*textgrid.TextGrid, error) {
	var doc Grid
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, err
	}
	return doc.ToGrid()
}

func MarshalJSON(g *textgrid.TextGrid) ([]byte, error) {
	return json.MarshalIndent(FromGrid(g), "", "  ")
}

func UnmarshalJSON(d []byte) (*textgrid.TextGrid, error) {
	var doc Grid
	if err := json.Unmarshal(d, &doc); err != nil {
		return nil, err
	}
	return doc.ToGrid()
}
