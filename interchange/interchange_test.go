package interchange

import (
	"errors"
	"strings"
	"testing"

	"github.com/phonlab/textgrid-format/textgrid"
)

func sample(t *testing.T) *textgrid.TextGrid {
	t.Helper()
	g, err := textgrid.New("s", 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	words, err := textgrid.NewIntervalTier("words", 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := words.Add(0.5, 1, "hi"); err != nil {
		t.Fatal(err)
	}
	clicks, err := textgrid.NewPointTier("clicks", 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := clicks.AddPoint(textgrid.Point{Time: 1.5, Mark: "x"}); err != nil {
		t.Fatal(err)
	}
	for _, tier := range []*textgrid.Tier{words, clicks} {
		if err := g.Append(tier); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestYAMLRoundTrip(t *testing.T) {
	g := sample(t)
	d, err := MarshalYAML(g)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalYAML(d)
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !g.Equal(back) {
		t.Errorf("round trip changed the grid:\n%s", d)
	}
	if back.Name != "s" {
		t.Errorf("name lost: %q", back.Name)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := sample(t)
	d, err := MarshalJSON(g)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalJSON(d)
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !g.Equal(back) {
		t.Errorf("round trip changed the grid:\n%s", d)
	}
}

func TestYAMLShape(t *testing.T) {
	d, err := MarshalYAML(sample(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"class: IntervalTier", "class: TextTier", "text: hi", "mark: x"} {
		if !strings.Contains(string(d), want) {
			t.Errorf("document missing %q:\n%s", want, d)
		}
	}
}

func TestToGridValidates(t *testing.T) {
	doc := &Grid{
		MinTime: 0, MaxTime: 2,
		Tiers: []Tier{{
			Class: "IntervalTier", Name: "t", MinTime: 0, MaxTime: 2,
			Intervals: []Interval{
				{MinTime: 0, MaxTime: 1.5, Text: "a"},
				{MinTime: 1, MaxTime: 2, Text: "b"},
			},
		}},
	}
	if _, err := doc.ToGrid(); !errors.Is(err, textgrid.ErrInvariant) {
		t.Errorf("got %v, want an invariant violation", err)
	}
	doc.Tiers[0].Class = "SpectrumTier"
	if _, err := doc.ToGrid(); !errors.Is(err, textgrid.ErrTierClass) {
		t.Errorf("got %v, want ErrTierClass", err)
	}
}
