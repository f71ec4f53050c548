package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/phonlab/textgrid-format/textgrid"
	"github.com/phonlab/textgrid-format/textgrid/format"
	"github.com/phonlab/textgrid-format/textgrid/token"
)

const fullSample = `File type = "ooTextFile"
Object class = "TextGrid"

xmin = 0
xmax = 2.5
tiers? <exists>
size = 2
item []:
	item [1]:
		class = "IntervalTier"
		name = "words"
		xmin = 0
		xmax = 2.5
		intervals: size = 3
		intervals [1]:
			xmin = 0
			xmax = 1
			text = "hello"
		intervals [2]:
			xmin = 1
			xmax = 1.5
			text = ""
		intervals [3]:
			xmin = 1.5
			xmax = 2.5
			text = "world"
	item [2]:
		class = "TextTier"
		name = "clicks"
		xmin = 0
		xmax = 2.5
		points: size = 2
		points [1]:
			number = 0.75
			mark = "a"
		points [2]:
			number = 2
			mark = "b"
`

const shortSample = `File type = "ooTextFile short"
"TextGrid"

0
2.5
<exists>
2
"IntervalTier"
"words"
0
2.5
3
0
1
"hello"
1
1.5
""
1.5
2.5
"world"
"TextTier"
"clicks"
0
2.5
2
0.75
"a"
2
"b"
`

func TestParseFull(t *testing.T) {
	g, err := Parse([]byte(fullSample))
	if err != nil {
		t.Fatal(err)
	}
	checkSample(t, g)
}

func TestParseShort(t *testing.T) {
	g, err := Parse([]byte(shortSample))
	if err != nil {
		t.Fatal(err)
	}
	checkSample(t, g)
}

func checkSample(t *testing.T, g *textgrid.TextGrid) {
	t.Helper()
	if g.MinTime != 0 || g.MaxTime != 2.5 {
		t.Errorf("grid bounds [%v, %v], want [0, 2.5]", g.MinTime, g.MaxTime)
	}
	if g.Len() != 2 {
		t.Fatalf("got %d tiers, want 2", g.Len())
	}
	words := g.Tiers[0]
	if words.Name != "words" || words.Kind != textgrid.IntervalKind {
		t.Errorf("tier 0 is %q/%v, want words/interval", words.Name, words.Kind)
	}
	if words.Len() != 3 {
		t.Fatalf("words has %d intervals, want 3", words.Len())
	}
	if iv := words.Intervals[2]; iv.MinTime != 1.5 || iv.MaxTime != 2.5 || iv.Mark != "world" {
		t.Errorf("intervals[2] = %v", iv)
	}
	clicks := g.Tiers[1]
	if clicks.Kind != textgrid.PointKind || clicks.Len() != 2 {
		t.Fatalf("clicks kind=%v len=%d", clicks.Kind, clicks.Len())
	}
	if p := clicks.Points[0]; p.Time != 0.75 || p.Mark != "a" {
		t.Errorf("points[0] = %v", p)
	}
}

func TestParseEscapedAndPunctuatedMarks(t *testing.T) {
	in := `File type = "ooTextFile"
Object class = "TextGrid"

xmin = 0
xmax = 1
tiers? <exists>
size = 2
item []:
	item [1]:
		class = "IntervalTier"
		name = "words"
		xmin = 0
		xmax = 1
		intervals: size = 2
		intervals [1]:
			xmin = 0
			xmax = 0.5
			text = "Is anyone home?"
		intervals [2]:
			xmin = 0.5
			xmax = 1
			text = "asked ""Pat"""
	item [2]:
		class = "TextTier"
		name = "points"
		xmin = 0
		xmax = 1
		points: size = 2
		points [1]:
			number = 0.25
			mark = "event"
		points [2]:
			number = 0.75
			mark = "event"" with quotes again"
`
	g, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 2 || g.Tiers[0].Name != "words" || g.Tiers[1].Name != "points" {
		t.Fatalf("got tiers %v", g.Names())
	}
	words := g.Tiers[0]
	if m := words.Intervals[0].Mark; m != "Is anyone home?" {
		t.Errorf("intervals[0].Mark = %q", m)
	}
	if m := words.Intervals[1].Mark; m != `asked "Pat"` {
		t.Errorf("intervals[1].Mark = %q", m)
	}
	points := g.Tiers[1]
	if p := points.Points[0]; p.Time != 0.25 || p.Mark != "event" {
		t.Errorf("points[0] = %v", p)
	}
	if m := points.Points[1].Mark; m != `event" with quotes again` {
		t.Errorf("points[1].Mark = %q", m)
	}
}

func TestParseFormsAgree(t *testing.T) {
	full, err := Parse([]byte(fullSample))
	if err != nil {
		t.Fatal(err)
	}
	short, err := Parse([]byte(shortSample))
	if err != nil {
		t.Fatal(err)
	}
	if !full.Equal(short) {
		t.Errorf("full and short forms parsed to different grids:\n%v\n%v", full, short)
	}
}

// Old scripts write a full header followed by a short body. The
// reader notices on the first body value and switches.
func TestParseFullHeaderShortBody(t *testing.T) {
	in := `File type = "ooTextFile"
"TextGrid"

0
1
<exists>
1
"IntervalTier"
"t"
0
1
1
0
1
"x"
`
	g, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 1 || g.Tiers[0].Intervals[0].Mark != "x" {
		t.Errorf("bad grid: %v", g)
	}
	// forcing the full form turns the fallback off
	if _, err := Parse([]byte(in), ParseForm(format.Full)); !errors.Is(err, ErrKey) {
		t.Errorf("forced full form: got %v, want ErrKey", err)
	}
}

func TestParseEscapedQuotes(t *testing.T) {
	in := strings.Replace(fullSample, `text = "hello"`, `text = "say ""hi"""`, 1)
	g, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if m := g.Tiers[0].Intervals[0].Mark; m != `say "hi"` {
		t.Errorf("got mark %q", m)
	}
}

func TestParseMultiLineMark(t *testing.T) {
	in := strings.Replace(fullSample, `text = "hello"`, "text = \"two\nlines\"", 1)
	g, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if m := g.Tiers[0].Intervals[0].Mark; m != "two\nlines" {
		t.Errorf("got mark %q", m)
	}
}

// Praat cannot represent zero-duration intervals, so readers skip
// them rather than fail.
func TestParseDropsZeroDuration(t *testing.T) {
	in := strings.Replace(shortSample, "1\n1.5\n\"\"\n", "1\n1\n\"\"\n", 1)
	g, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if n := g.Tiers[0].Len(); n != 2 {
		t.Errorf("got %d intervals, want 2 after dropping the empty one", n)
	}
}

type parseErrTest struct {
	name string
	in   string
	e    error
}

func TestParseErrors(t *testing.T) {
	pts := []parseErrTest{
		{
			name: "empty",
			in:   "",
			e:    ErrHeader,
		},
		{
			name: "bad file type",
			in:   strings.Replace(fullSample, "ooTextFile", "ooBinaryFile", 1),
			e:    ErrHeader,
		},
		{
			name: "bad class",
			in:   strings.Replace(fullSample, `"TextGrid"`, `"PitchTier"`, 1),
			e:    ErrClass,
		},
		{
			name: "bad tier class",
			in:   strings.Replace(fullSample, `"IntervalTier"`, `"SpectrumTier"`, 1),
			e:    textgrid.ErrTierClass,
		},
		{
			name: "not a number",
			in:   strings.Replace(fullSample, "xmax = 2.5\n", "xmax = soon\n", 1),
			e:    token.ErrNumber,
		},
		{
			name: "missing exists",
			in:   strings.Replace(fullSample, "tiers? <exists>\n", "tiers?\n", 1),
			e:    ErrKey,
		},
		{
			name: "index out of order",
			in:   strings.Replace(fullSample, "intervals [2]:", "intervals [3]:", 1),
			e:    ErrIndex,
		},
		{
			name: "wrong key",
			in:   strings.Replace(fullSample, "text = \"hello\"", "label = \"hello\"", 1),
			e:    ErrKey,
		},
		{
			name: "unquoted mark",
			in:   strings.Replace(fullSample, `text = "hello"`, `text = hello`, 1),
			e:    token.ErrNotQuoted,
		},
		{
			name: "unterminated mark",
			in:   strings.TrimSuffix(shortSample, "\"b\"\n") + "\"b\n",
			e:    token.ErrUnterminated,
		},
		{
			name: "truncated",
			in:   strings.TrimSuffix(shortSample, "2\n\"b\"\n"),
			e:    ErrEOF,
		},
		{
			name: "trailing content",
			in:   shortSample + "\"IntervalTier\"\n",
			e:    ErrCount,
		},
		{
			name: "overlapping intervals",
			in:   strings.Replace(shortSample, "1\n1.5\n\"\"\n", "0.5\n1.5\n\"\"\n", 1),
			e:    textgrid.ErrOverlap,
		},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			_, err := Parse([]byte(pt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, pt.e) {
				t.Errorf("got %v, want %v", err, pt.e)
			}
			if !errors.Is(err, token.ErrFormat) {
				t.Errorf("%v does not wrap the format error", err)
			}
		})
	}
}

func TestFieldStates(t *testing.T) {
	// an interval tier with two items, then a point tier with one
	walk := func(kind textgrid.Kind, count int) []fieldState {
		var res []fieldState
		n := 0
		for st := stateTierClass; st != stateTierDone; st = st.next(kind, count-n) {
			res = append(res, st)
			if st == stateIntervalText || st == statePointMark {
				n++
			}
		}
		return res
	}
	got := walk(textgrid.IntervalKind, 2)
	want := []fieldState{
		stateTierClass, stateTierName, stateTierMin, stateTierMax, stateItemCount,
		stateIntervalMin, stateIntervalMax, stateIntervalText,
		stateIntervalMin, stateIntervalMax, stateIntervalText,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("step %d: got %v, want %v", i, got[i], want[i])
		}
	}
	got = walk(textgrid.PointKind, 0)
	want = []fieldState{stateTierClass, stateTierName, stateTierMin, stateTierMax, stateItemCount}
	if len(got) != len(want) {
		t.Fatalf("empty point tier: got %v, want %v", got, want)
	}
}
