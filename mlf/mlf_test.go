package mlf

import (
	"errors"
	"strings"
	"testing"

	"github.com/phonlab/textgrid-format/textgrid"
	"github.com/phonlab/textgrid-format/textgrid/token"
)

const aligned = `#!MLF!#
"*/utt1.lab"
0 3000000 sil
3000000 5500000 k
5500000 7000000 ae kat
7000000 9000000 t
.
"*/utt2.lab"
0 2000000 sil
.
`

func TestParseAligned(t *testing.T) {
	grids, err := Parse([]byte(aligned), SampleRate(1e7))
	if err != nil {
		t.Fatal(err)
	}
	if len(grids) != 2 {
		t.Fatalf("got %d grids, want 2", len(grids))
	}
	g := grids[0]
	if g.Name != "*/utt1.lab" {
		t.Errorf("got name %q", g.Name)
	}
	phones, err := g.ByName("phones")
	if err != nil {
		t.Fatal(err)
	}
	if phones.Len() != 4 {
		t.Fatalf("got %d phones, want 4", phones.Len())
	}
	if iv := phones.Intervals[1]; iv.MinTime != 0.3 || iv.MaxTime != 0.55 || iv.Mark != "k" {
		t.Errorf("phones[1] = %v", iv)
	}
	words, err := g.ByName("words")
	if err != nil {
		t.Fatal(err)
	}
	if words.Len() != 1 {
		t.Fatalf("got %d words, want 1", words.Len())
	}
	if iv := words.Intervals[0]; iv.MinTime != 0.55 || iv.MaxTime != 0.9 || iv.Mark != "kat" {
		t.Errorf("words[0] = %v", iv)
	}
	if grids[1].Len() != 1 {
		t.Errorf("utt2 has %d tiers, want phones only", grids[1].Len())
	}
}

func TestParseShortPause(t *testing.T) {
	in := `#!MLF!#
"*/utt3.lab"
0 3000000 sil
3000000 5500000 k
5500000 7000000 ae kat
7000000 8000000 t
8000000 9000000 sp
9000000 10000000 d dog
.
`
	grids, err := Parse([]byte(in), SampleRate(1e7))
	if err != nil {
		t.Fatal(err)
	}
	phones, err := grids[0].ByName("phones")
	if err != nil {
		t.Fatal(err)
	}
	wantPhones := []string{"sil", "k", "ae", "t", "d"}
	if phones.Len() != len(wantPhones) {
		t.Fatalf("got %d phones, want %d: %v", phones.Len(), len(wantPhones), phones.Intervals)
	}
	for i, m := range wantPhones {
		if phones.Intervals[i].Mark != m {
			t.Errorf("phones[%d].Mark = %q, want %q", i, phones.Intervals[i].Mark, m)
		}
	}
	words, err := grids[0].ByName("words")
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		min, max float64
		mark     string
	}{
		{0.55, 0.8, "kat"},
		{0.8, 0.9, "sp"},
		{0.9, 1, "dog"},
	}
	if words.Len() != len(want) {
		t.Fatalf("got %d words, want %d: %v", words.Len(), len(want), words.Intervals)
	}
	for i, w := range want {
		iv := words.Intervals[i]
		if iv.MinTime != w.min || iv.MaxTime != w.max || iv.Mark != w.mark {
			t.Errorf("words[%d] = %v, want (%v, %v, %q)", i, iv, w.min, w.max, w.mark)
		}
	}
}

func TestParseSingleLabel(t *testing.T) {
	in := "#!MLF!#\n\"*/a.lab\"\n0 50000 \"sil\"\n.\n"
	grids, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(grids) != 1 || grids[0].Len() != 1 {
		t.Fatalf("got %v", grids)
	}
	tier := grids[0].Tiers[0]
	if tier.Kind != textgrid.IntervalKind || tier.Len() != 1 {
		t.Fatalf("got tier %v", tier)
	}
	if iv := tier.Intervals[0]; iv.MinTime != 0 || iv.MaxTime != 50000 || iv.Mark != "sil" {
		t.Errorf("got %v, want (0, 50000, sil)", iv)
	}
}

func TestParseBareLabels(t *testing.T) {
	in := "#!MLF!#\n\"*/a.lab\"\nsil\nk\nae\n.\n"
	grids, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	phones := grids[0].Tiers[0]
	if phones.Len() != 3 {
		t.Fatalf("got %d labels", phones.Len())
	}
	if iv := phones.Intervals[2]; iv.MinTime != 2 || iv.MaxTime != 3 || iv.Mark != "ae" {
		t.Errorf("got %v, want unit-spaced (2, 3, ae)", iv)
	}
	if grids[0].MaxTime != 3 {
		t.Errorf("grid max = %v, want 3", grids[0].MaxTime)
	}
}

func TestParseEmptyBlock(t *testing.T) {
	grids, err := Parse([]byte("#!MLF!#\n\"*/a.lab\"\n.\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(grids) != 1 || grids[0].Tiers[0].Len() != 0 {
		t.Errorf("got %v", grids)
	}
}

func TestParseErrors(t *testing.T) {
	for _, c := range []struct {
		name string
		in   string
		e    error
	}{
		{
			name: "no header",
			in:   "\"*/a.lab\"\n0 1 x\n.\n",
			e:    ErrHeader,
		},
		{
			name: "unquoted name",
			in:   "#!MLF!#\nutt1.lab\n0 1 x\n.\n",
			e:    ErrName,
		},
		{
			name: "missing terminator",
			in:   "#!MLF!#\n\"*/a.lab\"\n0 1 x\n",
			e:    ErrTerminator,
		},
		{
			name: "end before start",
			in:   "#!MLF!#\n\"*/a.lab\"\n5 5 x\n.\n",
			e:    ErrLabel,
		},
		{
			name: "bad time",
			in:   "#!MLF!#\n\"*/a.lab\"\n0 soon x\n.\n",
			e:    token.ErrNumber,
		},
		{
			name: "two fields",
			in:   "#!MLF!#\n\"*/a.lab\"\n0 1\n.\n",
			e:    ErrLabel,
		},
		{
			name: "mixed bare and timed",
			in:   "#!MLF!#\n\"*/a.lab\"\nsil\n1 2 x\n.\n",
			e:    ErrLabel,
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, c.e) {
				t.Errorf("got %v, want %v", err, c.e)
			}
			if !errors.Is(err, token.ErrFormat) {
				t.Errorf("%v does not wrap the format error", err)
			}
		})
	}
}

func TestParseQuotedLabels(t *testing.T) {
	in := "#!MLF!#\n\"*/a.lab\"\n0 1 \"say \"\"hi\"\"\"\n.\n"
	grids, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if m := grids[0].Tiers[0].Intervals[0].Mark; m != `say "hi"` {
		t.Errorf("got mark %q", m)
	}
}

func TestSampleRateRounding(t *testing.T) {
	in := "#!MLF!#\n\"*/a.lab\"\n0 3333333 x\n.\n"
	grids, err := Parse([]byte(in), SampleRate(1e7))
	if err != nil {
		t.Fatal(err)
	}
	if got := grids[0].Tiers[0].Intervals[0].MaxTime; got != 0.33333 {
		t.Errorf("got %v, want 0.33333", got)
	}
	if !strings.HasPrefix(grids[0].Name, "*/") {
		t.Errorf("name %q lost its pattern prefix", grids[0].Name)
	}
}
