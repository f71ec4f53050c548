package encode

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phonlab/textgrid-format/textgrid"
	"github.com/phonlab/textgrid-format/textgrid/debug"
	"github.com/phonlab/textgrid-format/textgrid/format"
	"github.com/phonlab/textgrid-format/textgrid/token"
)

type encState struct {
	form   format.Form
	null   string
	colors *Colors
}

// Encode writes g to w in the selected form. The grid is read-only
// during encoding and the stream stays open; its lifetime belongs to
// the caller.
func Encode(g *textgrid.TextGrid, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		fmt.Fprintf(os.Stderr, "encode: form=%s tiers=%d\n", es.form, g.Len())
	}
	wr := &writer{w: w}
	if es.form == format.Short {
		encodeShort(g, wr, es)
	} else {
		encodeFull(g, wr, es)
	}
	return wr.err
}

// FormatTime renders a time the way Praat's writer does: the shortest
// plain decimal that round-trips, with no trailing decimal point on
// integral values.
func FormatTime(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

func encodeFull(g *textgrid.TextGrid, wr *writer, es *encState) {
	wr.line(0, es.kv("File type", es.str("ooTextFile")))
	wr.line(0, es.kv("Object class", es.str("TextGrid")))
	wr.line(0, "")
	wr.line(0, es.kv("xmin", es.num(g.MinTime)))
	wr.line(0, es.kv("xmax", es.num(g.MaxTime)))
	wr.line(0, es.attr(KeyColor, "tiers?")+" <exists>")
	wr.line(0, es.kv("size", es.count(g.Len())))
	wr.line(0, es.attr(IndexColor, "item []:"))
	for i, tier := range g.Tiers {
		wr.line(1, es.attr(IndexColor, fmt.Sprintf("item [%d]:", i+1)))
		wr.line(2, es.kv("class", es.attr(ClassColor, token.Quote(tier.Class()))))
		wr.line(2, es.kv("name", es.str(tier.Name)))
		wr.line(2, es.kv("xmin", es.num(tier.MinTime)))
		wr.line(2, es.kv("xmax", es.num(tier.MaxTime)))
		switch tier.Kind {
		case textgrid.IntervalKind:
			filled := tier.Filled(es.null)
			wr.line(2, es.kv("intervals: size", es.count(len(filled))))
			for j, iv := range filled {
				wr.line(3, es.attr(IndexColor, fmt.Sprintf("intervals [%d]:", j+1)))
				wr.line(4, es.kv("xmin", es.num(iv.MinTime)))
				wr.line(4, es.kv("xmax", es.num(iv.MaxTime)))
				wr.line(4, es.kv("text", es.str(iv.Mark)))
			}
		case textgrid.PointKind:
			wr.line(2, es.kv("points: size", es.count(len(tier.Points))))
			for j, p := range tier.Points {
				wr.line(3, es.attr(IndexColor, fmt.Sprintf("points [%d]:", j+1)))
				wr.line(4, es.kv("number", es.num(p.Time)))
				wr.line(4, es.kv("mark", es.str(p.Mark)))
			}
		}
	}
}

func encodeShort(g *textgrid.TextGrid, wr *writer, es *encState) {
	// the first line keeps the full-form framing in both forms
	wr.line(0, es.kv("File type", es.str("ooTextFile short")))
	wr.line(0, es.str("TextGrid"))
	wr.line(0, "")
	wr.line(0, es.num(g.MinTime))
	wr.line(0, es.num(g.MaxTime))
	wr.line(0, "<exists>")
	wr.line(0, es.count(g.Len()))
	for _, tier := range g.Tiers {
		wr.line(0, es.attr(ClassColor, token.Quote(tier.Class())))
		wr.line(0, es.str(tier.Name))
		wr.line(0, es.num(tier.MinTime))
		wr.line(0, es.num(tier.MaxTime))
		switch tier.Kind {
		case textgrid.IntervalKind:
			filled := tier.Filled(es.null)
			wr.line(0, es.count(len(filled)))
			for _, iv := range filled {
				wr.line(0, es.num(iv.MinTime))
				wr.line(0, es.num(iv.MaxTime))
				wr.line(0, es.str(iv.Mark))
			}
		case textgrid.PointKind:
			wr.line(0, es.count(len(tier.Points)))
			for _, p := range tier.Points {
				wr.line(0, es.num(p.Time))
				wr.line(0, es.str(p.Mark))
			}
		}
	}
}

// writer accumulates the first write error so the encoders stay
// readable.
type writer struct {
	w   io.Writer
	err error
}

const indent = "\t"

func (wr *writer) line(depth int, s string) {
	if wr.err != nil {
		return
	}
	_, wr.err = io.WriteString(wr.w, strings.Repeat(indent, depth)+s+"\n")
}

func (es *encState) kv(key, val string) string {
	return es.attr(KeyColor, key) + " = " + val
}

func (es *encState) str(s string) string {
	return es.attr(MarkColor, token.Quote(s))
}

func (es *encState) num(t float64) string {
	return es.attr(NumberColor, FormatTime(t))
}

func (es *encState) count(n int) string {
	return es.attr(NumberColor, strconv.Itoa(n))
}

func (es *encState) attr(a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(a, s)
}
