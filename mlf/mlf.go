// Package mlf reads HTK master label files, as produced by HVite,
// into TextGrids, one per labelled utterance.
//
// Each label line carries either explicit times ("start end label",
// with an optional fourth word field opening a word-level tier) or a
// bare label, in which case unit-spaced times are synthesized from
// the label's position in the block.
package mlf

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/phonlab/textgrid-format/textgrid"
	"github.com/phonlab/textgrid-format/textgrid/debug"
	"github.com/phonlab/textgrid-format/textgrid/token"
)

const header = "#!MLF!#"

// HTK writes times as counts of 100ns units; rounding after division
// keeps 0.01ms resolution without float noise.
const roundDigits = 1e5

type Option func(*opts)

type opts struct {
	rate float64
}

// SampleRate divides every explicit time by r. The default is 1, so
// times pass through untouched; pass 1e7 for HTK's 100ns units.
func SampleRate(r float64) Option {
	return func(o *opts) { o.rate = r }
}

// Read consumes r to completion and parses the result. The stream is
// not closed; its lifetime belongs to the caller.
func Read(r io.Reader, options ...Option) ([]*textgrid.TextGrid, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, options...)
}

// Parse reads a master label file and returns one TextGrid per
// utterance block, in file order. On malformed input the returned
// error wraps token.ErrFormat and names the offending line.
func Parse(d []byte, options ...Option) ([]*textgrid.TextGrid, error) {
	o := &opts{rate: 1}
	for _, opt := range options {
		opt(o)
	}
	sc := token.NewScanner(d)
	line, ok := sc.NextContent()
	if !ok || line != header {
		return nil, token.NewErr(ErrHeader, sc.Pos())
	}
	var grids []*textgrid.TextGrid
	for {
		line, ok := sc.NextContent()
		if !ok {
			return grids, nil
		}
		name, err := token.Unquote(line)
		if err != nil {
			return nil, token.NewErr(fmt.Errorf("%w: %q", ErrName, line), sc.Pos())
		}
		if debug.MLF() {
			fmt.Fprintf(os.Stderr, "mlf: utterance %q at line %d\n", name, sc.Line())
		}
		g, err := parseBlock(sc, name, o)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
}

// parseBlock reads label lines up to the "." terminator and builds
// the utterance's TextGrid. Phone labels land on a "phones" tier; a
// four-field line opens a word on a separate "words" tier, which
// stretches over the following phones until the next word or a
// short-pause ("sp") label starts.
func parseBlock(sc *token.Scanner, name string, o *opts) (*textgrid.TextGrid, error) {
	var (
		phones, words    []textgrid.Interval
		wmrk             string
		wsrt, wend       float64
		sawBare, sawTime bool
		end              float64
	)
	for {
		raw, ok := sc.NextContent()
		if !ok {
			return nil, token.NewErr(ErrTerminator, sc.Pos())
		}
		if raw == "." {
			break
		}
		fields := strings.Fields(raw)
		switch len(fields) {
		case 1:
			if sawTime {
				return nil, token.NewErr(fmt.Errorf("%w: bare label %q after timed labels", ErrLabel, raw), sc.Pos())
			}
			sawBare = true
			i := float64(len(phones))
			phones = append(phones, textgrid.Interval{MinTime: i, MaxTime: i + 1, Mark: decodeLabel(fields[0])})
			end = i + 1
		case 3, 4:
			if sawBare {
				return nil, token.NewErr(fmt.Errorf("%w: timed label %q after bare labels", ErrLabel, raw), sc.Pos())
			}
			sawTime = true
			pmin, err := o.time(sc, fields[0])
			if err != nil {
				return nil, err
			}
			pmax, err := o.time(sc, fields[1])
			if err != nil {
				return nil, err
			}
			if pmax <= pmin {
				return nil, token.NewErr(fmt.Errorf("%w: end %v not after start %v", ErrLabel, pmax, pmin), sc.Pos())
			}
			label := decodeLabel(fields[2])
			switch {
			case len(fields) == 4:
				phones = append(phones, textgrid.Interval{MinTime: pmin, MaxTime: pmax, Mark: label})
				if wmrk != "" {
					words = append(words, textgrid.Interval{MinTime: wsrt, MaxTime: wend, Mark: wmrk})
				}
				wmrk = decodeLabel(fields[3])
				wsrt = pmin
			case label == "sp":
				// HVite writes a short pause between words; it closes
				// the open word and lands on the words tier, not on
				// phones.
				if wmrk != "" {
					words = append(words, textgrid.Interval{MinTime: wsrt, MaxTime: wend, Mark: wmrk})
				}
				wmrk = label
				wsrt = pmin
			default:
				phones = append(phones, textgrid.Interval{MinTime: pmin, MaxTime: pmax, Mark: label})
			}
			wend = pmax
			end = pmax
		default:
			return nil, token.NewErr(fmt.Errorf("%w: %q", ErrLabel, raw), sc.Pos())
		}
	}
	if wmrk != "" {
		words = append(words, textgrid.Interval{MinTime: wsrt, MaxTime: wend, Mark: wmrk})
	}

	g, err := textgrid.New(name, 0, end)
	if err != nil {
		return nil, token.NewErr(err, sc.Pos())
	}
	if err := appendTier(g, "phones", phones, sc); err != nil {
		return nil, err
	}
	if len(words) > 0 {
		if err := appendTier(g, "words", words, sc); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func appendTier(g *textgrid.TextGrid, name string, ivs []textgrid.Interval, sc *token.Scanner) error {
	tier, err := textgrid.NewIntervalTier(name, g.MinTime, g.MaxTime)
	if err != nil {
		return token.NewErr(err, sc.Pos())
	}
	for _, iv := range ivs {
		if err := tier.AddInterval(iv); err != nil {
			return token.NewErr(err, sc.Pos())
		}
	}
	if err := g.Append(tier); err != nil {
		return token.NewErr(err, sc.Pos())
	}
	return nil
}

func (o *opts) time(sc *token.Scanner, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, token.NewErr(fmt.Errorf("%w: %q is not a number", token.ErrNumber, s), sc.Pos())
	}
	if o.rate != 1 {
		v = math.Round(v/o.rate*roundDigits) / roundDigits
	}
	return v, nil
}

// decodeLabel unquotes a fully quoted label and passes everything
// else through verbatim.
func decodeLabel(s string) string {
	if v, err := token.Unquote(s); err == nil {
		return v
	}
	return s
}
