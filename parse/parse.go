// Package parse reads the Praat TextGrid textual formats.
//
// Both the full form (one "key = value" field per line, explicit
// item indices) and the short form (bare positional values) are
// accepted and produce structurally identical grids. The form is
// taken from the file-type header, with a fallback probe on the first
// body line for writers that pair a full header with a short body.
package parse

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

// Read consumes r to completion and parses the result. The stream is
// not closed; its lifetime belongs to the caller.
func Read(r io.Reader, opts ...ParseOption) (*textgrid.TextGrid, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// Parse reads a TextGrid from caller-decoded text. On malformed input
// the returned error wraps token.ErrFormat and names the offending
// line.
func Parse(d []byte, opts ...ParseOption) (*textgrid.TextGrid, error) {
	po := &parseOpts{}
	for _, o := range opts {
		o(po)
	}
	r := &reader{sc: token.NewScanner(d)}
	if err := r.header(); err != nil {
		return nil, err
	}
	if po.form != nil {
		r.short = *po.form == format.Short
		r.forced = true
	}

	gmin, err := r.probeNumber("xmin")
	if err != nil {
		return nil, err
	}
	gmax, err := r.number("xmax")
	if err != nil {
		return nil, err
	}
	if err := r.exists(); err != nil {
		return nil, err
	}
	size, err := r.integer("size")
	if err != nil {
		return nil, err
	}
	if !r.short {
		line, err := r.content()
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(line, "item") {
			return nil, token.NewErr(fmt.Errorf("%w: got %q, want \"item []:\"", ErrKey, line), r.sc.Pos())
		}
	}

	grid, err := textgrid.New("", gmin, gmax)
	if err != nil {
		return nil, token.NewErr(err, r.sc.Pos())
	}
	for i := 1; i <= size; i++ {
		if !r.short {
			if err := r.itemIndex("item", i); err != nil {
				return nil, err
			}
		}
		tier, err := r.parseTier()
		if err != nil {
			return nil, err
		}
		if err := grid.Append(tier); err != nil {
			return nil, token.NewErr(err, r.sc.Pos())
		}
	}
	if line, ok := r.sc.NextContent(); ok {
		return nil, token.NewErr(fmt.Errorf("%w: trailing content %q after %d tiers", ErrCount, line, size), r.sc.Pos())
	}
	return grid, nil
}

type reader struct {
	sc     *token.Scanner
	short  bool
	forced bool
}

// header consumes the two file-type lines. The file type must start
// with "ooTextFile"; "short" in it selects the short form. The object
// class must be TextGrid.
func (r *reader) header() error {
	line, ok := r.sc.NextContent()
	if !ok {
		return token.NewErr(ErrHeader, r.sc.Pos())
	}
	val, err := r.fullValue(line, "File type")
	if err != nil {
		return token.NewErr(ErrHeader, r.sc.Pos())
	}
	ftype, uerr := token.Unquote(val)
	if uerr != nil || !strings.HasPrefix(ftype, "ooTextFile") {
		return token.NewErr(ErrHeader, r.sc.Pos())
	}
	r.short = strings.Contains(ftype, "short")

	line, ok = r.sc.NextContent()
	if !ok {
		return token.NewErr(ErrHeader, r.sc.Pos())
	}
	raw := line
	if !r.short {
		val, err := r.fullValue(line, "Object class")
		if err != nil {
			if !token.IsQuoted(line) {
				return err
			}
			// full header over a short body
			r.short = true
		} else {
			raw = val
		}
	}
	class, uerr := token.Unquote(raw)
	if uerr != nil {
		return token.NewErr(ErrHeader, r.sc.Pos())
	}
	if class != "TextGrid" {
		return token.NewErr(fmt.Errorf("%w: %q", ErrClass, class), r.sc.Pos())
	}
	return nil
}

// parseTier reads one tier, walking the fieldState machine. The
// short form takes each field's meaning from the current state; the
// full form additionally checks key names and item index lines.
func (r *reader) parseTier() (*textgrid.Tier, error) {
	var (
		tier        *textgrid.Tier
		kind        textgrid.Kind
		class, name string
		tmin, tmax  float64
		count, n    int
		imin, imax  float64
		ptime       float64
		err         error
	)
	st := stateTierClass
	for st != stateTierDone {
		if debug.Parse() {
			fmt.Fprintf(os.Stderr, "parse: %s item=%d/%d line=%d\n", st, n, count, r.sc.Line())
		}
		if st.startsItem() && !r.short {
			label := "intervals"
			if kind == textgrid.PointKind {
				label = "points"
			}
			if err := r.itemIndex(label, n+1); err != nil {
				return nil, err
			}
		}
		switch st {
		case stateTierClass:
			class, err = r.mark("class")
			if err != nil {
				return nil, err
			}
			kind, err = textgrid.KindOfClass(class)
			if err != nil {
				return nil, token.NewErr(err, r.sc.Pos())
			}
		case stateTierName:
			name, err = r.mark("name")
		case stateTierMin:
			tmin, err = r.number("xmin")
		case stateTierMax:
			tmax, err = r.number("xmax")
			if err == nil {
				tier, err = textgrid.NewTier(class, name, tmin, tmax)
				if err != nil {
					return nil, token.NewErr(err, r.sc.Pos())
				}
			}
		case stateItemCount:
			key := "intervals: size"
			if kind == textgrid.PointKind {
				key = "points: size"
			}
			count, err = r.integer(key)
		case stateIntervalMin:
			imin, err = r.number("xmin")
		case stateIntervalMax:
			imax, err = r.number("xmax")
		case stateIntervalText:
			var mark string
			mark, err = r.mark("text")
			if err == nil && imin < imax {
				// zero-duration intervals are silently dropped, as
				// Praat cannot represent them
				if aerr := tier.Add(imin, imax, mark); aerr != nil {
					return nil, token.NewErr(aerr, r.sc.Pos())
				}
			}
			n++
		case statePointNumber:
			ptime, err = r.number("number", "time")
		case statePointMark:
			var mark string
			mark, err = r.mark("mark")
			if err == nil {
				if aerr := tier.AddPoint(textgrid.Point{Time: ptime, Mark: mark}); aerr != nil {
					return nil, token.NewErr(aerr, r.sc.Pos())
				}
			}
			n++
		}
		if err != nil {
			return nil, err
		}
		st = st.next(kind, count-n)
	}
	return tier, nil
}

// content returns the next meaningful line or an ErrEOF format error.
func (r *reader) content() (string, error) {
	line, ok := r.sc.NextContent()
	if !ok {
		return "", token.NewErr(ErrEOF, r.sc.Pos())
	}
	return line, nil
}

// fullValue extracts the value of a full-form "key = value" line,
// verifying the key against the accepted names.
func (r *reader) fullValue(line string, keys ...string) (string, error) {
	k, v, ok := strings.Cut(line, "=")
	if !ok {
		return "", token.NewErr(fmt.Errorf("%w: got %q, want %q", ErrKey, line, keys[0]), r.sc.Pos())
	}
	k = strings.TrimSpace(k)
	for _, key := range keys {
		if k == key {
			return strings.TrimSpace(v), nil
		}
	}
	return "", token.NewErr(fmt.Errorf("%w: got %q, want %q", ErrKey, k, keys[0]), r.sc.Pos())
}

// probeNumber reads the first body number. When the header promised
// the full form but the line does not parse as one, the reader
// switches to short: old writers pair a full header with a short
// body.
func (r *reader) probeNumber(key string) (float64, error) {
	line, err := r.content()
	if err != nil {
		return 0, err
	}
	if !r.short {
		if val, verr := r.fullValue(line, key); verr == nil {
			return r.parseFloat(val)
		}
		if r.forced {
			return 0, token.NewErr(fmt.Errorf("%w: got %q, want %q", ErrKey, line, key), r.sc.Pos())
		}
		r.short = true
	}
	return r.parseFloat(line)
}

func (r *reader) number(keys ...string) (float64, error) {
	line, err := r.content()
	if err != nil {
		return 0, err
	}
	if r.short {
		return r.parseFloat(line)
	}
	val, err := r.fullValue(line, keys...)
	if err != nil {
		return 0, err
	}
	return r.parseFloat(val)
}

func (r *reader) integer(keys ...string) (int, error) {
	line, err := r.content()
	if err != nil {
		return 0, err
	}
	val := line
	if !r.short {
		val, err = r.fullValue(line, keys...)
		if err != nil {
			return 0, err
		}
	}
	n, aerr := strconv.Atoi(val)
	if aerr != nil {
		return 0, token.NewErr(fmt.Errorf("%w: %q is not an integer", token.ErrNumber, val), r.sc.Pos())
	}
	if n < 0 {
		return 0, token.NewErr(fmt.Errorf("%w: negative count %d", token.ErrNumber, n), r.sc.Pos())
	}
	return n, nil
}

func (r *reader) parseFloat(val string) (float64, error) {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, token.NewErr(fmt.Errorf("%w: %q is not a number", token.ErrNumber, val), r.sc.Pos())
	}
	return v, nil
}

// exists consumes the "tiers? <exists>" flag line.
func (r *reader) exists() error {
	line, err := r.content()
	if err != nil {
		return err
	}
	if !strings.Contains(line, "<exists>") {
		return token.NewErr(fmt.Errorf("%w: got %q, want \"tiers? <exists>\"", ErrKey, line), r.sc.Pos())
	}
	return nil
}

// mark reads a quoted value, possibly spanning several lines: Praat
// allows newlines inside marks, so the value continues until the
// quote count is even.
func (r *reader) mark(keys ...string) (string, error) {
	line, err := r.content()
	if err != nil {
		return "", err
	}
	raw := line
	if !r.short {
		raw, err = r.fullValue(line, keys...)
		if err != nil {
			return "", err
		}
	}
	if !token.IsQuoted(raw) {
		return "", token.NewErr(fmt.Errorf("%w: %q", token.ErrNotQuoted, raw), r.sc.Pos())
	}
	for !token.Balanced(raw) {
		next, ok := r.sc.Next()
		if !ok {
			return "", token.NewErr(token.ErrUnterminated, r.sc.Pos())
		}
		raw += "\n" + next
	}
	raw = strings.TrimRight(raw, " \t")
	v, uerr := token.Unquote(raw)
	if uerr != nil {
		return "", token.NewErr(uerr, r.sc.Pos())
	}
	return v, nil
}

// itemIndex consumes a full-form "label [N]:" line and verifies N.
func (r *reader) itemIndex(label string, want int) error {
	line, err := r.content()
	if err != nil {
		return err
	}
	rest, ok := strings.CutPrefix(line, label)
	if !ok {
		return token.NewErr(fmt.Errorf("%w: got %q, want \"%s [%d]:\"", ErrKey, line, label, want), r.sc.Pos())
	}
	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ":"))
	if len(rest) < 2 || rest[0] != '[' || rest[len(rest)-1] != ']' {
		return token.NewErr(fmt.Errorf("%w: got %q, want \"%s [%d]:\"", ErrKey, line, label, want), r.sc.Pos())
	}
	n, aerr := strconv.Atoi(strings.TrimSpace(rest[1 : len(rest)-1]))
	if aerr != nil {
		return token.NewErr(fmt.Errorf("%w: bad index in %q", ErrIndex, line), r.sc.Pos())
	}
	if n != want {
		return token.NewErr(fmt.Errorf("%w: got %s [%d], want [%d]", ErrIndex, label, n, want), r.sc.Pos())
	}
	return nil
}
