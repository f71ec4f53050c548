// Package format names the two textual TextGrid serializations.
package format

import (
	"errors"
	"fmt"
)

type Form int

const (
	// Full is Praat's long form: one "key = value" field per line with
	// explicit item indices.
	Full Form = iota
	// Short is Praat's compact form: bare values whose meaning is
	// positional.
	Short
)

var ErrBadForm = errors.New("bad form")

func ParseForm(v string) (Form, error) {
	f, ok := map[string]Form{
		"f":     Full,
		"full":  Full,
		"long":  Full,
		"s":     Short,
		"short": Short,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadForm, v)
}

func (f Form) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Form) MarshalText() ([]byte, error) {
	switch f {
	case Full:
		return []byte("full"), nil
	case Short:
		return []byte("short"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a form>", f)
	}
}

func (f *Form) UnmarshalText(d []byte) error {
	pf, err := ParseForm(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
