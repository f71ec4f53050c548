package parse

import "github.com/phonlab/textgrid-format/textgrid/format"

type ParseOption func(*parseOpts)

type parseOpts struct {
	form *format.Form
}

// ParseForm forces the body to be read in the given form instead of
// trusting the file-type header and the first-body-line probe.
func ParseForm(f format.Form) ParseOption {
	return func(po *parseOpts) { po.form = &f }
}
