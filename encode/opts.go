package encode

import "github.com/phonlab/textgrid-format/textgrid/format"

type EncodeOption func(*encState)

// EncodeForm selects the textual form; the default is the full form.
func EncodeForm(f format.Form) EncodeOption {
	return func(es *encState) { es.form = f }
}

// EncodeNull sets the mark used to pad unlabelled spans of interval
// tiers; the default is the empty string.
func EncodeNull(null string) EncodeOption {
	return func(es *encState) { es.null = null }
}

// EncodeColors colorizes the output for terminal viewing. Colorized
// output is for eyes, not for re-parsing.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
