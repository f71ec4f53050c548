package encode

import (
	"bytes"

	"github.com/phonlab/textgrid-format/textgrid"
)

func MustString(g *textgrid.TextGrid, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(g, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
