// Package debug holds env-var gated debug toggles for the codec.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	MLF    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TG_DEBUG_PARSE")
	d.Encode = boolEnv("TG_DEBUG_ENCODE")
	d.MLF = boolEnv("TG_DEBUG_MLF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func MLF() bool {
	return d.MLF
}
