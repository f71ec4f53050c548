// Package token provides line scanning and quoted string handling for
// the Praat TextGrid textual formats and HTK label files.
//
// The grammars are line oriented, so the scanner hands out whole lines
// together with their positions rather than individual lexemes.
package token
