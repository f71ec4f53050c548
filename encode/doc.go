// Package encode renders a TextGrid into either of Praat's textual
// forms. Re-parsing the output always yields an equal grid.
package encode
