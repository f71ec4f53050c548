// Package textgrid models Praat TextGrid annotation documents: tiers
// of time-stamped intervals or points over a shared timeline.
//
// A TextGrid owns an ordered list of tiers; a Tier owns an ordered
// list of intervals or points, depending on its kind. Mutators
// validate the temporal invariants (non-overlap, ordering, tier
// bounds) before changing anything, so a failed edit leaves the
// receiver untouched.
//
// Parsing and serialization of the two Praat textual forms live in
// the parse and encode subpackages; HTK master label import lives in
// mlf.
//
// Values are not safe for concurrent mutation. A TextGrid and its
// tiers may be read from multiple goroutines only while no writer is
// active; the package performs no internal locking.
package textgrid
