package token

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the root of all malformed-input errors produced by
	// the parsers in this module.
	ErrFormat = errors.New("format error")

	ErrUnterminated = errors.New("unterminated quoted text")
	ErrNotQuoted    = errors.New("not a quoted value")
	ErrNumber       = errors.New("bad number")
)

// Err is a format error carrying the position of the offending line.
type Err struct {
	Err error
	Pos *Pos
}

func NewErr(err error, pos *Pos) *Err {
	return &Err{Err: err, Pos: pos}
}

// Is makes every *Err match ErrFormat, so callers can test
// errors.Is(err, token.ErrFormat) without knowing the detail error.
func (e *Err) Is(target error) bool {
	return target == ErrFormat
}

func (e *Err) Unwrap() error {
	return e.Err
}

func (e *Err) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%v: %v", ErrFormat, e.Err)
	}
	return fmt.Sprintf("%v: %v at %s", ErrFormat, e.Err, e.Pos)
}
