package parse

import (
	"errors"
)

var (
	ErrHeader = errors.New("missing or malformed Praat text file header")
	ErrClass  = errors.New("object class is not TextGrid")
	ErrKey    = errors.New("unexpected field key")
	ErrIndex  = errors.New("item index out of order")
	ErrCount  = errors.New("item count mismatch")
	ErrEOF    = errors.New("unexpected end of input")
)
