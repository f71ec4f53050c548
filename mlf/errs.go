package mlf

import (
	"errors"
)

var (
	ErrHeader     = errors.New("missing #!MLF!# header")
	ErrName       = errors.New("utterance name is not quoted")
	ErrLabel      = errors.New("malformed label line")
	ErrTerminator = errors.New("utterance block missing terminating \".\"")
)
