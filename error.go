package seq

import "errors"

var (
	ErrUsed           = errors.New("used")
	ErrUnbounded      = errors.New("unbounded")
	ErrNotInitialized = errors.New("not initialized")
	ErrBadIndex       = errors.New("bad index")
	ErrBadRange       = errors.New("bad range")
	ErrRevived        = errors.New("revived after exhaustion")
)
