package machines

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSection    = errors.New("missing section")
	ErrUnknownSymbol     = errors.New("unknown symbol")
	ErrUnknownMove       = errors.New("unknown move")
	ErrUndefinedName     = errors.New("undefined name")
	ErrDuplicateName     = errors.New("duplicated name")
	ErrMissingTransition = errors.New("missing transition")
	ErrHaltSize          = errors.New("halting words have different sizes")
	ErrMalformedTape     = errors.New("malformed tape")
	ErrMalformedRow      = errors.New("malformed row")
	ErrQueueExhausted    = errors.New("queue exhausted")
	ErrStepLimit         = errors.New("too many steps")
	ErrTooLarge          = errors.New("too large")
)

// LineError locates a description error.
type LineError struct {
	Err  error
	Line int
}

func (l LineError) Error() string {
	return fmt.Sprintf("%s at line %d", l.Err.Error(), l.Line)
}

func (l LineError) Unwrap() error {
	return l.Err
}

func WithLine(err error, line int) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(LineError); ok {
		return err
	}
	return LineError{
		Err:  err,
		Line: line,
	}
}
