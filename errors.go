package conslisp

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the parser or the evaluator wraps
// exactly one of these, so callers can classify failures with errors.Is.
var (
	ErrParse      = errors.New("parse error")
	ErrArity      = errors.New("arity error")
	ErrType       = errors.New("type error")
	ErrUnbound    = errors.New("unbound name")
	ErrDefinition = errors.New("definition error")
	ErrRecursion  = errors.New("recursion limit exceeded")
	ErrLoad       = errors.New("load error")
)

// ErrIncomplete is returned by the parser when the input ends inside an
// open list. It is also an ErrParse.
var ErrIncomplete = fmt.Errorf("%w: unexpected end of input", ErrParse)

func typeError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrType, fmt.Sprintf(format, args...))
}

func arityError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrArity, fmt.Sprintf(format, args...))
}
