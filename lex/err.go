package lex

import (
	"errors"

	"github.com/ezrec/bitasm/translate"
)

var f = translate.From

var (
	// Scanner errors
	ErrStringUnterminated = errors.New(f("unterminated string"))
	ErrNumberEmpty        = errors.New(f("number has no digits"))
)

// ErrLocation attaches a source location to an error.
type ErrLocation struct {
	Location
	Err error
}

// At wraps err with a source location.
func At(loc Location, err error) error {
	return &ErrLocation{Location: loc, Err: err}
}

func (err *ErrLocation) Error() string {
	return f("%v: %v", err.Location, err.Err)
}

func (err *ErrLocation) Unwrap() error {
	return err.Err
}

type ErrCharacterUnexpected rune

func (err ErrCharacterUnexpected) Error() string {
	return f("unexpected character %q", rune(err))
}

type ErrStringEscape rune

func (err ErrStringEscape) Error() string {
	return f("unknown escape \\%c", rune(err))
}

type ErrDigitHex rune

func (err ErrDigitHex) Error() string {
	return f("expected hex digit got %q", rune(err))
}

type ErrDigitBinary rune

func (err ErrDigitBinary) Error() string {
	return f("expected binary digit got %q", rune(err))
}

type ErrDigitDecimal rune

func (err ErrDigitDecimal) Error() string {
	return f("expected decimal digit got %q", rune(err))
}

type ErrNumberExpected Kind

func (err ErrNumberExpected) Error() string {
	return f("expected number got %v", Kind(err))
}

type ErrNumberRange string

func (err ErrNumberRange) Error() string {
	return f("'%v' does not fit in 64 bits", string(err))
}
