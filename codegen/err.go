package codegen

import (
	"errors"

	"github.com/ezrec/bitasm/lex"
	"github.com/ezrec/bitasm/translate"
)

var f = translate.From

var (
	ErrDataEmpty        = errors.New(f("no data was provided"))
	ErrArgumentMissing  = errors.New(f("expected argument"))
	ErrImmediateMissing = errors.New(f("expected immediate"))
)

type ErrIdentExpected lex.Kind

func (err ErrIdentExpected) Error() string {
	return f("expected ident got %v", lex.Kind(err))
}

type ErrLexemUnexpected lex.Kind

func (err ErrLexemUnexpected) Error() string {
	return f("unexpected %v", lex.Kind(err))
}

// ErrNumberTooBig is returned when a value does not fit its field.
type ErrNumberTooBig struct {
	Value uint64
	Width int
}

func (err ErrNumberTooBig) Error() string {
	return f("number %#x too big for %d bits", err.Value, err.Width)
}

type ErrBitsAlignment int

func (err ErrBitsAlignment) Error() string {
	return f("%d bits is not a whole number of bytes", int(err))
}

type ErrBitsTooBig int

func (err ErrBitsTooBig) Error() string {
	return f("%d bits is too big, the limit is 64", int(err))
}

type ErrDirectiveUnresolved string

func (err ErrDirectiveUnresolved) Error() string {
	return f("'%v' must be handled before code generation", string(err))
}
