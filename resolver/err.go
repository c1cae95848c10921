package resolver

import (
	"errors"

	"github.com/ezrec/bitasm/lex"
	"github.com/ezrec/bitasm/translate"
)

var f = translate.From

var (
	// Grouping errors
	ErrArgumentMissing = errors.New(f("expected argument"))

	// Pseudo-instruction errors
	ErrPseudoRecursion = errors.New(f("pseudo-instruction expansion too deep"))
	ErrPseudoLabel     = errors.New(f("labels are not permitted in a pseudo-instruction body"))
	ErrPseudoHeader    = errors.New(f("pseudo-instruction header must be a single instruction"))

	// Layout errors
	ErrOrgArgument = errors.New(f("org requires exactly one numeric argument"))

	// Folding errors
	ErrDivideByZero = errors.New(f("division by zero"))
)

type ErrTokenUnexpected string

func (err ErrTokenUnexpected) Error() string {
	return f("unexpected token '%v'", string(err))
}

type ErrClosureUnclosed string

func (err ErrClosureUnclosed) Error() string {
	return f("expected ')' got '%v'", string(err))
}

type ErrOperatorExpected lex.Kind

func (err ErrOperatorExpected) Error() string {
	return f("expected operator got %v", lex.Kind(err))
}

type ErrOperatorInvalid string

func (err ErrOperatorInvalid) Error() string {
	return f("invalid operator '%v'", string(err))
}

type ErrPseudoDuplicate string

func (err ErrPseudoDuplicate) Error() string {
	return f("pseudo-instruction '%v' defined more than once", string(err))
}

type ErrPseudoFormal string

func (err ErrPseudoFormal) Error() string {
	return f("pseudo-instruction parameter '%v' must be an identifier", string(err))
}

// ErrPseudoArity is returned when a pseudo-instruction is called with too
// few arguments.
type ErrPseudoArity struct {
	Name string
	Want int
	Got  int
}

func (err ErrPseudoArity) Error() string {
	return f("pseudo-instruction '%v' expects %d arguments, got %d", err.Name, err.Want, err.Got)
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label '%v' already defined", string(err))
}

type ErrLabelUndeclared string

func (err ErrLabelUndeclared) Error() string {
	return f("use of undeclared label '%v'", string(err))
}

type ErrLayoutArgument lex.Kind

func (err ErrLayoutArgument) Error() string {
	return f("unexpected %v in data directive", lex.Kind(err))
}

type ErrLayoutUnknown string

func (err ErrLayoutUnknown) Error() string {
	return f("unknown layout '%v'", string(err))
}
