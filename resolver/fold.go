package resolver

import (
	"github.com/ezrec/bitasm/lex"
)

// Substitute replaces identifier arguments naming a label with the label's
// address. Unknown identifiers are left for later stages to report.
func Substitute(tokens []Token, labels Labels) []Token {
	out, _ := mapArgs(tokens, func(arg lex.Lexem) (lex.Lexem, error) {
		return substitute(arg.Clone(), labels), nil
	})
	return out
}

func substitute(lexem lex.Lexem, labels Labels) lex.Lexem {
	switch lexem.Kind {
	case lex.KIND_IDENT:
		if address, ok := labels[lexem.Value]; ok {
			return lex.NewNumber(address, lexem.Location)
		}
	case lex.KIND_CLOSURE:
		for n, arg := range lexem.Args {
			lexem.Args[n] = substitute(arg, labels)
		}
	}
	return lexem
}

// Fold evaluates every closure argument to a decimal number.
func Fold(tokens []Token) ([]Token, error) {
	return mapArgs(tokens, func(arg lex.Lexem) (lex.Lexem, error) {
		if arg.Kind != lex.KIND_CLOSURE {
			return arg, nil
		}
		value, err := Evaluate(arg)
		if err != nil {
			return arg, err
		}
		return lex.NewNumber(value, arg.Location), nil
	})
}

// Evaluate computes the unsigned value of a number or closure lexem.
// Arithmetic wraps at 64 bits.
func Evaluate(lexem lex.Lexem) (value uint64, err error) {
	switch lexem.Kind {
	case lex.KIND_NUMBER:
		return lexem.Uint64()
	case lex.KIND_IDENT:
		err = lex.At(lexem.Location, ErrLabelUndeclared(lexem.Value))
		return
	case lex.KIND_CLOSURE:
	default:
		err = lex.At(lexem.Location, lex.ErrNumberExpected(lexem.Kind))
		return
	}

	lhs, err := Evaluate(lexem.Args[0])
	if err != nil {
		return
	}
	rhs, err := Evaluate(lexem.Args[2])
	if err != nil {
		return
	}

	op := lexem.Args[1]
	if op.Kind != lex.KIND_OPERATOR {
		err = lex.At(op.Location, ErrOperatorExpected(op.Kind))
		return
	}

	switch op.Value {
	case "+":
		value = lhs + rhs
	case "-":
		value = lhs - rhs
	case "*":
		value = lhs * rhs
	case "/":
		if rhs == 0 {
			err = lex.At(op.Location, ErrDivideByZero)
			return
		}
		value = lhs / rhs
	case "&":
		value = lhs & rhs
	case "|":
		value = lhs | rhs
	case "^":
		value = lhs ^ rhs
	case "<<":
		value = lhs << rhs
	case ">>":
		value = lhs >> rhs
	default:
		err = lex.At(op.Location, ErrOperatorInvalid(op.Value))
	}

	return
}
