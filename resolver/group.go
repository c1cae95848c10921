// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package resolver

import (
	"github.com/ezrec/bitasm/lex"
)

// grouper is the statement parser state.
type grouper struct {
	lexems []lex.Lexem
	cursor int
	tokens []Token
}

// Group splits lexems into label and instruction statements. Newlines end
// statements; a label may share its line with the statement that follows it.
func Group(lexems []lex.Lexem) (tokens []Token, err error) {
	gp := &grouper{lexems: lexems}

	for {
		gp.skipNewlines()
		if gp.done() {
			break
		}
		err = gp.statement()
		if err != nil {
			return
		}
	}

	tokens = gp.tokens
	return
}

func (gp *grouper) done() bool {
	return gp.cursor >= len(gp.lexems)
}

// ended is true at the end of a statement.
func (gp *grouper) ended() bool {
	return gp.done() || gp.lexems[gp.cursor].Kind == lex.KIND_NEWLINE
}

func (gp *grouper) skipNewlines() {
	for !gp.done() && gp.lexems[gp.cursor].Kind == lex.KIND_NEWLINE {
		gp.cursor++
	}
}

func (gp *grouper) chop() (lexem lex.Lexem) {
	lexem = gp.lexems[gp.cursor]
	gp.cursor++
	return
}

// after is the location just past the previous lexem.
func (gp *grouper) after() (loc lex.Location) {
	if gp.cursor == 0 {
		return
	}
	prev := gp.lexems[gp.cursor-1]
	loc = prev.Location
	span := prev.Span
	if span == 0 {
		span = len([]rune(prev.Source()))
	}
	loc.Col += span
	return
}

func (gp *grouper) statement() (err error) {
	name := gp.chop()
	if name.Kind != lex.KIND_IDENT {
		return lex.At(name.Location, ErrTokenUnexpected(name.Source()))
	}

	if !gp.done() && gp.lexems[gp.cursor].Is(lex.KIND_PUNCT, ":") {
		gp.cursor++
		gp.tokens = append(gp.tokens, Token{Kind: TOKEN_LABEL, Name: name})
		return
	}

	args, err := gp.args()
	if err != nil {
		return
	}

	gp.tokens = append(gp.tokens, Token{Kind: TOKEN_INSTRUCTION, Name: name, Args: args})
	return
}

// args parses a comma separated argument list up to the end of the statement.
func (gp *grouper) args() (args []lex.Lexem, err error) {
	if gp.ended() {
		return
	}

	for {
		var arg lex.Lexem
		arg, err = gp.arg()
		if err != nil {
			return
		}
		args = append(args, arg)

		if gp.ended() {
			return
		}

		sep := gp.chop()
		if !sep.Is(lex.KIND_PUNCT, ",") {
			err = lex.At(sep.Location, ErrTokenUnexpected(sep.Source()))
			return
		}

		if gp.ended() {
			err = lex.At(gp.after(), ErrArgumentMissing)
			return
		}
	}
}

// arg parses a single argument, or a nested (lhs op rhs) closure.
func (gp *grouper) arg() (arg lex.Lexem, err error) {
	if gp.done() {
		err = lex.At(gp.after(), ErrArgumentMissing)
		return
	}

	arg = gp.chop()
	switch arg.Kind {
	case lex.KIND_IDENT, lex.KIND_NUMBER, lex.KIND_STRING:
		return
	case lex.KIND_PUNCT:
		if arg.Value == "(" {
			return gp.closure(arg)
		}
	}

	err = lex.At(arg.Location, ErrTokenUnexpected(arg.Source()))
	return
}

func (gp *grouper) closure(open lex.Lexem) (node lex.Lexem, err error) {
	lhs, err := gp.arg()
	if err != nil {
		return
	}

	if gp.done() {
		err = lex.At(gp.after(), ErrOperatorExpected(lex.KIND_NEWLINE))
		return
	}
	op := gp.chop()
	if op.Kind != lex.KIND_OPERATOR {
		err = lex.At(op.Location, ErrOperatorExpected(op.Kind))
		return
	}

	rhs, err := gp.arg()
	if err != nil {
		return
	}

	if gp.done() {
		err = lex.At(gp.after(), ErrClosureUnclosed("end of file"))
		return
	}
	if end := gp.chop(); !end.Is(lex.KIND_PUNCT, ")") {
		err = lex.At(end.Location, ErrClosureUnclosed(end.Source()))
		return
	}

	node = lex.NewClosure(lhs, op, rhs, open.Location)
	return
}
