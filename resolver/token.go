// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package resolver

import (
	"strings"

	"github.com/ezrec/bitasm/lex"
)

// TokenKind is the type of a statement.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_LABEL       = TokenKind(0) // label
	TOKEN_INSTRUCTION = TokenKind(1) // instruction
)

// Token is a label definition or an instruction with its arguments.
type Token struct {
	Kind TokenKind
	Name lex.Lexem   // Label name or mnemonic.
	Args []lex.Lexem // Instruction arguments.
}

// Mnemonic is the lower case instruction name.
func (tok Token) Mnemonic() string {
	return strings.ToLower(tok.Name.Value)
}

// Clone returns a deep copy of the token.
func (tok Token) Clone() Token {
	if tok.Args != nil {
		args := make([]lex.Lexem, len(tok.Args))
		for n, arg := range tok.Args {
			args[n] = arg.Clone()
		}
		tok.Args = args
	}
	return tok
}

func (tok Token) String() string {
	if tok.Kind == TOKEN_LABEL {
		return tok.Name.Value + ":"
	}

	args := make([]string, len(tok.Args))
	for n, arg := range tok.Args {
		args[n] = arg.Source()
	}
	if len(args) == 0 {
		return tok.Name.Value
	}
	return tok.Name.Value + " " + strings.Join(args, ", ")
}

// mapArgs rewrites every argument of every instruction.
func mapArgs(tokens []Token, fn func(lex.Lexem) (lex.Lexem, error)) (out []Token, err error) {
	out = make([]Token, len(tokens))
	for n, tok := range tokens {
		out[n] = tok
		if tok.Kind != TOKEN_INSTRUCTION {
			continue
		}
		args := make([]lex.Lexem, len(tok.Args))
		for i, arg := range tok.Args {
			args[i], err = fn(arg)
			if err != nil {
				return nil, err
			}
		}
		out[n].Args = args
	}
	return
}
