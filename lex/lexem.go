// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lex

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the lexical class of a lexem.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_IDENT    = Kind(0) // ident
	KIND_PUNCT    = Kind(1) // punct
	KIND_NUMBER   = Kind(2) // number
	KIND_STRING   = Kind(3) // string
	KIND_OPERATOR = Kind(4) // operator
	KIND_CLOSURE  = Kind(5) // closure
	KIND_NEWLINE  = Kind(6) // newline
)

// Location is a position in a source file. Rows and columns start at 1.
type Location struct {
	File string // Source file name.
	Row  int    // Line number.
	Col  int    // Column, in runes.
}

func (loc Location) String() string {
	if len(loc.File) == 0 {
		return fmt.Sprintf("%d:%d", loc.Row, loc.Col)
	}
	return fmt.Sprintf("%v:%d:%d", loc.File, loc.Row, loc.Col)
}

// Lexem is a classified piece of source text.
type Lexem struct {
	Value    string  // Text; digits only for numbers, unescaped for strings.
	Kind     Kind    // Lexical class.
	Radix    int     // Radix of a KIND_NUMBER: 2, 10 or 16.
	Args     []Lexem // KIND_CLOSURE children: lhs, operator, rhs.
	Span     int     // Source runes scanned; zero for synthesized lexems.
	Location         // Where the lexem starts.
}

// NewNumber makes a decimal number lexem.
func NewNumber(value uint64, loc Location) Lexem {
	return Lexem{
		Value:    strconv.FormatUint(value, 10),
		Kind:     KIND_NUMBER,
		Radix:    10,
		Location: loc,
	}
}

// NewClosure makes a parenthesized (lhs op rhs) expression node.
func NewClosure(lhs, op, rhs Lexem, loc Location) Lexem {
	return Lexem{
		Value:    "(",
		Kind:     KIND_CLOSURE,
		Args:     []Lexem{lhs, op, rhs},
		Location: loc,
	}
}

// Is returns true if the lexem is of the kind and has the value.
func (lx Lexem) Is(kind Kind, value string) bool {
	return lx.Kind == kind && lx.Value == value
}

// IsLocal returns true for identifiers naming a sub-label.
func (lx Lexem) IsLocal() bool {
	return lx.Kind == KIND_IDENT && strings.HasPrefix(lx.Value, ".")
}

// Clone returns a deep copy of the lexem.
func (lx Lexem) Clone() Lexem {
	if lx.Args != nil {
		args := make([]Lexem, len(lx.Args))
		for n, arg := range lx.Args {
			args[n] = arg.Clone()
		}
		lx.Args = args
	}
	return lx
}

// Uint64 returns the value of a number lexem.
func (lx Lexem) Uint64() (value uint64, err error) {
	if lx.Kind != KIND_NUMBER {
		err = At(lx.Location, ErrNumberExpected(lx.Kind))
		return
	}

	value, err = strconv.ParseUint(lx.Value, lx.Radix, 64)
	if err != nil {
		err = At(lx.Location, ErrNumberRange(lx.Source()))
		return
	}

	return
}

// Source renders the lexem the way it could be written in source text.
func (lx Lexem) Source() string {
	switch lx.Kind {
	case KIND_NUMBER:
		switch lx.Radix {
		case 16:
			return "0x" + lx.Value
		case 2:
			return "0b" + lx.Value
		}
	case KIND_STRING:
		return strconv.Quote(lx.Value)
	case KIND_NEWLINE:
		return "\\n"
	case KIND_CLOSURE:
		if len(lx.Args) == 3 {
			return fmt.Sprintf("(%v %v %v)", lx.Args[0].Source(), lx.Args[1].Source(), lx.Args[2].Source())
		}
	}
	return lx.Value
}

func (lx Lexem) String() string {
	return lx.Source()
}
