// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lex

import (
	"strings"
	"unicode"
)

const (
	PUNCTUATION = ",:()" // Single character punctuation.
	COMMENT     = "//"   // Comment to end of line.
)

// OPERATORS in match priority order; two character operators come first.
var OPERATORS = []string{"<<", ">>", "+", "-", "*", "/", "&", "|", "^"}

// Lexer is a single pass scanner over one source text.
type Lexer struct {
	file   string
	text   []rune
	cursor int
	row    int
	col    int

	Lexems []Lexem // Lexems scanned so far.
}

// Lex scans the content of a source file into lexems.
func Lex(file string, content string) (lexems []Lexem, err error) {
	lx := &Lexer{}
	err = lx.Lex(file, content)
	if err != nil {
		return
	}

	lexems = lx.Lexems
	return
}

// Lex resets the lexer and scans content. End of input stops the scan; no
// trailing newline is synthesized.
func (lx *Lexer) Lex(file string, content string) (err error) {
	lx.file = file
	lx.text = []rune(content)
	lx.cursor = 0
	lx.row = 1
	lx.col = 1
	lx.Lexems = lx.Lexems[:0]

	for !lx.done() {
		err = lx.next()
		if err != nil {
			return
		}
	}

	return
}

func (lx *Lexer) done() bool {
	return lx.cursor >= len(lx.text)
}

func (lx *Lexer) peek(ahead int) (r rune, ok bool) {
	n := lx.cursor + ahead
	if n >= len(lx.text) {
		return
	}
	return lx.text[n], true
}

func (lx *Lexer) chop() (r rune) {
	r = lx.text[lx.cursor]
	lx.cursor++
	lx.col++
	if r == '\n' {
		lx.row++
		lx.col = 1
	}
	return
}

func (lx *Lexer) here() Location {
	return Location{File: lx.file, Row: lx.row, Col: lx.col}
}

func (lx *Lexer) emit(value string, kind Kind, loc Location) {
	lx.Lexems = append(lx.Lexems, Lexem{Value: value, Kind: kind, Location: loc})
}

func (lx *Lexer) skipSpace() {
	for r, ok := lx.peek(0); ok && r != '\n' && unicode.IsSpace(r); r, ok = lx.peek(0) {
		lx.chop()
	}
}

// skipComment drops a comment, leaving the newline that ends it.
func (lx *Lexer) skipComment() bool {
	if !lx.hasPrefix(COMMENT) {
		return false
	}
	for r, ok := lx.peek(0); ok && r != '\n'; r, ok = lx.peek(0) {
		lx.chop()
	}
	return true
}

func (lx *Lexer) hasPrefix(pattern string) bool {
	for n, r := range []rune(pattern) {
		got, ok := lx.peek(n)
		if !ok || got != r {
			return false
		}
	}
	return true
}

// next scans at most one lexem.
func (lx *Lexer) next() (err error) {
	lx.skipSpace()
	if lx.skipComment() || lx.done() {
		return
	}

	loc := lx.here()
	r, _ := lx.peek(0)

	start, count := lx.cursor, len(lx.Lexems)
	defer func() {
		if err == nil && len(lx.Lexems) > count {
			lx.Lexems[len(lx.Lexems)-1].Span = lx.cursor - start
		}
	}()

	switch {
	case r == '\n':
		lx.chop()
		lx.emit("\n", KIND_NEWLINE, loc)
		return
	case strings.ContainsRune(PUNCTUATION, r):
		lx.chop()
		lx.emit(string(r), KIND_PUNCT, loc)
		return
	}

	for _, op := range OPERATORS {
		if lx.hasPrefix(op) {
			for range len(op) {
				lx.chop()
			}
			lx.emit(op, KIND_OPERATOR, loc)
			return
		}
	}

	switch {
	case r == '"' || r == '\'':
		return lx.scanString(loc)
	case isWordRune(r):
		return lx.scanWord(loc)
	}

	return At(loc, ErrCharacterUnexpected(r))
}

// scanString scans a quoted literal, ended by its opening quote character.
func (lx *Lexer) scanString(loc Location) (err error) {
	quote := lx.chop()

	var value strings.Builder
	for {
		r, ok := lx.peek(0)
		if !ok {
			return At(loc, ErrStringUnterminated)
		}

		if r == quote {
			lx.chop()
			break
		}

		if r != '\\' {
			value.WriteRune(lx.chop())
			continue
		}

		escape := lx.here()
		lx.chop()
		r, ok = lx.peek(0)
		if !ok {
			return At(loc, ErrStringUnterminated)
		}
		lx.chop()

		switch r {
		case 'n':
			value.WriteRune('\n')
		case '0':
			value.WriteRune(0)
		case '\\', '"', '\'':
			value.WriteRune(r)
		default:
			return At(escape, ErrStringEscape(r))
		}
	}

	lx.emit(value.String(), KIND_STRING, loc)
	return
}

func isWordRune(r rune) bool {
	return r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// scanWord scans an identifier or a number.
func (lx *Lexer) scanWord(loc Location) (err error) {
	start := lx.cursor
	for r, ok := lx.peek(0); ok && isWordRune(r); r, ok = lx.peek(0) {
		lx.chop()
	}
	word := lx.text[start:lx.cursor]

	// digits checks every rune of word from offset, reporting the exact column.
	digits := func(offset int, valid func(rune) bool, bad func(rune) error) error {
		if len(word) == offset {
			return At(loc, ErrNumberEmpty)
		}
		for n, r := range word[offset:] {
			if !valid(r) {
				at := loc
				at.Col += offset + n
				return At(at, bad(r))
			}
		}
		return nil
	}

	switch {
	case hasRunePrefix(word, "0x"):
		err = digits(2, isHexDigit, func(r rune) error { return ErrDigitHex(r) })
		if err != nil {
			return
		}
		lx.Lexems = append(lx.Lexems, Lexem{Value: string(word[2:]), Kind: KIND_NUMBER, Radix: 16, Location: loc})
	case hasRunePrefix(word, "0b"):
		err = digits(2, func(r rune) bool { return r == '0' || r == '1' }, func(r rune) error { return ErrDigitBinary(r) })
		if err != nil {
			return
		}
		lx.Lexems = append(lx.Lexems, Lexem{Value: string(word[2:]), Kind: KIND_NUMBER, Radix: 2, Location: loc})
	case unicode.IsDigit(word[0]):
		err = digits(0, func(r rune) bool { return r >= '0' && r <= '9' }, func(r rune) error { return ErrDigitDecimal(r) })
		if err != nil {
			return
		}
		lx.Lexems = append(lx.Lexems, Lexem{Value: string(word), Kind: KIND_NUMBER, Radix: 10, Location: loc})
	default:
		lx.emit(string(word), KIND_IDENT, loc)
	}

	return
}

func hasRunePrefix(word []rune, prefix string) bool {
	return strings.HasPrefix(string(word), prefix)
}
