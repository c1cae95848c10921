package resolver

import (
	"strings"

	"github.com/ezrec/bitasm/isa"
	"github.com/ezrec/bitasm/lex"
)

// Layout selects how the label pass sizes statements.
type Layout int

//go:generate go tool stringer -linecomment -type=Layout
const (
	LAYOUT_UNITS = Layout(0) // units
	LAYOUT_BYTES = Layout(1) // bytes
)

// ParseLayout returns the layout named by text.
func ParseLayout(text string) (layout Layout, err error) {
	switch strings.ToLower(text) {
	case LAYOUT_UNITS.String():
		layout = LAYOUT_UNITS
	case LAYOUT_BYTES.String():
		layout = LAYOUT_BYTES
	default:
		err = ErrLayoutUnknown(text)
	}
	return
}

// Sizer reports the encoded byte size of an instruction.
type Sizer interface {
	EncodedSize(mnemonic string) (size int, err error)
}

// Labels maps qualified label names to addresses.
type Labels map[string]uint64

// Qualify prefixes local labels and local identifier arguments with the name
// of the closest preceding global label.
func Qualify(tokens []Token) (out []Token) {
	out = make([]Token, len(tokens))

	scope := ""
	for n, tok := range tokens {
		tok = tok.Clone()
		switch tok.Kind {
		case TOKEN_LABEL:
			if tok.Name.IsLocal() {
				tok.Name.Value = scope + tok.Name.Value
			} else {
				scope = tok.Name.Value
			}
		case TOKEN_INSTRUCTION:
			for i, arg := range tok.Args {
				tok.Args[i] = qualify(arg, scope)
			}
		}
		out[n] = tok
	}

	return
}

func qualify(lexem lex.Lexem, scope string) lex.Lexem {
	switch lexem.Kind {
	case lex.KIND_IDENT:
		if lexem.IsLocal() {
			lexem.Value = scope + lexem.Value
		}
	case lex.KIND_CLOSURE:
		for n, arg := range lexem.Args {
			lexem.Args[n] = qualify(arg, scope)
		}
	}
	return lexem
}

// Place assigns an address to every label and removes labels and org
// directives from the stream. With LAYOUT_UNITS every instruction is one
// address unit; with LAYOUT_BYTES its encoded size is taken from sizer, or
// one byte when sizer is nil.
func Place(tokens []Token, layout Layout, sizer Sizer) (code []Token, labels Labels, err error) {
	labels = Labels{}
	code = make([]Token, 0, len(tokens))

	var origin, cursor uint64
	for _, tok := range tokens {
		if tok.Kind == TOKEN_LABEL {
			name := tok.Name.Value
			if _, dup := labels[name]; dup {
				err = lex.At(tok.Name.Location, ErrLabelDuplicate(name))
				return
			}
			labels[name] = origin + cursor
			continue
		}

		mnemonic := tok.Mnemonic()
		if mnemonic == isa.DIRECTIVE_ORG {
			origin, err = orgAddress(tok)
			if err != nil {
				return
			}
			cursor = 0
			continue
		}

		var size uint64
		size, err = statementSize(tok, layout, sizer)
		if err != nil {
			return
		}
		cursor += size
		code = append(code, tok)
	}

	return
}

func orgAddress(tok Token) (address uint64, err error) {
	if len(tok.Args) != 1 {
		err = lex.At(tok.Name.Location, ErrOrgArgument)
		return
	}
	arg := tok.Args[0]
	if arg.Kind != lex.KIND_NUMBER {
		err = lex.At(arg.Location, ErrOrgArgument)
		return
	}
	return arg.Uint64()
}

// statementSize is the address space reserved by a statement.
func statementSize(tok Token, layout Layout, sizer Sizer) (size uint64, err error) {
	mnemonic := tok.Mnemonic()

	data, ok := isa.DataDirective(mnemonic)
	if !ok || (layout == LAYOUT_UNITS && data.Width == 1) {
		if layout == LAYOUT_UNITS || sizer == nil {
			size = 1
			return
		}
		var bytes int
		bytes, err = sizer.EncodedSize(mnemonic)
		if err != nil {
			err = lex.At(tok.Name.Location, err)
			return
		}
		size = uint64(bytes)
		return
	}

	// Address units: a word is one unit.
	unit := uint64(data.Width)
	if layout == LAYOUT_UNITS {
		unit /= 2
	}

	for _, arg := range tok.Args {
		switch arg.Kind {
		case lex.KIND_IDENT, lex.KIND_NUMBER, lex.KIND_CLOSURE:
			size += unit
		case lex.KIND_STRING:
			chars := uint64(len([]rune(arg.Value)))
			if layout == LAYOUT_UNITS {
				// Every character counts twice per unit.
				size += chars * unit * 2
			} else {
				size += chars * unit
			}
		default:
			err = lex.At(arg.Location, ErrLayoutArgument(arg.Kind))
			return
		}
	}

	return
}
