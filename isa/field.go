// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"strings"
	"unicode"
)

// FieldKind is the type of an instruction template field.
type FieldKind int

//go:generate go tool stringer -linecomment -type=FieldKind
const (
	FIELD_CONST = FieldKind(0) // const
	FIELD_IMM   = FieldKind(1) // imm
	FIELD_TYPE  = FieldKind(2) // type
	FIELD_EXTRA = FieldKind(3) // extra
)

const (
	TAG_IMM   = "IMM" // Immediate field tag.
	TAG_EXTRA = "E"   // Optional immediate field tag.
)

// Field is one bit-width tagged part of an instruction encoding.
type Field struct {
	Kind  FieldKind
	Bits  string // FIELD_CONST literal bits.
	Tag   string // FIELD_TYPE lookup table tag.
	Width int    // Width in bits, for all but FIELD_CONST.
}

// Size is the width of the field in bits.
func (fd Field) Size() int {
	if fd.Kind == FIELD_CONST {
		return len(fd.Bits)
	}
	return fd.Width
}

func (fd Field) String() string {
	switch fd.Kind {
	case FIELD_CONST:
		return fd.Bits
	case FIELD_IMM:
		return fmt.Sprintf("{%v%d}", TAG_IMM, fd.Width)
	case FIELD_EXTRA:
		return fmt.Sprintf("{%v%d}", TAG_EXTRA, fd.Width)
	default:
		return fmt.Sprintf("{%v%d}", fd.Tag, fd.Width)
	}
}

// template is the scanner state for CompileTemplate.
type template struct {
	text   []rune
	cursor int
}

func (tp *template) done() bool {
	return tp.cursor >= len(tp.text)
}

func (tp *template) peek() rune {
	if tp.done() {
		return 0
	}
	return tp.text[tp.cursor]
}

func (tp *template) skipSpace() {
	for !tp.done() && unicode.IsSpace(tp.peek()) {
		tp.cursor++
	}
}

func (tp *template) takeWhile(fn func(rune) bool) string {
	start := tp.cursor
	for !tp.done() && fn(tp.peek()) {
		tp.cursor++
	}
	return string(tp.text[start:tp.cursor])
}

// constant gathers whitespace separated runs of 0 and 1 into one field.
func (tp *template) constant() Field {
	var bits strings.Builder
	for !tp.done() {
		r := tp.peek()
		switch {
		case r == '0' || r == '1':
			bits.WriteRune(r)
		case unicode.IsSpace(r):
		default:
			return Field{Kind: FIELD_CONST, Bits: bits.String()}
		}
		tp.cursor++
	}
	return Field{Kind: FIELD_CONST, Bits: bits.String()}
}

// group scans a {TAG N} brace group.
func (tp *template) group(tables Tables) (field Field, err error) {
	tp.cursor++ // '{'
	tp.skipSpace()
	tag := strings.ToUpper(tp.takeWhile(unicode.IsLetter))
	if len(tag) == 0 {
		err = ErrFieldTypeMissing
		return
	}

	tp.skipSpace()
	width := 0
	for _, r := range tp.takeWhile(func(r rune) bool { return r >= '0' && r <= '9' }) {
		width = width*10 + int(r-'0')
	}
	if width == 0 {
		err = ErrFieldWidth
		return
	}

	tp.skipSpace()
	if tp.peek() != '}' {
		err = ErrFieldUnclosed
		return
	}
	tp.cursor++

	switch tag {
	case TAG_IMM:
		field = Field{Kind: FIELD_IMM, Width: width}
	case TAG_EXTRA:
		field = Field{Kind: FIELD_EXTRA, Width: width}
	default:
		if !tables.Has(tag) {
			err = ErrTagUnknown(tag)
			return
		}
		field = Field{Kind: FIELD_TYPE, Tag: tag, Width: width}
	}

	return
}

// CompileTemplate compiles a bit template such as "{R4} 0 010" into fields.
func CompileTemplate(mnemonic string, text string, tables Tables) (fields []Field, err error) {
	defer func() {
		if err != nil {
			fields = nil
			err = &ErrTemplate{Mnemonic: mnemonic, Template: text, Err: err}
		}
	}()

	tp := &template{text: []rune(text)}
	for tp.skipSpace(); !tp.done(); tp.skipSpace() {
		switch r := tp.peek(); {
		case r == '0' || r == '1':
			fields = append(fields, tp.constant())
		case r == '{':
			var field Field
			field, err = tp.group(tables)
			if err != nil {
				return
			}
			fields = append(fields, field)
		default:
			err = ErrTemplateCharacter(r)
			return
		}
	}

	return
}
