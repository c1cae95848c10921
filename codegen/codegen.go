// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package codegen

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/bitasm/isa"
	"github.com/ezrec/bitasm/lex"
	"github.com/ezrec/bitasm/resolver"
)

// Generator encodes resolved instructions.
type Generator struct {
	Verbose bool     // If set, logs every emitted statement.
	Set     *isa.Set // Instruction set to encode with.
}

// Generate encodes the tokens in order into a single image.
func (gen *Generator) Generate(tokens []resolver.Token) (img *Image, err error) {
	img = &Image{}

	for _, tok := range tokens {
		var code []byte
		code, err = gen.Encode(tok)
		if err != nil {
			return nil, err
		}

		rec := Record{
			Location: tok.Name.Location,
			Mnemonic: tok.Mnemonic(),
			Text:     tok.String(),
			Offset:   len(img.Bytes),
			Size:     len(code),
		}
		if gen.Verbose {
			logrus.WithFields(logrus.Fields{
				"offset":   fmt.Sprintf("%#04x", rec.Offset),
				"location": rec.Location,
			}).Debugf("% x\t%v", code, rec.Text)
		}

		img.Records = append(img.Records, rec)
		img.Bytes = append(img.Bytes, code...)
	}

	return
}

// Encode returns the bytes for a single resolved instruction.
func (gen *Generator) Encode(tok resolver.Token) (code []byte, err error) {
	if tok.Kind != resolver.TOKEN_INSTRUCTION {
		err = lex.At(tok.Name.Location, resolver.ErrTokenUnexpected(tok.String()))
		return
	}

	mnemonic := tok.Mnemonic()
	if data, ok := isa.DataDirective(mnemonic); ok {
		return Data(data, tok)
	}
	if mnemonic == isa.DIRECTIVE_ORG {
		err = lex.At(tok.Name.Location, ErrDirectiveUnresolved(mnemonic))
		return
	}

	ins, ok := gen.Set.Instruction(mnemonic)
	if !ok {
		err = lex.At(tok.Name.Location, isa.ErrInstructionUnknown(mnemonic))
		return
	}

	text, err := gen.encodeFields(ins, tok)
	if err != nil {
		return
	}

	code, err = Pack(text)
	if err != nil {
		err = lex.At(tok.Name.Location, err)
		return
	}

	return
}

// encodeFields walks the instruction fields, consuming arguments left to right.
func (gen *Generator) encodeFields(ins *isa.Instruction, tok resolver.Token) (text string, err error) {
	var out strings.Builder

	args := tok.Args
	for _, field := range ins.Fields {
		var value uint64
		switch field.Kind {
		case isa.FIELD_CONST:
			out.WriteString(field.Bits)
			continue
		case isa.FIELD_TYPE:
			if len(args) == 0 {
				err = lex.At(tok.Name.Location, ErrArgumentMissing)
				return
			}
			arg := args[0]
			args = args[1:]
			if arg.Kind != lex.KIND_IDENT {
				err = lex.At(arg.Location, ErrIdentExpected(arg.Kind))
				return
			}
			value, err = gen.Set.Tables.Lookup(field.Tag, arg.Value)
			if err != nil {
				err = lex.At(arg.Location, err)
				return
			}
			if bits.Len64(value) > field.Width {
				err = lex.At(arg.Location, ErrNumberTooBig{Value: value, Width: field.Width})
				return
			}
		case isa.FIELD_IMM, isa.FIELD_EXTRA:
			if len(args) == 0 {
				if field.Kind == isa.FIELD_EXTRA {
					out.WriteString(strings.Repeat("0", field.Width))
					continue
				}
				err = lex.At(tok.Name.Location, ErrImmediateMissing)
				return
			}
			arg := args[0]
			args = args[1:]
			value, err = number(arg)
			if err != nil {
				return
			}
			if bits.Len64(value) > field.Width {
				err = lex.At(arg.Location, ErrNumberTooBig{Value: value, Width: field.Width})
				return
			}
		}

		fmt.Fprintf(&out, "%0*b", field.Width, value)
	}

	if len(args) != 0 {
		logrus.Warnf("%v: %v: %d extra arguments ignored", args[0].Location, tok.Mnemonic(), len(args))
	}

	text = out.String()
	return
}

// number is the value of a numeric argument. Identifiers left at this stage
// are undeclared labels.
func number(arg lex.Lexem) (value uint64, err error) {
	switch arg.Kind {
	case lex.KIND_NUMBER:
		return arg.Uint64()
	case lex.KIND_IDENT:
		err = lex.At(arg.Location, resolver.ErrLabelUndeclared(arg.Value))
	default:
		err = lex.At(arg.Location, ErrLexemUnexpected(arg.Kind))
	}
	return
}

// Data encodes a data directive: one big-endian unit per number, and one
// unit per character of a string.
func Data(data isa.Data, tok resolver.Token) (code []byte, err error) {
	if len(tok.Args) == 0 {
		err = lex.At(tok.Name.Location, ErrDataEmpty)
		return
	}

	for _, arg := range tok.Args {
		if arg.Kind == lex.KIND_STRING {
			for _, r := range arg.Value {
				code = appendUnit(code, uint64(r)&data.Mask, data.Width)
			}
			continue
		}

		var value uint64
		value, err = number(arg)
		if err != nil {
			return nil, err
		}
		code = appendUnit(code, value&data.Mask, data.Width)
	}

	return
}

// appendUnit appends the low width bytes of value, big-endian.
func appendUnit(code []byte, value uint64, width int) []byte {
	var unit [8]byte
	binary.BigEndian.PutUint64(unit[:], value)
	return append(code, unit[len(unit)-width:]...)
}

// Pack converts a bit string into big-endian bytes, right aligned in a
// group of 1, 2, 4 or 8 bytes.
func Pack(text string) (code []byte, err error) {
	size := len(text)
	if size == 0 {
		return
	}
	group := isa.GroupSize(size)
	if group == 0 {
		err = ErrBitsTooBig(size)
		return
	}
	if size%8 != 0 {
		err = ErrBitsAlignment(size)
		return
	}

	value, err := strconv.ParseUint(text, 2, 64)
	if err != nil {
		return
	}

	code = appendUnit(nil, value, group)
	return
}
