package asm

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bitasm/codegen"
	"github.com/ezrec/bitasm/isa"
	"github.com/ezrec/bitasm/lex"
	"github.com/ezrec/bitasm/resolver"
)

func newAssembler(t *testing.T) *Assembler {
	t.Helper()

	asm, err := NewAssembler(nil)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return asm
}

func assemble(t *testing.T, source string) []byte {
	t.Helper()

	img, err := newAssembler(t).AssembleString("test.s", source)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return img.Bytes
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := newAssembler(t)
	img, err := asm.Assemble("prog.s", strings.NewReader(`
// Count down from 15.
main:
	lim 0x0F
.loop:
	swa r1
	b true
data:
	dw "ab", main.loop
`))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]byte{
		0x01, 0x03, 0x12, 0x12, 0x12, 0x12, 0xf3,
		0x11,
		0x17,
		0x00, 0x61, 0x00, 0x62, 0x00, 0x07,
	}, img.Bytes)
	assert.Equal(resolver.Labels{"main": 0, "main.loop": 7, "data": 9}, asm.Labels)

	dbg := img.Debug(8)
	if assert.NotNil(dbg.Record) {
		assert.Equal("b", dbg.Mnemonic)
		assert.Equal(lex.Location{File: "prog.s", Row: 7, Col: 2}, dbg.Location)
	}

	dbg = img.Debug(3)
	if assert.NotNil(dbg.Record) {
		assert.Equal("add", dbg.Mnemonic)
		assert.Equal(4, dbg.Row)
	}
}

func TestAssemblerPseudo(t *testing.T) {
	assert := assert.New(t)

	expanded := assemble(t, "lim 0x0F")
	manual := assemble(t, `
		swa zero
		addi 0
		add acc
		add acc
		add acc
		add acc
		addi 15
	`)
	assert.Equal([]byte{0x01, 0x03, 0x12, 0x12, 0x12, 0x12, 0xf3}, manual)
	assert.Equal(manual, expanded)

	assert.Equal([]byte{0x07}, assemble(t, "nop"))
	assert.Equal([]byte{0x11, 0x01, 0x22, 0x11}, assemble(t, "mov r1, r2"))
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	asm := newAssembler(t)
	_, err := asm.AssembleString("test.s", "org 0x10\nswa r1\nafter:\nmain:\n.loop:\nb true\n")
	if !assert.NoError(err) {
		return
	}
	assert.Equal(uint64(0x11), asm.Labels["after"])
	assert.Equal(uint64(0x11), asm.Labels["main.loop"])

	code := assemble(t, "start:\nswa r1\nswa r2\nend:\ndb (end - start)\naddi (1 + (2 * 3))")
	assert.Equal([]byte{0x11, 0x21, 0x02, 0x73}, code)
}

func TestAssemblerData(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0x00, 0x61, 0x00, 0x62}, assemble(t, `dw "ab"`))
	assert.Equal([]byte{0xff}, assemble(t, "db 0x1FF"))
	assert.Equal([]byte{0xf3}, assemble(t, "addi 15"))
}

func TestAssemblerExtraArguments(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0x11}, assemble(t, "swa r1, r2"))
	assert.Equal([]byte{0xf3}, assemble(t, "addi 15, 3"))
}

func TestAssemblerLayoutBytes(t *testing.T) {
	assert := assert.New(t)

	source := "dw 1\nswa r1\nend:\ndw end"

	asm := newAssembler(t)
	img, err := asm.AssembleString("test.s", source)
	if assert.NoError(err) {
		assert.Equal([]byte{0x00, 0x01, 0x11, 0x00, 0x02}, img.Bytes)
	}

	asm.Layout = resolver.LAYOUT_BYTES
	img, err = asm.AssembleString("test.s", source)
	if assert.NoError(err) {
		assert.Equal([]byte{0x00, 0x01, 0x11, 0x00, 0x03}, img.Bytes)
	}
}

func TestAssemblerCustomSet(t *testing.T) {
	assert := assert.New(t)

	set, err := isa.Compile(isa.Config{
		Tables:       map[string]map[string]uint64{"R": {"a": 0, "b": 1}},
		Instructions: map[string]string{"mov": "{R4} {R4}", "jmp": "{IMM12} 0001"},
		Pseudo:       map[string]string{"swap x, y": "mov x, y\nmov y, x"},
	})
	if !assert.NoError(err) {
		return
	}

	asm, err := NewAssembler(set)
	if !assert.NoError(err) {
		return
	}
	img, err := asm.AssembleString("custom.s", "swap a, b\ntop: jmp top")
	if assert.NoError(err) {
		assert.Equal([]byte{0x01, 0x10, 0x00, 0x21}, img.Bytes)
	}

	set, err = isa.Compile(isa.Config{
		Instructions: map[string]string{"nop": "0000"},
		Pseudo:       map[string]string{"bad x": "nop x,"},
	})
	if assert.NoError(err) {
		_, err = NewAssembler(set)
		assert.True(errors.Is(err, resolver.ErrArgumentMissing))
	}
}

func TestAssemblerErr(t *testing.T) {
	table := [](struct {
		source string
		err    error
		row    int
	}){
		{"foo:\nfoo:", resolver.ErrLabelDuplicate("foo"), 2},
		{"\nbogus r1", isa.ErrInstructionUnknown("bogus"), 2},
		{"addi 16", codegen.ErrNumberTooBig{Value: 16, Width: 4}, 1},
		{"addi\n", codegen.ErrImmediateMissing, 1},
		{"swa r99", isa.ErrSymbolUnknown{Tag: "R", Symbol: "r99"}, 1},
		{"b\t(here + 1)", resolver.ErrLabelUndeclared("here"), 1},
		{"\n\n\"open", lex.ErrStringUnterminated, 3},
		{"db", codegen.ErrDataEmpty, 1},
		{"lim", resolver.ErrPseudoArity{Name: "lim", Want: 1, Got: 0}, 1},
		{"swa r1 r2", resolver.ErrTokenUnexpected("r2"), 1},
	}

	asm := newAssembler(t)
	for _, entry := range table {
		t.Run(entry.source, func(t *testing.T) {
			assert := assert.New(t)

			img, err := asm.AssembleString("err.s", entry.source)
			assert.Nil(img)
			assert.Nil(asm.Labels)
			assert.True(errors.Is(err, entry.err), err)

			var located *lex.ErrLocation
			if assert.True(errors.As(err, &located)) {
				assert.Equal("err.s", located.File)
				assert.Equal(entry.row, located.Row)
			}
		})
	}
}

func TestAssemblerReadError(t *testing.T) {
	assert := assert.New(t)

	failure := errors.New("read failure")
	img, err := newAssembler(t).Assemble("broken.s", iotest.ErrReader(failure))
	assert.Nil(img)
	assert.Equal(failure, err)
}
