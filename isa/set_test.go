package isa

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltin(t *testing.T) {
	assert := assert.New(t)

	set, err := Builtin()
	if !assert.NoError(err) {
		return
	}

	again, err := Builtin()
	assert.NoError(err)
	assert.Same(set, again)

	for name := range set.Instructions() {
		ins, ok := set.Instruction(name)
		if assert.True(ok, name) {
			assert.Equal(8, ins.Bits(), name)
			assert.Equal(1, ins.Size(), name)
			assert.Equal(1, ins.EncodedSize(), name)
		}
	}

	ins, ok := set.Instruction("ADDI")
	if assert.True(ok) {
		assert.Equal("addi", ins.Name)
		assert.Equal([]Field{
			{Kind: FIELD_IMM, Width: 4},
			{Kind: FIELD_CONST, Bits: "0011"},
		}, ins.Fields)
	}

	v, err := set.Tables.Lookup("R", "tr2")
	assert.NoError(err)
	assert.Equal(uint64(5), v)

	v, err = set.Tables.Lookup("c", "OVERFLOW")
	assert.NoError(err)
	assert.Equal(uint64(15), v)

	assert.Contains(set.Pseudo, "lim imm")
	assert.Contains(set.Pseudo, "mov dest, src")
}

func TestSetEncodedSize(t *testing.T) {
	assert := assert.New(t)

	set, err := Compile(Config{
		Tables: map[string]map[string]uint64{"R": {"a": 1}},
		Instructions: map[string]string{
			"one":   "{R4} 0000",
			"two":   "{IMM12} 0000",
			"three": "{IMM20} 0000",
			"huge":  "{IMM64} 0000",
		},
	})
	if !assert.NoError(err) {
		return
	}

	size, err := set.EncodedSize("one")
	assert.NoError(err)
	assert.Equal(1, size)

	size, err = set.EncodedSize("two")
	assert.NoError(err)
	assert.Equal(2, size)

	// 24 bits are packed in a 32 bit group.
	size, err = set.EncodedSize("three")
	assert.NoError(err)
	assert.Equal(4, size)
	ins, _ := set.Instruction("three")
	assert.Equal(3, ins.Size())

	_, err = set.EncodedSize("huge")
	assert.Equal(ErrBitsTooMany(68), err)

	_, err = set.EncodedSize("nope")
	assert.Equal(ErrInstructionUnknown("nope"), err)
}

func TestCompileErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Compile(Config{Instructions: map[string]string{"bad": "{Q4}"}})
	assert.True(errors.Is(err, ErrTagUnknown("Q")))

	_, err = Compile(Config{Instructions: map[string]string{"db": "0000"}})
	assert.Equal(ErrInstructionReserved("db"), err)

	_, err = Compile(Config{Instructions: map[string]string{"nop": "0000", "NOP": "1111"}})
	assert.Equal(ErrInstructionDuplicate("nop"), err)
}

func TestMnemonics(t *testing.T) {
	assert := assert.New(t)

	set, err := Compile(Config{
		Instructions: map[string]string{"zz": "00000000", "aa": "11111111"},
		Pseudo:       map[string]string{"nop": "aa"},
	})
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]string{"org", "db", "dw", "dd", "dq", "aa", "zz", "nop"}, slices.Collect(set.Mnemonics()))
}

func TestGroupSize(t *testing.T) {
	assert := assert.New(t)

	table := map[int]int{0: 0, 1: 1, 8: 1, 9: 2, 16: 2, 17: 4, 32: 4, 33: 8, 64: 8, 65: 0}
	for bits, size := range table {
		assert.Equal(size, GroupSize(bits), bits)
	}
}

func TestDataDirective(t *testing.T) {
	assert := assert.New(t)

	db, ok := DataDirective("db")
	assert.True(ok)
	assert.Equal(uint64(0xffff), db.Mask)
	assert.Equal(1, db.Width)

	dq, ok := DataDirective("dq")
	assert.True(ok)
	assert.Equal(8, dq.Width)

	_, ok = DataDirective("org")
	assert.False(ok)
	assert.True(IsDirective("org"))
	assert.False(IsDirective("swa"))
}
