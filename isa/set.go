// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/ezrec/bitasm/internal"
)

// Instruction is a compiled instruction template.
type Instruction struct {
	Name     string  // Lower case mnemonic.
	Template string  // Source template text.
	Fields   []Field // Compiled fields, left to right.
}

// Bits is the total width of the encoding in bits.
func (ins *Instruction) Bits() (bits int) {
	for _, field := range ins.Fields {
		bits += field.Size()
	}
	return
}

// Size is the encoding length rounded up to whole bytes.
func (ins *Instruction) Size() int {
	return (ins.Bits() + 7) / 8
}

// EncodedSize is the number of bytes the code generator emits.
func (ins *Instruction) EncodedSize() int {
	return GroupSize(ins.Bits())
}

// Set is an immutable, compiled instruction set.
type Set struct {
	Tables       Tables
	Pseudo       map[string]string // Pseudo-instruction templates, header to body.
	instructions map[string]*Instruction
}

// Compile builds an instruction set from its configuration.
func Compile(cfg Config) (set *Set, err error) {
	set = &Set{
		Tables:       normalize(cfg.Tables),
		Pseudo:       maps.Clone(cfg.Pseudo),
		instructions: make(map[string]*Instruction, len(cfg.Instructions)),
	}

	// Sorted, so the first failure is reported deterministically.
	for name := range internal.SortedKeys(cfg.Instructions) {
		text := cfg.Instructions[name]
		mnemonic := strings.ToLower(name)
		if IsDirective(mnemonic) {
			return nil, ErrInstructionReserved(mnemonic)
		}
		if _, dup := set.instructions[mnemonic]; dup {
			return nil, ErrInstructionDuplicate(mnemonic)
		}

		var fields []Field
		fields, err = CompileTemplate(mnemonic, text, set.Tables)
		if err != nil {
			return nil, err
		}

		set.instructions[mnemonic] = &Instruction{Name: mnemonic, Template: text, Fields: fields}
	}

	return
}

var builtin = sync.OnceValues(func() (*Set, error) {
	return Compile(Default())
})

// Builtin returns the compiled default instruction set.
func Builtin() (set *Set, err error) {
	return builtin()
}

// Instruction looks up a mnemonic, case insensitively.
func (set *Set) Instruction(mnemonic string) (ins *Instruction, ok bool) {
	ins, ok = set.instructions[strings.ToLower(mnemonic)]
	return
}

// EncodedSize is the number of bytes emitted for a mnemonic.
func (set *Set) EncodedSize(mnemonic string) (size int, err error) {
	ins, ok := set.Instruction(mnemonic)
	if !ok {
		err = ErrInstructionUnknown(mnemonic)
		return
	}

	size = ins.EncodedSize()
	if size == 0 {
		err = ErrBitsTooMany(ins.Bits())
	}
	return
}

// Instructions iterates over the instruction mnemonics in order.
func (set *Set) Instructions() iter.Seq[string] {
	return internal.SortedKeys(set.instructions)
}

// Mnemonics iterates over directives, instructions, then pseudo-instruction headers.
func (set *Set) Mnemonics() iter.Seq[string] {
	return internal.IterSeqConcat(
		slices.Values(Directives()),
		set.Instructions(),
		internal.SortedKeys(set.Pseudo),
	)
}
