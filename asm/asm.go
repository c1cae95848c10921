// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/bitasm/codegen"
	"github.com/ezrec/bitasm/isa"
	"github.com/ezrec/bitasm/lex"
	"github.com/ezrec/bitasm/resolver"
)

// Assembler assembles source files against one instruction set.
type Assembler struct {
	Verbose bool             // If set, verbosely logs the assembler actions.
	Layout  resolver.Layout  // Label address layout.
	Set     *isa.Set         // Instruction set.
	Library resolver.Library // Compiled pseudo-instructions of Set.
	Labels  resolver.Labels  // Labels of the last assembled file.
}

// NewAssembler compiles the pseudo-instruction library of set. A nil set
// selects the builtin instruction set.
func NewAssembler(set *isa.Set) (asm *Assembler, err error) {
	if set == nil {
		set, err = isa.Builtin()
		if err != nil {
			return
		}
	}

	lib, err := resolver.CompileLibrary(set.Pseudo)
	if err != nil {
		return
	}

	asm = &Assembler{
		Set:     set,
		Library: lib,
	}
	return
}

// Assemble reads the whole input and assembles it. No image is returned if
// any stage fails.
func (asm *Assembler) Assemble(filename string, input io.Reader) (img *codegen.Image, err error) {
	content, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.AssembleString(filename, string(content))
}

// AssembleString assembles source text.
func (asm *Assembler) AssembleString(filename string, source string) (img *codegen.Image, err error) {
	asm.Labels = nil

	lexems, err := lex.Lex(filename, source)
	if err != nil {
		return
	}
	if asm.Verbose {
		logrus.WithField("file", filename).Debugf("%d lexems", len(lexems))
	}

	rs := &resolver.Resolver{
		Verbose: asm.Verbose,
		Library: asm.Library,
		Layout:  asm.Layout,
		Sizer:   asm.Set,
	}
	tokens, err := rs.Resolve(lexems)
	if err != nil {
		return
	}

	gen := &codegen.Generator{
		Verbose: asm.Verbose,
		Set:     asm.Set,
	}
	img, err = gen.Generate(tokens)
	if err != nil {
		return
	}

	asm.Labels = rs.Labels
	return
}
