// Package isa compiles the instruction set description used by the assembler.
//
// An instruction set is a set of named lookup tables (register names, branch
// conditions) and a map of mnemonics to bit templates. A template such as
// "{R4} 0 010" compiles to an ordered list of fields: a 4 bit register field
// resolved through table R, then the constant bits 0010.
//
// The builtin set is available from Builtin(). Alternative sets can be
// loaded from YAML documents or Starlark programs with LoadFile().
package isa
