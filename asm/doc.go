// Package asm runs the assembler pipeline: lexing, resolving and code
// generation, stopping at the first error.
//
// Source syntax:
//
//	label:            // a label, addressed by the layout pass
//	.local:           // a sub-label, qualified as label.local
//	org 0x100         // set the origin
//	db 1, "text"      // data: db, dw, dd and dq
//	addi (x + 1)      // instruction with a folded expression
//
// Instructions are defined by an isa.Set. Mnemonics found in its
// pseudo-instruction library are expanded before layout.
package asm
