// Package lex turns assembler source text into a flat sequence of lexems.
//
// A lexem is a classified piece of source text (identifier, punctuation,
// number, string, operator or newline) together with its file, row and column.
// The resolver later groups parenthesized expressions into closure lexems,
// which carry exactly three children: left operand, operator, right operand.
//
// Every located failure in the assembler pipeline is reported as an
// *ErrLocation wrapping a package sentinel or typed error.
package lex
