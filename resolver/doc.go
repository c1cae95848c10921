// Package resolver groups lexems into statements and resolves them into
// a plain instruction stream.
//
// The stages run in order, each over the whole output of the previous one:
// grouping, pseudo-instruction expansion, local label qualification, label
// layout, label substitution and constant folding.
package resolver
