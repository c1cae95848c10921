// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package resolver

import (
	"github.com/sirupsen/logrus"

	"github.com/ezrec/bitasm/internal"
	"github.com/ezrec/bitasm/lex"
)

// Resolver turns lexems into a fully resolved instruction stream.
type Resolver struct {
	Verbose bool    // If set, logs the output of every stage.
	Library Library // Pseudo-instructions to expand.
	Layout  Layout  // Statement sizing for label addresses.
	Sizer   Sizer   // Instruction sizes for LAYOUT_BYTES.
	Labels  Labels  // Label addresses of the last Resolve.
}

// Resolve groups, expands, lays out and folds the lexems. The result holds
// only instruction tokens whose arguments are identifiers, numbers or strings.
func (rs *Resolver) Resolve(lexems []lex.Lexem) (tokens []Token, err error) {
	rs.Labels = nil

	tokens, err = Group(lexems)
	if err != nil {
		return nil, err
	}
	rs.trace("group", tokens)

	tokens, err = rs.Library.Expand(tokens)
	if err != nil {
		return nil, err
	}
	rs.trace("expand", tokens)

	tokens = Qualify(tokens)

	tokens, labels, err := Place(tokens, rs.Layout, rs.Sizer)
	if err != nil {
		return nil, err
	}
	if rs.Verbose {
		for name := range internal.SortedKeys(labels) {
			logrus.WithField("label", name).Debugf("%#x", labels[name])
		}
	}

	tokens = Substitute(tokens, labels)

	tokens, err = Fold(tokens)
	if err != nil {
		return nil, err
	}
	rs.trace("fold", tokens)

	rs.Labels = labels
	return
}

func (rs *Resolver) trace(stage string, tokens []Token) {
	if !rs.Verbose {
		return
	}
	for _, tok := range tokens {
		logrus.WithField("stage", stage).Debugf("%v: %v", tok.Name.Location, tok)
	}
}
