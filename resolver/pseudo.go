// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package resolver

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/bitasm/internal"
	"github.com/ezrec/bitasm/lex"
)

// MAX_EXPAND_DEPTH is the deepest pseudo-instruction nesting allowed.
const MAX_EXPAND_DEPTH = 64

// Pseudo is a compiled pseudo-instruction.
type Pseudo struct {
	Name    string   // Lower case mnemonic.
	Formals []string // Formal parameter names, in call order.
	Body    []Token  // Body statements.
}

// Library maps lower case mnemonics to pseudo-instructions.
type Library map[string]*Pseudo

// CompilePseudo compiles a pseudo-instruction from its header, the mnemonic
// followed by comma separated formal names, and its body source.
func CompilePseudo(header, body string) (pseudo *Pseudo, err error) {
	name, _, _ := strings.Cut(strings.TrimSpace(header), " ")
	file := "PSEUDO_" + strings.ToUpper(name)

	lexems, err := lex.Lex(file, header)
	if err != nil {
		return
	}
	tokens, err := Group(lexems)
	if err != nil {
		return
	}
	if len(tokens) != 1 || tokens[0].Kind != TOKEN_INSTRUCTION {
		err = lex.At(lex.Location{File: file, Row: 1, Col: 1}, ErrPseudoHeader)
		return
	}

	head := tokens[0]
	formals := make([]string, len(head.Args))
	for n, arg := range head.Args {
		if arg.Kind != lex.KIND_IDENT {
			err = lex.At(arg.Location, ErrPseudoFormal(arg.Source()))
			return
		}
		formals[n] = arg.Value
	}

	lexems, err = lex.Lex(file+"_BODY", body)
	if err != nil {
		return
	}
	code, err := Group(lexems)
	if err != nil {
		return
	}

	pseudo = &Pseudo{
		Name:    head.Mnemonic(),
		Formals: formals,
		Body:    code,
	}
	return
}

// CompileLibrary compiles a map of pseudo-instruction headers to bodies.
func CompileLibrary(templates map[string]string) (lib Library, err error) {
	lib = make(Library, len(templates))

	for header := range internal.SortedKeys(templates) {
		var pseudo *Pseudo
		pseudo, err = CompilePseudo(header, templates[header])
		if err != nil {
			return nil, err
		}
		if _, dup := lib[pseudo.Name]; dup {
			return nil, ErrPseudoDuplicate(pseudo.Name)
		}
		lib[pseudo.Name] = pseudo
	}

	return
}

// Bind substitutes the arguments of a call into a copy of the body. All
// formals are replaced at once, so an actual argument that happens to share
// a formal's name is never substituted again.
func (pseudo *Pseudo) Bind(call Token) (body []Token, err error) {
	if len(call.Args) < len(pseudo.Formals) {
		err = lex.At(call.Name.Location, ErrPseudoArity{
			Name: pseudo.Name,
			Want: len(pseudo.Formals),
			Got:  len(call.Args),
		})
		return
	}
	if len(call.Args) > len(pseudo.Formals) {
		logrus.Warnf("%v: %v: %d extra arguments ignored", call.Name.Location, pseudo.Name, len(call.Args)-len(pseudo.Formals))
	}

	binding := make(map[string]lex.Lexem, len(pseudo.Formals))
	for n, formal := range pseudo.Formals {
		binding[formal] = call.Args[n]
	}

	body = make([]Token, len(pseudo.Body))
	for n, tok := range pseudo.Body {
		tok = tok.Clone()
		if actual, ok := binding[tok.Name.Value]; ok {
			tok.Name.Value = actual.Value
		}
		// Expanded statements report at the call site.
		tok.Name.Location = call.Name.Location
		for i, arg := range tok.Args {
			tok.Args[i] = bind(arg, binding)
		}
		body[n] = tok
	}

	return
}

// bind replaces bound identifiers, recursing into closures.
func bind(lexem lex.Lexem, binding map[string]lex.Lexem) lex.Lexem {
	switch lexem.Kind {
	case lex.KIND_IDENT:
		if actual, ok := binding[lexem.Value]; ok {
			return actual.Clone()
		}
	case lex.KIND_CLOSURE:
		for n, arg := range lexem.Args {
			lexem.Args[n] = bind(arg, binding)
		}
	}
	return lexem
}

// Expand replaces every pseudo-instruction call with its body, depth first,
// until no call remains.
func (lib Library) Expand(tokens []Token) (out []Token, err error) {
	return lib.expand(tokens, 0)
}

func (lib Library) expand(tokens []Token, depth int) (out []Token, err error) {
	out = make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Kind == TOKEN_LABEL {
			if depth > 0 {
				err = lex.At(tok.Name.Location, ErrPseudoLabel)
				return
			}
			out = append(out, tok)
			continue
		}

		pseudo, ok := lib[tok.Mnemonic()]
		if !ok {
			out = append(out, tok)
			continue
		}

		if depth >= MAX_EXPAND_DEPTH {
			err = lex.At(tok.Name.Location, ErrPseudoRecursion)
			return
		}

		var body []Token
		body, err = pseudo.Bind(tok)
		if err != nil {
			return
		}
		body, err = lib.expand(body, depth+1)
		if err != nil {
			return
		}
		out = append(out, body...)
	}

	return
}
