package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bitasm/isa"
	"github.com/ezrec/bitasm/lex"
)

const resolveSource = `
	org 0x10
main:
	lim 1
.loop:
	b .loop
	dw (.loop - main)
data:
	dw "hi"
`

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	lexems, err := lex.Lex("main.s", resolveSource)
	if !assert.NoError(err) {
		return
	}

	rs := &Resolver{Library: builtinLibrary(t)}
	tokens, err := rs.Resolve(lexems)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(Labels{"main": 0x10, "main.loop": 0x17, "data": 0x19}, rs.Labels)

	assert.Len(tokens, 10)
	for _, tok := range tokens {
		assert.Equal(TOKEN_INSTRUCTION, tok.Kind)
		for _, arg := range tok.Args {
			assert.NotEqual(lex.KIND_CLOSURE, arg.Kind)
		}
	}

	assert.Equal("b 23", tokens[7].String())
	assert.Equal("dw 7", tokens[8].String())
	assert.Equal("dw \"hi\"", tokens[9].String())
}

func TestResolveBytes(t *testing.T) {
	assert := assert.New(t)

	set, err := isa.Builtin()
	if !assert.NoError(err) {
		return
	}

	lexems, err := lex.Lex("main.s", resolveSource)
	if !assert.NoError(err) {
		return
	}

	rs := &Resolver{Library: builtinLibrary(t), Layout: LAYOUT_BYTES, Sizer: set, Verbose: true}
	_, err = rs.Resolve(lexems)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(Labels{"main": 0x10, "main.loop": 0x17, "data": 0x1a}, rs.Labels)
}

func TestResolveErrors(t *testing.T) {
	table := [](struct {
		source string
		err    error
		row    int
	}){
		{"add r1 r2", ErrTokenUnexpected("r2"), 1},
		{"\nlim", ErrPseudoArity{Name: "lim", Want: 1, Got: 0}, 2},
		{"foo:\nfoo:", ErrLabelDuplicate("foo"), 2},
		{"\n\nb (nowhere + 1)", ErrLabelUndeclared("nowhere"), 3},
		{"org label", ErrOrgArgument, 1},
	}

	for _, entry := range table {
		t.Run(entry.source, func(t *testing.T) {
			assert := assert.New(t)

			lexems, err := lex.Lex("", entry.source)
			if !assert.NoError(err) {
				return
			}

			rs := &Resolver{Library: builtinLibrary(t)}
			tokens, err := rs.Resolve(lexems)
			assert.Nil(tokens)
			assert.Nil(rs.Labels)
			assert.True(errors.Is(err, entry.err), err)

			var located *lex.ErrLocation
			if assert.True(errors.As(err, &located)) {
				assert.Equal(entry.row, located.Row)
			}
		})
	}
}
