package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bitasm/isa"
	"github.com/ezrec/bitasm/lex"
)

func builtinLibrary(t *testing.T) Library {
	t.Helper()

	lib, err := CompileLibrary(isa.Default().Pseudo)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return lib
}

func mnemonics(tokens []Token) (names []string) {
	for _, tok := range tokens {
		names = append(names, tok.Mnemonic())
	}
	return
}

func TestCompileLibrary(t *testing.T) {
	assert := assert.New(t)

	lib := builtinLibrary(t)
	assert.Len(lib, len(isa.Default().Pseudo))

	lim := lib["lim"]
	if assert.NotNil(lim) {
		assert.Equal("lim", lim.Name)
		assert.Equal([]string{"imm"}, lim.Formals)
		assert.Len(lim.Body, 7)
		assert.Equal("PSEUDO_LIM_BODY", lim.Body[0].Name.File)
	}

	mov := lib["mov"]
	if assert.NotNil(mov) {
		assert.Equal([]string{"dest", "src"}, mov.Formals)
	}
}

func TestCompilePseudoErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := CompilePseudo("a: b", "nop")
	assert.True(errors.Is(err, ErrPseudoHeader))

	_, err = CompilePseudo("", "nop")
	assert.True(errors.Is(err, ErrPseudoHeader))

	_, err = CompilePseudo("x 1", "nop")
	assert.True(errors.Is(err, ErrPseudoFormal("1")))

	_, err = CompilePseudo("x a", "nop a,")
	assert.True(errors.Is(err, ErrArgumentMissing))

	_, err = CompileLibrary(map[string]string{"nop": "b false", "NOP": "b true"})
	assert.Equal(ErrPseudoDuplicate("nop"), err)
}

func TestExpandBuiltin(t *testing.T) {
	assert := assert.New(t)

	lib := builtinLibrary(t)

	tokens, err := lib.Expand(parse(t, "top:\nLIM 0x0F\nnop"))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]string{"top", "swa", "addi", "add", "add", "add", "add", "addi", "b"}, mnemonics(tokens))
	assert.Equal(TOKEN_LABEL, tokens[0].Kind)

	// Expanded statements carry the location of the call.
	assert.Equal(lex.Location{File: "test.s", Row: 2, Col: 1}, tokens[1].Name.Location)

	// The bound actual keeps its own location.
	imm := tokens[7].Args[0].Args[0]
	assert.Equal(lex.KIND_NUMBER, imm.Kind)
	assert.Equal(16, imm.Radix)
	assert.Equal(lex.Location{File: "test.s", Row: 2, Col: 5}, imm.Location)

	value, err := Evaluate(tokens[7].Args[0])
	assert.NoError(err)
	assert.Equal(uint64(15), value)

	value, err = Evaluate(tokens[2].Args[0])
	assert.NoError(err)
	assert.Equal(uint64(0), value)
}

func TestExpandNested(t *testing.T) {
	assert := assert.New(t)

	lib := builtinLibrary(t)

	// andi calls lim, which must see the andi argument.
	tokens, err := lib.Expand(parse(t, "andi 3"))
	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{"swa", "swa", "addi", "add", "add", "add", "add", "addi", "nand", "nand"}, mnemonics(tokens))
	assert.Equal("addi (3 & 0b00001111)", tokens[7].String())
}

func TestExpandSimultaneous(t *testing.T) {
	assert := assert.New(t)

	lib, err := CompileLibrary(map[string]string{
		"pair a, b": "dw b, (a + b)",
		"op kind":   "kind 1",
	})
	if !assert.NoError(err) {
		return
	}

	tokens, err := lib.Expand(parse(t, "pair b, a\nop swa"))
	if !assert.NoError(err) {
		return
	}
	assert.Equal("dw a, (b + a)", tokens[0].String())
	assert.Equal("swa 1", tokens[1].String())
}

func TestExpandErrors(t *testing.T) {
	assert := assert.New(t)

	lib, err := CompileLibrary(map[string]string{
		"two a, b": "dw a, b",
		"loop x":   "loop x",
		"ping":     "pong",
		"pong":     "ping",
		"bad":      "here: nop",
	})
	if !assert.NoError(err) {
		return
	}

	_, err = lib.Expand(parse(t, "two 1"))
	assert.True(errors.Is(err, ErrPseudoArity{Name: "two", Want: 2, Got: 1}), err)

	tokens, err := lib.Expand(parse(t, "two 1, 2, 3"))
	assert.NoError(err)
	assert.Equal("dw 1, 2", tokens[0].String())

	_, err = lib.Expand(parse(t, "loop 1"))
	assert.True(errors.Is(err, ErrPseudoRecursion))

	_, err = lib.Expand(parse(t, "ping"))
	assert.True(errors.Is(err, ErrPseudoRecursion))

	_, err = lib.Expand(parse(t, "\nbad"))
	assert.True(errors.Is(err, ErrPseudoLabel))
	var located *lex.ErrLocation
	if assert.True(errors.As(err, &located)) {
		assert.Equal(2, located.Row)
	}
}
