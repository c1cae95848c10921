package isa

import (
	"errors"

	"github.com/ezrec/bitasm/translate"
)

var f = translate.From

var (
	// Template errors
	ErrFieldTypeMissing = errors.New(f("field type missing"))
	ErrFieldWidth       = errors.New(f("field width missing or zero"))
	ErrFieldUnclosed    = errors.New(f("expected closing '}'"))
)

type ErrTagUnknown string

func (err ErrTagUnknown) Error() string {
	return f("unknown type %v", string(err))
}

type ErrSymbolUnknown struct {
	Tag    string
	Symbol string
}

func (err ErrSymbolUnknown) Error() string {
	return f("type %v doesn't have %v", err.Tag, err.Symbol)
}

type ErrTemplateCharacter rune

func (err ErrTemplateCharacter) Error() string {
	return f("unknown character %q", rune(err))
}

type ErrTemplate struct {
	Mnemonic string
	Template string
	Err      error
}

func (err *ErrTemplate) Error() string {
	return f("instruction %v \"%v\": %v", err.Mnemonic, err.Template, err.Err)
}

func (err *ErrTemplate) Unwrap() error {
	return err.Err
}

type ErrInstructionUnknown string

func (err ErrInstructionUnknown) Error() string {
	return f("unknown instruction %v", string(err))
}

type ErrInstructionDuplicate string

func (err ErrInstructionDuplicate) Error() string {
	return f("instruction %v duplicated", string(err))
}

type ErrInstructionReserved string

func (err ErrInstructionReserved) Error() string {
	return f("instruction %v is a directive", string(err))
}

type ErrBitsTooMany int

func (err ErrBitsTooMany) Error() string {
	return f("encoding of %d bits is too big", int(err))
}

type ErrConfigFormat string

func (err ErrConfigFormat) Error() string {
	return f("unknown instruction set file type '%v'", string(err))
}

type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("'%v' missing or not a dict", string(err))
}

type ErrConfigValue struct {
	Key  string
	Name string
}

func (err ErrConfigValue) Error() string {
	return f("%v: bad entry %v", err.Key, err.Name)
}
