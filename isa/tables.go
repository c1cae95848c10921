package isa

import (
	"strings"
)

// Table maps lower case symbol names to their values.
type Table map[string]uint64

// Tables maps upper case table tags (R, C, ...) to named lookup tables.
type Tables map[string]Table

// normalize copies tables with upper case tags and lower case symbols.
func normalize(tables map[string]map[string]uint64) (tt Tables) {
	tt = make(Tables, len(tables))
	for tag, symbols := range tables {
		table := make(Table, len(symbols))
		for symbol, value := range symbols {
			table[strings.ToLower(symbol)] = value
		}
		tt[strings.ToUpper(tag)] = table
	}
	return
}

// Has returns true if tag names a table.
func (tt Tables) Has(tag string) (ok bool) {
	_, ok = tt[strings.ToUpper(tag)]
	return
}

// Lookup resolves a symbol through the table named by tag.
func (tt Tables) Lookup(tag string, symbol string) (value uint64, err error) {
	tag = strings.ToUpper(tag)
	table, ok := tt[tag]
	if !ok {
		err = ErrTagUnknown(tag)
		return
	}

	value, ok = table[strings.ToLower(symbol)]
	if !ok {
		err = ErrSymbolUnknown{Tag: tag, Symbol: symbol}
		return
	}

	return
}
