package isa

const (
	DIRECTIVE_ORG = "org" // Set origin.
)

// Data describes a raw data directive.
type Data struct {
	Name  string // Directive mnemonic.
	Mask  uint64 // Mask applied to numeric arguments.
	Width int    // Bytes emitted per unit.
}

// dataMap holds the data directives. db shares the 16 bit mask of dw.
var dataMap = map[string]Data{
	"db": {Name: "db", Mask: 0xffff, Width: 1},
	"dw": {Name: "dw", Mask: 0xffff, Width: 2},
	"dd": {Name: "dd", Mask: 0xffff_ffff, Width: 4},
	"dq": {Name: "dq", Mask: 0xffff_ffff_ffff_ffff, Width: 8},
}

// DataDirective returns the data directive for a lower case mnemonic.
func DataDirective(mnemonic string) (data Data, ok bool) {
	data, ok = dataMap[mnemonic]
	return
}

// Directives lists the directive mnemonics.
func Directives() []string {
	return []string{DIRECTIVE_ORG, "db", "dw", "dd", "dq"}
}

// IsDirective returns true for directive mnemonics.
func IsDirective(mnemonic string) bool {
	_, ok := dataMap[mnemonic]
	return ok || mnemonic == DIRECTIVE_ORG
}

// GroupSize is the number of bytes a bit string of the given length is
// packed into: 1, 2, 4 or 8. Zero means the bit string is too long.
func GroupSize(bits int) int {
	switch {
	case bits <= 0:
		return 0
	case bits <= 8:
		return 1
	case bits <= 16:
		return 2
	case bits <= 32:
		return 4
	case bits <= 64:
		return 8
	}
	return 0
}
