package codegen

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/bitasm/lex"
)

// Record describes the bytes emitted for one statement.
type Record struct {
	lex.Location        // Statement location.
	Mnemonic     string // Lower case mnemonic.
	Text         string // Resolved statement text.
	Offset       int    // Offset of the first byte in the image.
	Size         int    // Number of bytes emitted.
}

// Image is an assembled binary.
type Image struct {
	Bytes   []byte
	Records []Record
}

// Debug is the statement that emitted a byte.
type Debug struct {
	*Record
	Index int // Index of the byte within the record.
}

// Debug finds the statement that emitted the byte at offset.
func (img *Image) Debug(offset int) (dbg Debug) {
	for n, rec := range img.Records {
		if offset >= rec.Offset && offset < rec.Offset+rec.Size {
			dbg = Debug{
				Record: &img.Records[n],
				Index:  offset - rec.Offset,
			}
			break
		}
	}

	return
}

// Code iterates over the bytes of each statement.
func (img *Image) Code() iter.Seq2[*Record, []byte] {
	return func(yield func(rec *Record, code []byte) bool) {
		for n := range img.Records {
			rec := &img.Records[n]
			if !yield(rec, img.Bytes[rec.Offset:rec.Offset+rec.Size]) {
				return
			}
		}
	}
}

// WriteListing writes one line per statement: offset, bytes, location and
// resolved text.
func (img *Image) WriteListing(w io.Writer) (err error) {
	for rec, code := range img.Code() {
		_, err = fmt.Fprintf(w, "%04x  %-24s %v\t%v\n", rec.Offset, fmt.Sprintf("% x", code), rec.Location, rec.Text)
		if err != nil {
			return
		}
	}
	return
}
