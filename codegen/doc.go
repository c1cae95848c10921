// Package codegen encodes resolved instructions and data directives into
// a big-endian binary image.
package codegen
