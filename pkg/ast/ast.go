// Package ast defines the document tree produced by the parser.
//
// Name-like fields are stored as ByteSlice values. By default these alias
// the source buffer handed to the parser, which is retained on the Document
// so the slices stay valid. Parsing with owned text copies every slice out
// of the source buffer instead.
package ast

import "bytes"

// ByteSlice is a piece of source text, either borrowed from the input buffer
// or owned by the document.
type ByteSlice []byte

func (b ByteSlice) String() string {
	return string(b)
}

func (b ByteSlice) Equals(another ByteSlice) bool {
	return bytes.Equal(b, another)
}

func (b ByteSlice) Clone() ByteSlice {
	if b == nil {
		return nil
	}
	out := make(ByteSlice, len(b))
	copy(out, b)
	return out
}

// Document is a parsed executable document or type system document.
type Document struct {
	Definitions []Definition
	// Input is the source buffer the definitions may borrow text from.
	// It is nil when the document owns its text.
	Input []byte
}

// Definition is a top level entry of a Document.
type Definition interface {
	definitionNode()
}
