// Package token defines the token kinds and the token value emitted by the
// lexer.
package token

import (
	"fmt"

	"github.com/gqlkit/graphql-syntax/pkg/lexer/position"
)

// Kind classifies a token.
type Kind int

const (
	Undefined Kind = iota
	// EOF marks the end of the input. It is returned as a regular token so
	// the parser can report it like any other unexpected token.
	EOF
	Punctuator
	Name
	IntValue
	FloatValue
	StringValue
	BlockString
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Punctuator:
		return "Punctuator"
	case Name:
		return "Name"
	case IntValue:
		return "IntValue"
	case FloatValue:
		return "FloatValue"
	case StringValue:
		return "StringValue"
	case BlockString:
		return "BlockString"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see token.go)", k)
	}
}

// Token is a classified slice of the source text. Literal aliases the input
// buffer and must not outlive it; tokens are consumed by the parser as they
// are produced and never persisted.
type Token struct {
	Kind         Kind
	Literal      []byte
	TextPosition position.Position
}

func (t Token) String() string {
	return fmt.Sprintf("token:: Kind: %s, Literal: %s, Pos: %s", t.Kind, string(t.Literal), t.TextPosition)
}
