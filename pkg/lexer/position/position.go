// Package position holds the source position value type attached to tokens
// and AST nodes.
package position

import "fmt"

// Position is a 1-based line/column location in the source text.
// It is advanced by the lexer and immutable once attached to a node.
type Position struct {
	Line   uint32
	Column uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Position) IsSet() bool {
	return p.Line != 0 || p.Column != 0
}
