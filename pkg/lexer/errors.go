package lexer

import (
	"fmt"

	"github.com/gqlkit/graphql-syntax/pkg/lexer/position"
)

// ErrUnexpectedCharacter is returned when the scanner hits a character that
// cannot start any token.
type ErrUnexpectedCharacter struct {
	Char     rune
	Position position.Position
}

func (e ErrUnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Position)
}

// ErrUnterminatedString is returned when a single line string is not closed
// before a line terminator or the end of the input.
type ErrUnterminatedString struct {
	Position position.Position
}

func (e ErrUnterminatedString) Error() string {
	return fmt.Sprintf("unterminated string value at %s", e.Position)
}

// ErrUnterminatedBlockString is returned when a block string has no closing
// triple quote.
type ErrUnterminatedBlockString struct {
	Position position.Position
}

func (e ErrUnterminatedBlockString) Error() string {
	return fmt.Sprintf("unterminated block string value at %s", e.Position)
}

// ErrInvalidInteger is returned for numeric literals that scan as an int but
// violate the integer grammar, e.g. leading zeros or a bare minus.
type ErrInvalidInteger struct {
	Literal  string
	Position position.Position
}

func (e ErrInvalidInteger) Error() string {
	return fmt.Sprintf("unsupported integer %q at %s", e.Literal, e.Position)
}

// ErrInvalidFloat is returned for numeric literals that scan as a float but
// violate the float grammar, e.g. an exponent without a sign.
type ErrInvalidFloat struct {
	Literal  string
	Position position.Position
}

func (e ErrInvalidFloat) Error() string {
	return fmt.Sprintf("unsupported float %q at %s", e.Literal, e.Position)
}

// ErrBareDot is returned for a '.' that is not part of a '...' spread.
type ErrBareDot struct {
	Position position.Position
}

func (e ErrBareDot) Error() string {
	return fmt.Sprintf("bare dot is not supported, only \"...\" at %s", e.Position)
}
