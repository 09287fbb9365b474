package astparser

import (
	"fmt"
	"strings"

	"github.com/gqlkit/graphql-syntax/pkg/lexer/position"
	"github.com/gqlkit/graphql-syntax/pkg/lexer/token"
)

type origin struct {
	file     string
	line     int
	funcName string
}

// ErrUnexpectedToken is returned when the parser reads a token that does not
// fit the grammar. It carries the offending token, the alternatives that
// would have been accepted, and the call sites that raised it.
type ErrUnexpectedToken struct {
	Kind     token.Kind
	Literal  string
	Expected []string
	Position position.Position
	origins  []origin
}

func (e ErrUnexpectedToken) Error() string {

	origins := ""
	for _, origin := range e.origins {
		origins = origins + fmt.Sprintf("\n\t\t%s:%d\n\t\t%s", origin.file, origin.line, origin.funcName)
	}

	return fmt.Sprintf("unexpected token - kind: '%s' literal: '%s' - expected: '%s' position: '%s'%s",
		e.Kind, e.Literal, strings.Join(e.Expected, "', '"), e.Position, origins)
}

// ErrRecursionLimitExceeded is returned when nested selection sets, list or
// object values, or list types exceed the configured parsing depth.
type ErrRecursionLimitExceeded struct {
	Limit    int
	Position position.Position
}

func (e ErrRecursionLimitExceeded) Error() string {
	return fmt.Sprintf("allowed parsing depth per GraphQL document of '%d' exceeded at position '%s'", e.Limit, e.Position)
}

// ErrNumberTooLarge is returned for integer literals that do not fit int64.
type ErrNumberTooLarge struct {
	Literal  string
	Position position.Position
}

func (e ErrNumberTooLarge) Error() string {
	return fmt.Sprintf("number too large: '%s' position: '%s'", e.Literal, e.Position)
}
