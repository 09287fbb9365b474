// Package astminify strips ignored characters from GraphQL query text.
//
// The input is re-tokenized rather than parsed, so minification works on any
// lexically valid document and preserves token text byte for byte. A single
// space is kept only between two adjacent tokens that would otherwise merge,
// which is exactly the pair of two non-punctuators.
package astminify

import (
	"fmt"
	"strings"

	"github.com/gqlkit/graphql-syntax/pkg/internal/unsafebytes"
	"github.com/gqlkit/graphql-syntax/pkg/lexer"
	"github.com/gqlkit/graphql-syntax/pkg/lexer/token"
)

// MinifyError is returned when the input cannot be tokenized.
type MinifyError struct {
	Err error
}

func (e MinifyError) Error() string {
	return fmt.Sprintf("query minify error: %s", e.Err)
}

func (e MinifyError) Unwrap() error {
	return e.Err
}

// MinifyQuery returns the query with all ignored characters removed.
func MinifyQuery(query string) (string, error) {
	return MinifyQueryBytes(unsafebytes.StringToBytes(query))
}

// MinifyQueryBytes returns the query with all ignored characters removed.
func MinifyQueryBytes(query []byte) (string, error) {
	var (
		lex lexer.Lexer
		out strings.Builder
	)
	lex.SetInput(query)
	out.Grow(len(query))

	prevIsWord := false
	for {
		tok, err := lex.Read()
		if err != nil {
			return "", MinifyError{Err: err}
		}
		if tok.Kind == token.EOF {
			return out.String(), nil
		}
		isWord := tok.Kind != token.Punctuator
		if prevIsWord && isWord {
			out.WriteByte(' ')
		}
		out.Write(tok.Literal)
		prevIsWord = isWord
	}
}
