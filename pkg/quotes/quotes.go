// Package quotes encodes and decodes GraphQL string literals.
//
// Unquote and UnquoteBlockString operate on raw token literals including
// their surrounding quotes, exactly as the lexer produces them. Quote is the
// inverse of Unquote: for any string s, Unquote([]byte(Quote(s))) == s.
package quotes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrMissingQuotes is returned when the raw literal is not wrapped in
	// single quotes.
	ErrMissingQuotes = errors.New("string literal must be wrapped in quotes")
	// ErrMissingBlockQuotes is returned when the raw literal is not wrapped
	// in triple quotes.
	ErrMissingBlockQuotes = errors.New("block string literal must be wrapped in triple quotes")
)

// ErrInvalidEscape is returned for an unknown or truncated escape sequence.
type ErrInvalidEscape struct {
	Sequence string
}

func (e ErrInvalidEscape) Error() string {
	return fmt.Sprintf("invalid escape sequence %q", e.Sequence)
}

// ErrInvalidUnicodeEscape is returned for a \u escape that is not followed by
// exactly 4 hex digits or that names an invalid code point, surrogate halves
// included.
type ErrInvalidUnicodeEscape struct {
	Sequence string
}

func (e ErrInvalidUnicodeEscape) Error() string {
	return fmt.Sprintf("invalid unicode escape %q", e.Sequence)
}

// Unquote decodes a single line string literal, raw quotes included.
//
// Supported escapes are \" \\ \/ \b \f \n \r \t and \uXXXX with exactly four
// hex digits. \uXXXX must name a valid unicode code point, so unpaired
// surrogates are rejected.
func Unquote(raw []byte) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", ErrMissingQuotes
	}
	body := string(raw[1 : len(raw)-1])
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			return "", ErrInvalidEscape{Sequence: body[i:]}
		}
		switch e := body[i+1]; e {
		case '"', '\\', '/':
			b.WriteByte(e)
			i += 2
		case 'b':
			b.WriteByte(0x08)
			i += 2
		case 'f':
			b.WriteByte(0x0C)
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			if i+6 > len(body) {
				return "", ErrInvalidUnicodeEscape{Sequence: body[i:]}
			}
			seq := body[i : i+6]
			code, err := strconv.ParseUint(seq[2:], 16, 32)
			if err != nil || !utf8.ValidRune(rune(code)) {
				return "", ErrInvalidUnicodeEscape{Sequence: seq}
			}
			b.WriteRune(rune(code))
			i += 6
		default:
			r, _ := utf8.DecodeRuneInString(body[i+1:])
			return "", ErrInvalidEscape{Sequence: "\\" + string(r)}
		}
	}
	return b.String(), nil
}

// UnquoteBlockString decodes a block string literal, raw triple quotes
// included, removing the common indentation and the leading and trailing
// blank lines.
//
// The common indentation is the minimum indent over all lines except the
// first that are not whitespace-only. The first line always keeps its
// indent, and so does any line shorter than the common indent. An escaped
// terminator \""" decodes to """.
func UnquoteBlockString(raw []byte) (string, error) {
	if len(raw) < 6 || !strings.HasPrefix(string(raw), `"""`) || !strings.HasSuffix(string(raw), `"""`) {
		return "", ErrMissingBlockQuotes
	}
	lines := splitLines(string(raw[3 : len(raw)-3]))

	commonIndent := -1
	firstNonEmpty := -1
	lastNonEmpty := 0
	for idx, line := range lines {
		indent := indentWidth(line)
		if indent == len(line) {
			continue
		}
		if firstNonEmpty < 0 {
			firstNonEmpty = idx
		}
		lastNonEmpty = idx
		if idx != 0 && (commonIndent < 0 || indent < commonIndent) {
			commonIndent = indent
		}
	}

	if firstNonEmpty < 0 {
		// Whitespace only.
		return "", nil
	}

	var b strings.Builder
	b.Grow(len(raw) - 6)
	for idx := firstNonEmpty; idx <= lastNonEmpty; idx++ {
		line := lines[idx]
		if idx != 0 && commonIndent >= 0 && len(line) >= commonIndent {
			line = line[commonIndent:]
		}
		if idx > firstNonEmpty {
			b.WriteByte('\n')
		}
		b.WriteString(strings.ReplaceAll(line, `\"""`, `"""`))
	}
	return b.String(), nil
}

// Quote encodes s as a single line string literal. Control characters encode
// as named escapes where one exists and as \uXXXX otherwise; everything else
// is written literally.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// splitLines splits on '\n' and strips one trailing '\r' per line. A single
// trailing newline does not produce a final empty line.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && strings.HasSuffix(s, "\n") {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
