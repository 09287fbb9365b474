// Package lexer turns GraphQL source text into tokens.
//
// The lexer never copies source text. Token literals are slices of the input
// buffer, and positions are tracked as 1-based line/column pairs. A single
// token lookahead is memoized so that Peek followed by Read scans each token
// exactly once.
package lexer

import (
	"bytes"
	"unicode/utf8"

	"github.com/gqlkit/graphql-syntax/pkg/lexer/position"
	"github.com/gqlkit/graphql-syntax/pkg/lexer/runes"
	"github.com/gqlkit/graphql-syntax/pkg/lexer/token"
)

// Lexer scans the input byte slice into tokens. Use SetInput to (re)set the
// input, it resets all internal state.
type Lexer struct {
	input        []byte
	off          int
	textPosition position.Position
	next         nextState
}

// nextState memoizes the most recently scanned token together with the lexer
// state before and after it, so re-reading from the same offset is free.
type nextState struct {
	valid bool
	at    int
	tok   token.Token
	off   int
	pos   position.Position
}

// Checkpoint captures the lexer state so a caller can speculatively read
// tokens and rewind with Reset.
type Checkpoint struct {
	off          int
	textPosition position.Position
}

// SetInput sets the raw input and resets the lexer. Leading ignored
// characters are consumed immediately so that Offset points at the first
// token right away.
func (l *Lexer) SetInput(input []byte) {
	l.input = input
	l.off = 0
	l.textPosition = position.Position{Line: 1, Column: 1}
	l.next = nextState{}
	l.skipIgnored()
}

// Offset returns the byte offset of the next token in the input. Because
// ignored characters are consumed eagerly after each token, the remainder
// input[Offset():] starts exactly at the next token.
func (l *Lexer) Offset() int {
	return l.off
}

// Checkpoint captures the current state for a later Reset.
func (l *Lexer) Checkpoint() Checkpoint {
	return Checkpoint{
		off:          l.off,
		textPosition: l.textPosition,
	}
}

// Reset rewinds the lexer to a previously captured Checkpoint.
func (l *Lexer) Reset(c Checkpoint) {
	l.off = c.off
	l.textPosition = c.textPosition
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (token.Token, error) {
	c := l.Checkpoint()
	tok, err := l.Read()
	l.Reset(c)
	return tok, err
}

// Read scans and consumes the next token. At the end of the input it returns
// a token of kind EOF. On a scan error the lexer state is unchanged, so the
// error is returned again on every subsequent Read.
func (l *Lexer) Read() (token.Token, error) {
	if l.next.valid && l.next.at == l.off {
		l.off = l.next.off
		l.textPosition = l.next.pos
		return l.next.tok, nil
	}

	at := l.off
	tokenPosition := l.textPosition

	kind, length, err := l.scanToken()
	if err != nil {
		return token.Token{TextPosition: tokenPosition}, err
	}

	tok := token.Token{
		Kind:         kind,
		Literal:      l.input[l.off-length : l.off],
		TextPosition: tokenPosition,
	}

	l.skipIgnored()
	l.next = nextState{
		valid: true,
		at:    at,
		tok:   tok,
		off:   l.off,
		pos:   l.textPosition,
	}
	return tok, nil
}

// scanToken classifies and consumes exactly one token, advancing the offset
// and the text position. It returns the token kind and the token length in
// bytes. On error nothing is consumed.
func (l *Lexer) scanToken() (token.Kind, int, error) {
	if l.off >= len(l.input) {
		return token.EOF, 0, nil
	}

	c := l.input[l.off]
	switch {
	case isPunctuator(c):
		l.off++
		l.textPosition.Column++
		return token.Punctuator, 1, nil
	case c == runes.DOT:
		return l.scanSpread()
	case isNameStart(c):
		return l.scanName()
	case c == runes.NEGATIVESIGN || isDigit(c):
		return l.scanNumber()
	case c == runes.QUOTE:
		if bytes.HasPrefix(l.input[l.off:], literalBlockQuote) {
			return l.scanBlockString()
		}
		return l.scanString()
	default:
		r, _ := utf8.DecodeRune(l.input[l.off:])
		return token.Undefined, 0, ErrUnexpectedCharacter{
			Char:     r,
			Position: l.textPosition,
		}
	}
}

func (l *Lexer) scanSpread() (token.Kind, int, error) {
	if bytes.HasPrefix(l.input[l.off:], literalSpread) {
		l.off += 3
		l.textPosition.Column += 3
		return token.Punctuator, 3, nil
	}
	return token.Undefined, 0, ErrBareDot{Position: l.textPosition}
}

func (l *Lexer) scanName() (token.Kind, int, error) {
	length := 1
	for l.off+length < len(l.input) && isNameContinue(l.input[l.off+length]) {
		length++
	}
	l.off += length
	l.textPosition.Column += uint32(length)
	return token.Name, length, nil
}

// scanNumber consumes the full numeric span up to the next delimiter and
// validates it afterwards, so that e.g. "00" or "0.bbc" produce an error for
// the whole malformed literal instead of splitting into multiple tokens.
func (l *Lexer) scanNumber() (token.Kind, int, error) {
	length := 1
	exponent := -1
	real := -1

scan:
	for l.off+length < len(l.input) {
		switch c := l.input[l.off+length]; {
		case isNumberDelimiter(c):
			break scan
		case c == runes.DOT:
			real = length
		case c == 'e' || c == 'E':
			exponent = length
		}
		length++
	}

	literal := l.input[l.off : l.off+length]
	kind := token.IntValue
	if exponent >= 0 || real >= 0 {
		kind = token.FloatValue
		if !checkFloat(literal, exponent, real) {
			return token.Undefined, 0, ErrInvalidFloat{
				Literal:  string(literal),
				Position: l.textPosition,
			}
		}
	} else if !checkInt(literal) {
		return token.Undefined, 0, ErrInvalidInteger{
			Literal:  string(literal),
			Position: l.textPosition,
		}
	}

	l.off += length
	l.textPosition.Column += uint32(length)
	return kind, length, nil
}

func (l *Lexer) scanString() (token.Kind, int, error) {
	escaped := false
	for i := l.off + 1; i < len(l.input); i++ {
		switch l.input[i] {
		case runes.QUOTE:
			if escaped {
				escaped = false
				continue
			}
			length := i + 1 - l.off
			l.textPosition.Column += uint32(utf8.RuneCount(l.input[l.off : i+1]))
			l.off = i + 1
			return token.StringValue, length, nil
		case runes.LINETERMINATOR:
			return token.Undefined, 0, ErrUnterminatedString{Position: l.textPosition}
		case runes.BACKSLASH:
			escaped = !escaped
		default:
			escaped = false
		}
	}
	return token.Undefined, 0, ErrUnterminatedString{Position: l.textPosition}
}

func (l *Lexer) scanBlockString() (token.Kind, int, error) {
	body := l.input[l.off+3:]
	from := 0
	for {
		i := bytes.Index(body[from:], literalBlockQuote)
		if i < 0 {
			return token.Undefined, 0, ErrUnterminatedBlockString{Position: l.textPosition}
		}
		i += from
		if i > 0 && body[i-1] == runes.BACKSLASH {
			from = i + 1
			continue
		}
		length := 3 + i + 3
		l.advance(length)
		return token.BlockString, length, nil
	}
}

// advance consumes n bytes, updating line and column across line terminators.
// Only block strings span lines; everything else advances the column directly.
func (l *Lexer) advance(n int) {
	span := l.input[l.off : l.off+n]
	l.off += n
	if last := bytes.LastIndexByte(span, runes.LINETERMINATOR); last >= 0 {
		l.textPosition.Line += uint32(bytes.Count(span, literalLineTerminator))
		l.textPosition.Column = uint32(utf8.RuneCount(span[last+1:])) + 1
		return
	}
	l.textPosition.Column += uint32(utf8.RuneCount(span))
}

// skipIgnored consumes whitespace, commas, comments, the byte order mark and
// bare carriage returns. A tab advances the column by 8.
func (l *Lexer) skipIgnored() {
	for l.off < len(l.input) {
		switch l.input[l.off] {
		case runes.SPACE, runes.COMMA:
			l.off++
			l.textPosition.Column++
		case runes.TAB:
			l.off++
			l.textPosition.Column += 8
		case runes.LINETERMINATOR:
			l.off++
			l.textPosition.Line++
			l.textPosition.Column = 1
		case runes.CARRIAGERETURN:
			l.off++
		case runes.HASHTAG:
			l.skipComment()
		case 0xEF:
			if bytes.HasPrefix(l.input[l.off:], literalBOM) {
				l.off += 3
				continue
			}
			return
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for l.off < len(l.input) {
		c := l.input[l.off]
		l.off++
		if c == runes.LINETERMINATOR || c == runes.CARRIAGERETURN {
			l.textPosition.Line++
			l.textPosition.Column = 1
			return
		}
	}
}

var (
	literalSpread         = []byte("...")
	literalBlockQuote     = []byte(`"""`)
	literalBOM            = []byte{0xEF, 0xBB, 0xBF}
	literalLineTerminator = []byte{runes.LINETERMINATOR}
)

func isPunctuator(c byte) bool {
	switch c {
	case runes.BANG, runes.DOLLAR, runes.COLON, runes.EQUALS, runes.AT,
		runes.PIPE,
		runes.LPAREN, runes.RPAREN,
		runes.LBRACK, runes.RBRACK,
		runes.LBRACE, runes.RBRACE:
		return true
	}
	return false
}

func isNameStart(c byte) bool {
	return c == runes.UNDERSCORE || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isNumberDelimiter reports whether c terminates a numeric literal. Anything
// else, letters included, stays part of the span and fails validation.
func isNumberDelimiter(c byte) bool {
	switch c {
	case runes.SPACE, runes.LINETERMINATOR, runes.CARRIAGERETURN, runes.TAB,
		runes.COMMA, runes.HASHTAG:
		return true
	}
	return isPunctuator(c)
}

// checkInt validates an integer literal: an optional minus followed by either
// a single zero or a non-zero leading digit sequence.
func checkInt(v []byte) bool {
	if len(v) == 0 {
		return false
	}
	if string(v) == "0" || string(v) == "-0" {
		return true
	}
	if v[0] == '0' || string(v) == "-" || bytes.HasPrefix(v, []byte("-0")) {
		return false
	}
	return allDigits(v[1:])
}

// checkDec validates the fraction digits after the dot: one or more digits,
// no sign.
func checkDec(v []byte) bool {
	return len(v) > 0 && allDigits(v)
}

// checkExp validates the exponent after 'e': a mandatory sign followed by
// one or more digits.
func checkExp(v []byte) bool {
	if len(v) < 2 || (v[0] != '-' && v[0] != '+') {
		return false
	}
	return allDigits(v[1:])
}

func checkFloat(v []byte, exponent, real int) bool {
	switch {
	case exponent >= 0 && real >= 0:
		if exponent < real {
			return false
		}
		return checkInt(v[:real]) && checkDec(v[real+1:exponent]) && checkExp(v[exponent+1:])
	case exponent >= 0:
		return checkInt(v[:exponent]) && checkExp(v[exponent+1:])
	default:
		return checkInt(v[:real]) && checkDec(v[real+1:])
	}
}

func allDigits(v []byte) bool {
	for _, c := range v {
		if !isDigit(c) {
			return false
		}
	}
	return true
}
