package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	for _, tt := range []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `"hello world"`, "hello world"},
		{"empty", `""`, ""},
		{"escaped quote", `"foo \" bar"`, `foo " bar`},
		{"escaped backslash", `"foo \\ bar"`, `foo \ bar`},
		{"escaped slash", `"foo \/ bar"`, "foo / bar"},
		{"named escapes", `"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{"unicode tab", "\"\\u0009\"", "\t"},
		{"unicode newline", "\"\\u000A\"", "\n"},
		{"unicode carriage return", "\"\\u000D\"", "\r"},
		{"unicode space", "\"\\u0020\"", " "},
		{"unicode max bmp", "\"\\uFFFF\"", "\uFFFF"},
		{"unicode lowercase hex", "\"\\u00e9\"", "é"},
		{"unicode mixed", "\"\\u0009 hello \\u000A there\"", "\t hello \n there"},
		{"multibyte passthrough", `"héllö wörld"`, "héllö wörld"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unquote([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, tt := range []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"missing quotes", `hello`, "string literal must be wrapped in quotes"},
		{"unknown escape", `"\x"`, `invalid escape sequence "\\x"`},
		{"trailing backslash", `"abc\`, "string literal must be wrapped in quotes"},
		{"short unicode escape", "\"\\u00\"", `invalid unicode escape "\\u00"`},
		{"non hex unicode escape", "\"\\u00g0\"", `invalid unicode escape "\\u00g0"`},
		{"surrogate half", "\"\\uD800\"", `invalid unicode escape "\\uD800"`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unquote([]byte(tt.raw))
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestUnquoteBlockString(t *testing.T) {
	for _, tt := range []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "dedent and trim blank lines",
			raw:  "\"\"\"   \n\n  Hello,\n    World!\n\n  Yours,\n    GraphQL.\n\n\n\"\"\"",
			want: "Hello,\n  World!\n\nYours,\n  GraphQL.",
		},
		{
			name: "first line keeps its indent",
			raw:  "\"\"\"  first\n  second\n\"\"\"",
			want: "  first\nsecond",
		},
		{
			name: "single line",
			raw:  `"""hello world"""`,
			want: "hello world",
		},
		{
			name: "escaped terminator",
			raw:  `"""contains \""" triple quote"""`,
			want: `contains """ triple quote`,
		},
		{
			name: "empty",
			raw:  `""""""`,
			want: "",
		},
		{
			name: "whitespace only",
			raw:  "\"\"\" \n\t \n \"\"\"",
			want: "",
		},
		{
			name: "interior blank line survives",
			raw:  "\"\"\"\n  a\n\n  b\n\"\"\"",
			want: "a\n\nb",
		},
		{
			name: "line shorter than common indent is kept",
			raw:  "\"\"\"\n    a\n x\n    b\n\"\"\"",
			want: "   a\nx\n   b",
		},
		{
			name: "carriage returns stripped",
			raw:  "\"\"\"\r\n  a\r\n  b\r\n\"\"\"",
			want: "a\nb",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnquoteBlockString([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing triple quotes", func(t *testing.T) {
		_, err := UnquoteBlockString([]byte(`"hello"`))
		assert.Equal(t, ErrMissingBlockQuotes, err)
	})
}

func TestQuote(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", `"hello world"`},
		{"empty", "", `""`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"named escapes", "\r\n\t", `"\r\n\t"`},
		{"control characters", "\x01\x1f", "\"\\u0001\\u001f\""},
		{"backspace and form feed", "\b\f", "\"\\u0008\\u000c\""},
		{"multibyte literal", "héllö", `"héllö"`},
		{"astral literal", "\U0001F600", "\"\U0001F600\""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestQuoteUnquoteInverse(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		"with \"quotes\" and \\backslashes\\",
		"control \x01\x02 chars",
		"line\nbreaks\r\nand\ttabs",
		"unicode é ü \U0001F600 \uFFFF",
	} {
		got, err := Unquote([]byte(Quote(s)))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
