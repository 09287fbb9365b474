// Package astprinter renders an ast.Document back to GraphQL source text.
//
// Output is canonical: parsing the printed text and printing it again yields
// the same bytes. The Style controls indentation width and whether argument
// lists print one argument per line.
package astprinter

import (
	"io"
	"strconv"
	"strings"

	"github.com/gqlkit/graphql-syntax/pkg/ast"
	"github.com/gqlkit/graphql-syntax/pkg/quotes"
)

// Style configures the formatter. The zero value is not meaningful, use
// DefaultStyle as the base.
type Style struct {
	indent             uint
	multilineArguments bool
}

// DefaultStyle indents with 2 spaces and prints argument lists on one line.
func DefaultStyle() Style {
	return Style{indent: 2}
}

// WithIndent returns a copy of the style using the given number of spaces
// per indentation level.
func (s Style) WithIndent(indent uint) Style {
	s.indent = indent
	return s
}

// WithMultilineArguments returns a copy of the style printing one argument
// per line.
func (s Style) WithMultilineArguments(multiline bool) Style {
	s.multilineArguments = multiline
	return s
}

// Print renders the document with the default style.
func Print(document *ast.Document, out io.Writer) error {
	return PrintStyle(document, DefaultStyle(), out)
}

// PrintStyle renders the document with the given style.
func PrintStyle(document *ast.Document, style Style, out io.Writer) error {
	_, err := io.WriteString(out, PrintStringStyle(document, style))
	return err
}

// PrintString renders the document with the default style.
func PrintString(document *ast.Document) string {
	return PrintStringStyle(document, DefaultStyle())
}

// PrintStringStyle renders the document with the given style.
func PrintStringStyle(document *ast.Document, style Style) string {
	f := &formatter{style: style}
	for _, definition := range document.Definitions {
		f.writeDefinition(definition)
	}
	return f.buf.String()
}

// formatter is a text sink holding the current indentation level. Nodes are
// rendered through a small set of structural primitives so the per node
// methods stay short.
type formatter struct {
	buf    strings.Builder
	style  Style
	indent uint
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}

func (f *formatter) writeIndent() {
	for i := uint(0); i < f.indent; i++ {
		f.buf.WriteByte(' ')
	}
}

func (f *formatter) endline() {
	f.buf.WriteByte('\n')
}

// margin separates top level definitions with a blank line.
func (f *formatter) margin() {
	if f.buf.Len() != 0 {
		f.buf.WriteByte('\n')
	}
}

func (f *formatter) incIndent() {
	f.indent += f.style.indent
}

func (f *formatter) decIndent() {
	f.indent -= f.style.indent
}

func (f *formatter) startBlock() {
	f.buf.WriteByte('{')
	f.endline()
	f.incIndent()
}

func (f *formatter) endBlock() {
	f.decIndent()
	f.writeIndent()
	f.buf.WriteByte('}')
	f.endline()
}

func (f *formatter) startArgumentBlock(open byte) {
	f.buf.WriteByte(open)
	if f.style.multilineArguments {
		f.incIndent()
	}
}

func (f *formatter) endArgumentBlock(close byte) {
	if f.style.multilineArguments {
		f.endline()
		f.decIndent()
		f.writeIndent()
	}
	f.buf.WriteByte(close)
}

func (f *formatter) startArgument() {
	if f.style.multilineArguments {
		f.endline()
		f.writeIndent()
	}
}

func (f *formatter) delineateArgument() {
	f.buf.WriteByte(',')
	if !f.style.multilineArguments {
		f.buf.WriteByte(' ')
	}
}

// writeQuoted renders s as a single line string literal unless it contains
// newlines and nothing that requires escaping, in which case the block form
// with the current indentation is used.
func (f *formatter) writeQuoted(s string) {
	hasNewline := false
	hasNonprintable := false
	for _, r := range s {
		switch r {
		case '\n':
			hasNewline = true
		case '\r', '\t':
		default:
			if r < 0x20 {
				hasNonprintable = true
			}
		}
	}
	if !hasNewline || hasNonprintable {
		f.write(quotes.Quote(s))
		return
	}

	f.write(`"""`)
	f.endline()
	f.incIndent()
	for _, line := range blockLines(s) {
		if strings.TrimSpace(line) != "" {
			f.writeIndent()
			f.write(strings.ReplaceAll(line, `"""`, `\"""`))
		}
		f.endline()
	}
	f.decIndent()
	f.writeIndent()
	f.write(`"""`)
}

// blockLines splits on '\n' without producing a final empty line for a
// trailing newline.
func blockLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && strings.HasSuffix(s, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (f *formatter) writeDefinition(definition ast.Definition) {
	switch d := definition.(type) {
	case *ast.OperationDefinition:
		f.writeOperationDefinition(d)
	case *ast.FragmentDefinition:
		f.writeFragmentDefinition(d)
	default:
		f.writeTypeSystemDefinition(definition)
	}
}

func (f *formatter) writeOperationDefinition(op *ast.OperationDefinition) {
	f.margin()
	f.writeIndent()
	if op.Shorthand {
		f.writeSelectionSet(op.SelectionSet)
		return
	}

	f.write(op.OperationType.String())
	if len(op.Name) > 0 {
		f.write(" ")
		f.write(op.Name.String())
	}
	if len(op.VariableDefinitions) > 0 {
		f.write("(")
		for i := range op.VariableDefinitions {
			if i != 0 {
				f.write(", ")
			}
			f.writeVariableDefinition(op.VariableDefinitions[i])
		}
		f.write(")")
	}
	f.writeDirectives(op.Directives)
	f.write(" ")
	f.writeSelectionSet(op.SelectionSet)
}

func (f *formatter) writeFragmentDefinition(frag *ast.FragmentDefinition) {
	f.margin()
	f.writeIndent()
	f.write("fragment ")
	f.write(frag.Name.String())
	f.write(" on ")
	f.write(frag.TypeCondition.String())
	f.writeDirectives(frag.Directives)
	f.write(" ")
	f.writeSelectionSet(frag.SelectionSet)
}

func (f *formatter) writeVariableDefinition(definition ast.VariableDefinition) {
	f.write("$")
	f.write(definition.Name.String())
	f.write(": ")
	f.writeType(definition.Type)
	if definition.DefaultValue != nil {
		f.write(" = ")
		f.writeValue(*definition.DefaultValue)
	}
}

func (f *formatter) writeSelectionSet(set *ast.SelectionSet) {
	f.startBlock()
	for _, selection := range set.Selections {
		f.writeSelection(selection)
	}
	f.endBlock()
}

func (f *formatter) writeSelection(selection ast.Selection) {
	switch s := selection.(type) {
	case *ast.Field:
		f.writeField(s)
	case *ast.FragmentSpread:
		f.writeFragmentSpread(s)
	case *ast.InlineFragment:
		f.writeInlineFragment(s)
	}
}

func (f *formatter) writeField(field *ast.Field) {
	f.writeIndent()
	if len(field.Alias) > 0 {
		f.write(field.Alias.String())
		f.write(": ")
	}
	f.write(field.Name.String())
	f.writeArguments(field.Arguments)
	f.writeDirectives(field.Directives)
	if field.SelectionSet != nil {
		f.write(" ")
		f.writeSelectionSet(field.SelectionSet)
	} else {
		f.endline()
	}
}

func (f *formatter) writeFragmentSpread(spread *ast.FragmentSpread) {
	f.writeIndent()
	f.write("...")
	f.write(spread.FragmentName.String())
	f.writeDirectives(spread.Directives)
	f.endline()
}

func (f *formatter) writeInlineFragment(fragment *ast.InlineFragment) {
	f.writeIndent()
	f.write("...")
	if len(fragment.TypeCondition) > 0 {
		f.write(" on ")
		f.write(fragment.TypeCondition.String())
	}
	f.writeDirectives(fragment.Directives)
	f.write(" ")
	f.writeSelectionSet(fragment.SelectionSet)
}

func (f *formatter) writeArguments(arguments []ast.Argument) {
	if len(arguments) == 0 {
		return
	}
	f.startArgumentBlock('(')
	for i, argument := range arguments {
		if i != 0 {
			f.delineateArgument()
		}
		f.startArgument()
		f.write(argument.Name.String())
		f.write(": ")
		f.writeValue(argument.Value)
	}
	f.endArgumentBlock(')')
}

func (f *formatter) writeDirectives(directives []ast.Directive) {
	for _, directive := range directives {
		f.write(" @")
		f.write(directive.Name.String())
		f.writeArguments(directive.Arguments)
	}
}

func (f *formatter) writeType(t ast.Type) {
	switch t.Kind {
	case ast.TypeKindNamed:
		f.write(t.Name.String())
	case ast.TypeKindList:
		f.write("[")
		f.writeType(*t.OfType)
		f.write("]")
	case ast.TypeKindNonNull:
		f.writeType(*t.OfType)
		f.write("!")
	}
}

func (f *formatter) writeValue(value ast.Value) {
	switch value.Kind {
	case ast.ValueKindVariable:
		f.write("$")
		f.write(value.Variable.String())
	case ast.ValueKindInt:
		f.write(value.Int.String())
	case ast.ValueKindFloat:
		f.write(formatFloat(value.Float))
	case ast.ValueKindString:
		f.writeQuoted(value.String)
	case ast.ValueKindBoolean:
		if value.Boolean {
			f.write("true")
		} else {
			f.write("false")
		}
	case ast.ValueKindNull:
		f.write("null")
	case ast.ValueKindEnum:
		f.write(value.Enum.String())
	case ast.ValueKindList:
		f.write("[")
		for i, item := range value.List {
			if i != 0 {
				f.write(", ")
			}
			f.writeValue(item)
		}
		f.write("]")
	case ast.ValueKindObject:
		f.write("{")
		for i, field := range value.Object.Fields() {
			if i != 0 {
				f.write(", ")
			}
			f.write(field.Name.String())
			f.write(": ")
			f.writeValue(field.Value)
		}
		f.write("}")
	}
}

// formatFloat keeps floats re-parseable as floats: the shortest 'g'
// representation gets a ".0" suffix when it carries neither a fraction nor
// an exponent.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
