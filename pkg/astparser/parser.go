// Package astparser turns GraphQL source text into an ast.Document.
//
// The query and schema grammars have separate entry points. A Parser may be
// reused across parses but is not safe for concurrent use; the package level
// functions construct a fresh default Parser per call.
package astparser

import (
	"errors"
	"runtime"
	"strconv"

	"github.com/gqlkit/graphql-syntax/pkg/ast"
	"github.com/gqlkit/graphql-syntax/pkg/internal/unsafebytes"
	"github.com/gqlkit/graphql-syntax/pkg/lexer"
	"github.com/gqlkit/graphql-syntax/pkg/lexer/position"
	"github.com/gqlkit/graphql-syntax/pkg/lexer/token"
	"github.com/gqlkit/graphql-syntax/pkg/quotes"
)

// DefaultRecursionLimit bounds nested selection sets, list and object
// values, and list types. The document itself counts as depth 1.
const DefaultRecursionLimit = 50

type Option func(*Parser)

// WithOwnedText makes the parser copy every piece of text out of the source
// buffer, so the document does not keep the input alive.
func WithOwnedText() Option {
	return func(p *Parser) {
		p.ownedText = true
	}
}

// WithRecursionLimit overrides DefaultRecursionLimit.
func WithRecursionLimit(limit int) Option {
	return func(p *Parser) {
		p.limit = limit
	}
}

type Parser struct {
	lexer     *lexer.Lexer
	ownedText bool
	limit     int
	depth     int
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		lexer: &lexer.Lexer{},
		limit: DefaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseQueryString parses an executable document.
func ParseQueryString(input string) (*ast.Document, error) {
	return NewParser().ParseQueryString(input)
}

// ParseQueryBytes parses an executable document.
func ParseQueryBytes(input []byte) (*ast.Document, error) {
	return NewParser().ParseQueryBytes(input)
}

// ParseSchemaString parses a type system document.
func ParseSchemaString(input string) (*ast.Document, error) {
	return NewParser().ParseSchemaString(input)
}

// ParseSchemaBytes parses a type system document.
func ParseSchemaBytes(input []byte) (*ast.Document, error) {
	return NewParser().ParseSchemaBytes(input)
}

// ConsumeDefinitionString parses the first executable definition and returns
// the unconsumed remainder of the input.
func ConsumeDefinitionString(input string) (ast.Definition, string, error) {
	return NewParser().ConsumeDefinitionString(input)
}

// ConsumeDefinitionBytes parses the first executable definition and returns
// the unconsumed remainder of the input.
func ConsumeDefinitionBytes(input []byte) (ast.Definition, []byte, error) {
	return NewParser().ConsumeDefinitionBytes(input)
}

func (p *Parser) ParseQueryString(input string) (*ast.Document, error) {
	return p.ParseQueryBytes(unsafebytes.StringToBytes(input))
}

func (p *Parser) ParseQueryBytes(input []byte) (*ast.Document, error) {
	p.start(input)
	var definitions []ast.Definition
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			if len(definitions) == 0 {
				tok, _ = p.read()
				return nil, p.errUnexpectedToken(tok, "{", "query", "mutation", "subscription", "fragment")
			}
			return p.finishDocument(definitions, input), nil
		}
		definition, err := p.parseExecutableDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}
}

func (p *Parser) ConsumeDefinitionString(input string) (ast.Definition, string, error) {
	definition, remainder, err := p.ConsumeDefinitionBytes(unsafebytes.StringToBytes(input))
	if err != nil {
		return nil, "", err
	}
	return definition, unsafebytes.BytesToString(remainder), nil
}

func (p *Parser) ConsumeDefinitionBytes(input []byte) (ast.Definition, []byte, error) {
	p.start(input)
	definition, err := p.parseExecutableDefinition()
	if err != nil {
		return nil, nil, err
	}
	return definition, input[p.lexer.Offset():], nil
}

func (p *Parser) start(input []byte) {
	p.lexer.SetInput(input)
	p.depth = 1
}

func (p *Parser) finishDocument(definitions []ast.Definition, input []byte) *ast.Document {
	doc := &ast.Document{Definitions: definitions}
	if !p.ownedText {
		doc.Input = input
	}
	return doc
}

func (p *Parser) read() (token.Token, error) {
	return p.lexer.Read()
}

func (p *Parser) peek() (token.Token, error) {
	return p.lexer.Peek()
}

func (p *Parser) text(b []byte) ast.ByteSlice {
	if p.ownedText {
		return ast.ByteSlice(b).Clone()
	}
	return ast.ByteSlice(b)
}

func (p *Parser) enterDepth(pos position.Position) error {
	if p.depth >= p.limit {
		return ErrRecursionLimitExceeded{Limit: p.limit, Position: pos}
	}
	p.depth++
	return nil
}

func (p *Parser) leaveDepth() {
	p.depth--
}

func isPunct(tok token.Token, literal string) bool {
	return tok.Kind == token.Punctuator && string(tok.Literal) == literal
}

func isName(tok token.Token, literal string) bool {
	return tok.Kind == token.Name && string(tok.Literal) == literal
}

func (p *Parser) mustReadPunct(literal string) (token.Token, error) {
	tok, err := p.read()
	if err != nil {
		return tok, err
	}
	if !isPunct(tok, literal) {
		return tok, p.errUnexpectedToken(tok, literal)
	}
	return tok, nil
}

func (p *Parser) mustReadName() (token.Token, error) {
	tok, err := p.read()
	if err != nil {
		return tok, err
	}
	if tok.Kind != token.Name {
		return tok, p.errUnexpectedToken(tok, "Name")
	}
	return tok, nil
}

func (p *Parser) mustReadKeyword(literal string) (token.Token, error) {
	tok, err := p.read()
	if err != nil {
		return tok, err
	}
	if !isName(tok, literal) {
		return tok, p.errUnexpectedToken(tok, literal)
	}
	return tok, nil
}

func (p *Parser) errUnexpectedToken(unexpected token.Token, expected ...string) error {

	origins := make([]origin, 3)
	for i := range origins {
		fpcs := make([]uintptr, 1)
		callers := runtime.Callers(2+i, fpcs)

		if callers == 0 {
			origins = origins[:i]
			break
		}

		fn := runtime.FuncForPC(fpcs[0])
		file, line := fn.FileLine(fpcs[0])

		origins[i].file = file
		origins[i].line = line
		origins[i].funcName = fn.Name()
	}

	return ErrUnexpectedToken{
		Kind:     unexpected.Kind,
		Literal:  string(unexpected.Literal),
		Expected: expected,
		Position: unexpected.TextPosition,
		origins:  origins,
	}
}

func (p *Parser) parseExecutableDefinition() (ast.Definition, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case isPunct(tok, "{"):
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Position:      selectionSet.Start,
			OperationType: ast.OperationTypeQuery,
			Shorthand:     true,
			SelectionSet:  selectionSet,
		}, nil
	case isName(tok, "query"), isName(tok, "mutation"), isName(tok, "subscription"):
		return p.parseOperationDefinition()
	case isName(tok, "fragment"):
		return p.parseFragmentDefinition()
	default:
		tok, _ = p.read()
		return nil, p.errUnexpectedToken(tok, "{", "query", "mutation", "subscription", "fragment")
	}
}

func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	operationType := ast.OperationTypeQuery
	switch string(keyword.Literal) {
	case "mutation":
		operationType = ast.OperationTypeMutation
	case "subscription":
		operationType = ast.OperationTypeSubscription
	}

	definition := &ast.OperationDefinition{
		Position:      keyword.TextPosition,
		OperationType: operationType,
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.Name {
		tok, _ = p.read()
		definition.Name = p.text(tok.Literal)
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
	}
	if isPunct(tok, "(") {
		definition.VariableDefinitions, err = p.parseVariableDefinitions()
		if err != nil {
			return nil, err
		}
	}
	definition.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	definition.SelectionSet, err = p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return definition, nil
}

func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	if _, err = p.mustReadKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.mustReadName()
	if err != nil {
		return nil, err
	}

	definition := &ast.FragmentDefinition{
		Position:      keyword.TextPosition,
		Name:          p.text(name.Literal),
		TypeCondition: p.text(typeCondition.Literal),
	}
	definition.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	definition.SelectionSet, err = p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return definition, nil
}

func (p *Parser) parseVariableDefinitions() ([]ast.VariableDefinition, error) {
	if _, err := p.mustReadPunct("("); err != nil {
		return nil, err
	}
	var definitions []ast.VariableDefinition
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if isPunct(tok, ")") {
			tok, _ = p.read()
			if len(definitions) == 0 {
				return nil, p.errUnexpectedToken(tok, "$")
			}
			return definitions, nil
		}
		definition, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}
}

func (p *Parser) parseVariableDefinition() (ast.VariableDefinition, error) {
	dollar, err := p.mustReadPunct("$")
	if err != nil {
		return ast.VariableDefinition{}, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return ast.VariableDefinition{}, err
	}
	if _, err = p.mustReadPunct(":"); err != nil {
		return ast.VariableDefinition{}, err
	}
	variableType, err := p.parseType()
	if err != nil {
		return ast.VariableDefinition{}, err
	}

	definition := ast.VariableDefinition{
		Position: dollar.TextPosition,
		Name:     p.text(name.Literal),
		Type:     variableType,
	}

	tok, err := p.peek()
	if err != nil {
		return ast.VariableDefinition{}, err
	}
	if isPunct(tok, "=") {
		p.read()
		// Default values are constant, variables are not allowed inside.
		value, err := p.parseValue(false)
		if err != nil {
			return ast.VariableDefinition{}, err
		}
		definition.DefaultValue = &value
	}
	return definition, nil
}

func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	start, err := p.mustReadPunct("{")
	if err != nil {
		return nil, err
	}
	if err = p.enterDepth(start.TextPosition); err != nil {
		return nil, err
	}
	defer p.leaveDepth()

	set := &ast.SelectionSet{Start: start.TextPosition}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if isPunct(tok, "}") {
			tok, _ = p.read()
			if len(set.Selections) == 0 {
				return nil, p.errUnexpectedToken(tok, "Name", "...")
			}
			set.End = tok.TextPosition
			return set, nil
		}
		selection, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		set.Selections = append(set.Selections, selection)
	}
}

func (p *Parser) parseSelection() (ast.Selection, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case isPunct(tok, "..."):
		return p.parseFragmentSelection()
	case tok.Kind == token.Name:
		return p.parseField()
	default:
		tok, _ = p.read()
		return nil, p.errUnexpectedToken(tok, "Name", "...")
	}
}

func (p *Parser) parseField() (*ast.Field, error) {
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	field := &ast.Field{Position: name.TextPosition}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if isPunct(tok, ":") {
		p.read()
		actual, err := p.mustReadName()
		if err != nil {
			return nil, err
		}
		field.Alias = p.text(name.Literal)
		field.Name = p.text(actual.Literal)
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
	} else {
		field.Name = p.text(name.Literal)
	}

	if isPunct(tok, "(") {
		field.Arguments, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	field.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if isPunct(tok, "{") {
		field.SelectionSet, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}
	return field, nil
}

func (p *Parser) parseFragmentSelection() (ast.Selection, error) {
	spread, err := p.read()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Kind == token.Name && !isName(tok, "on") {
		name, _ := p.read()
		fragmentSpread := &ast.FragmentSpread{
			Position:     spread.TextPosition,
			FragmentName: p.text(name.Literal),
		}
		fragmentSpread.Directives, err = p.parseDirectives()
		if err != nil {
			return nil, err
		}
		return fragmentSpread, nil
	}

	inlineFragment := &ast.InlineFragment{Position: spread.TextPosition}
	if isName(tok, "on") {
		p.read()
		typeCondition, err := p.mustReadName()
		if err != nil {
			return nil, err
		}
		inlineFragment.TypeCondition = p.text(typeCondition.Literal)
	}
	inlineFragment.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	inlineFragment.SelectionSet, err = p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return inlineFragment, nil
}

func (p *Parser) parseArguments() ([]ast.Argument, error) {
	if _, err := p.mustReadPunct("("); err != nil {
		return nil, err
	}
	var arguments []ast.Argument
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if isPunct(tok, ")") {
			tok, _ = p.read()
			if len(arguments) == 0 {
				return nil, p.errUnexpectedToken(tok, "Name")
			}
			return arguments, nil
		}
		name, err := p.mustReadName()
		if err != nil {
			return nil, err
		}
		if _, err = p.mustReadPunct(":"); err != nil {
			return nil, err
		}
		value, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, ast.Argument{
			Position: name.TextPosition,
			Name:     p.text(name.Literal),
			Value:    value,
		})
	}
}

func (p *Parser) parseDirectives() ([]ast.Directive, error) {
	var directives []ast.Directive
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !isPunct(tok, "@") {
			return directives, nil
		}
		at, _ := p.read()
		name, err := p.mustReadName()
		if err != nil {
			return nil, err
		}
		directive := ast.Directive{
			Position: at.TextPosition,
			Name:     p.text(name.Literal),
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if isPunct(tok, "(") {
			directive.Arguments, err = p.parseArguments()
			if err != nil {
				return nil, err
			}
		}
		directives = append(directives, directive)
	}
}

func valueExpectations(allowVariables bool) []string {
	expected := []string{"IntValue", "FloatValue", "StringValue", "BlockString", "Name", "[", "{"}
	if allowVariables {
		expected = append([]string{"$"}, expected...)
	}
	return expected
}

// parseValue parses an input value. Variables are only legal in non constant
// positions, so default values call it with allowVariables false.
func (p *Parser) parseValue(allowVariables bool) (ast.Value, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.Value{}, err
	}
	switch {
	case isPunct(tok, "$"):
		if !allowVariables {
			tok, _ = p.read()
			return ast.Value{}, p.errUnexpectedToken(tok, valueExpectations(false)...)
		}
		p.read()
		name, err := p.mustReadName()
		if err != nil {
			return ast.Value{}, err
		}
		return ast.Value{Kind: ast.ValueKindVariable, Variable: p.text(name.Literal)}, nil
	case tok.Kind == token.IntValue:
		tok, _ = p.read()
		i, err := unsafebytes.BytesToInt64(tok.Literal)
		if err != nil {
			return ast.Value{}, ErrNumberTooLarge{
				Literal:  string(tok.Literal),
				Position: tok.TextPosition,
			}
		}
		return ast.Value{Kind: ast.ValueKindInt, Int: ast.NumberFromInt64(i)}, nil
	case tok.Kind == token.FloatValue:
		tok, _ = p.read()
		f, err := unsafebytes.BytesToFloat64(tok.Literal)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return ast.Value{}, p.errUnexpectedToken(tok, "FloatValue")
		}
		return ast.Value{Kind: ast.ValueKindFloat, Float: f}, nil
	case tok.Kind == token.StringValue:
		tok, _ = p.read()
		s, err := quotes.Unquote(tok.Literal)
		if err != nil {
			return ast.Value{}, err
		}
		return ast.Value{Kind: ast.ValueKindString, String: s}, nil
	case tok.Kind == token.BlockString:
		tok, _ = p.read()
		s, err := quotes.UnquoteBlockString(tok.Literal)
		if err != nil {
			return ast.Value{}, err
		}
		return ast.Value{Kind: ast.ValueKindString, String: s}, nil
	case tok.Kind == token.Name:
		tok, _ = p.read()
		switch string(tok.Literal) {
		case "true":
			return ast.Value{Kind: ast.ValueKindBoolean, Boolean: true}, nil
		case "false":
			return ast.Value{Kind: ast.ValueKindBoolean}, nil
		case "null":
			return ast.Value{Kind: ast.ValueKindNull}, nil
		default:
			return ast.Value{Kind: ast.ValueKindEnum, Enum: p.text(tok.Literal)}, nil
		}
	case isPunct(tok, "["):
		return p.parseListValue(allowVariables)
	case isPunct(tok, "{"):
		return p.parseObjectValue(allowVariables)
	default:
		tok, _ = p.read()
		return ast.Value{}, p.errUnexpectedToken(tok, valueExpectations(allowVariables)...)
	}
}

func (p *Parser) parseListValue(allowVariables bool) (ast.Value, error) {
	bracket, err := p.read()
	if err != nil {
		return ast.Value{}, err
	}
	if err = p.enterDepth(bracket.TextPosition); err != nil {
		return ast.Value{}, err
	}
	defer p.leaveDepth()

	list := make([]ast.Value, 0, 4)
	for {
		tok, err := p.peek()
		if err != nil {
			return ast.Value{}, err
		}
		if isPunct(tok, "]") {
			p.read()
			return ast.Value{Kind: ast.ValueKindList, List: list}, nil
		}
		if tok.Kind == token.EOF {
			tok, _ = p.read()
			return ast.Value{}, p.errUnexpectedToken(tok, "]")
		}
		value, err := p.parseValue(allowVariables)
		if err != nil {
			return ast.Value{}, err
		}
		list = append(list, value)
	}
}

func (p *Parser) parseObjectValue(allowVariables bool) (ast.Value, error) {
	brace, err := p.read()
	if err != nil {
		return ast.Value{}, err
	}
	if err = p.enterDepth(brace.TextPosition); err != nil {
		return ast.Value{}, err
	}
	defer p.leaveDepth()

	object := &ast.ObjectValue{}
	for {
		tok, err := p.peek()
		if err != nil {
			return ast.Value{}, err
		}
		if isPunct(tok, "}") {
			p.read()
			return ast.Value{Kind: ast.ValueKindObject, Object: object}, nil
		}
		if tok.Kind != token.Name {
			tok, _ = p.read()
			return ast.Value{}, p.errUnexpectedToken(tok, "Name", "}")
		}
		name, _ := p.read()
		if _, err = p.mustReadPunct(":"); err != nil {
			return ast.Value{}, err
		}
		value, err := p.parseValue(allowVariables)
		if err != nil {
			return ast.Value{}, err
		}
		object.Set(p.text(name.Literal), value)
	}
}

func (p *Parser) parseType() (ast.Type, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.Type{}, err
	}

	var parsedType ast.Type
	switch {
	case isPunct(tok, "["):
		bracket, _ := p.read()
		if err = p.enterDepth(bracket.TextPosition); err != nil {
			return ast.Type{}, err
		}
		ofType, err := p.parseType()
		if err != nil {
			return ast.Type{}, err
		}
		if _, err = p.mustReadPunct("]"); err != nil {
			return ast.Type{}, err
		}
		p.leaveDepth()
		parsedType = ast.ListType(ofType)
	case tok.Kind == token.Name:
		tok, _ = p.read()
		parsedType = ast.NamedType(p.text(tok.Literal))
	default:
		tok, _ = p.read()
		return ast.Type{}, p.errUnexpectedToken(tok, "Name", "[")
	}

	tok, err = p.peek()
	if err != nil {
		return ast.Type{}, err
	}
	if isPunct(tok, "!") {
		p.read()
		parsedType = ast.NonNullType(parsedType)
	}
	return parsedType, nil
}
