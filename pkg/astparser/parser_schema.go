package astparser

import (
	"github.com/gqlkit/graphql-syntax/pkg/ast"
	"github.com/gqlkit/graphql-syntax/pkg/internal/unsafebytes"
	"github.com/gqlkit/graphql-syntax/pkg/lexer/token"
	"github.com/gqlkit/graphql-syntax/pkg/quotes"
)

func (p *Parser) ParseSchemaString(input string) (*ast.Document, error) {
	return p.ParseSchemaBytes(unsafebytes.StringToBytes(input))
}

func (p *Parser) ParseSchemaBytes(input []byte) (*ast.Document, error) {
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
				return nil, p.errUnexpectedToken(tok, schemaExpectations...)
			}
			return p.finishDocument(definitions, input), nil
		}
		definition, err := p.parseTypeSystemDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}
}

var schemaExpectations = []string{"schema", "scalar", "type", "interface", "union", "enum", "input", "directive", "extend"}

func (p *Parser) parseTypeSystemDefinition() (ast.Definition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.Name {
		tok, _ = p.read()
		return nil, p.errUnexpectedToken(tok, schemaExpectations...)
	}

	switch string(tok.Literal) {
	case "schema", "extend":
		// Neither form carries a description.
		if description.IsDefined {
			tok, _ = p.read()
			return nil, p.errUnexpectedToken(tok, "scalar", "type", "interface", "union", "enum", "input", "directive")
		}
	}

	switch string(tok.Literal) {
	case "schema":
		return p.parseSchemaDefinition()
	case "scalar":
		return p.parseScalarTypeDefinition(description)
	case "type":
		return p.parseObjectTypeDefinition(description)
	case "interface":
		return p.parseInterfaceTypeDefinition(description)
	case "union":
		return p.parseUnionTypeDefinition(description)
	case "enum":
		return p.parseEnumTypeDefinition(description)
	case "input":
		return p.parseInputObjectTypeDefinition(description)
	case "directive":
		return p.parseDirectiveDefinition(description)
	case "extend":
		return p.parseTypeExtension()
	default:
		tok, _ = p.read()
		return nil, p.errUnexpectedToken(tok, schemaExpectations...)
	}
}

func (p *Parser) parseDescription() (ast.Description, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.Description{}, err
	}
	switch tok.Kind {
	case token.StringValue:
		tok, _ = p.read()
		content, err := quotes.Unquote(tok.Literal)
		if err != nil {
			return ast.Description{}, err
		}
		return ast.Description{
			IsDefined: true,
			Content:   content,
			Position:  tok.TextPosition,
		}, nil
	case token.BlockString:
		tok, _ = p.read()
		content, err := quotes.UnquoteBlockString(tok.Literal)
		if err != nil {
			return ast.Description{}, err
		}
		return ast.Description{
			IsDefined:     true,
			IsBlockString: true,
			Content:       content,
			Position:      tok.TextPosition,
		}, nil
	default:
		return ast.Description{}, nil
	}
}

func (p *Parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	definition := &ast.SchemaDefinition{Position: keyword.TextPosition}
	definition.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	if _, err = p.mustReadPunct("{"); err != nil {
		return nil, err
	}

	roots := 0
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if isPunct(tok, "}") {
			tok, _ = p.read()
			if roots == 0 {
				return nil, p.errUnexpectedToken(tok, "query", "mutation", "subscription")
			}
			return definition, nil
		}
		operationType, err := p.read()
		if err != nil {
			return nil, err
		}
		if _, err = p.mustReadPunct(":"); err != nil {
			return nil, err
		}
		name, err := p.mustReadName()
		if err != nil {
			return nil, err
		}
		switch string(operationType.Literal) {
		case "query":
			definition.Query = p.text(name.Literal)
		case "mutation":
			definition.Mutation = p.text(name.Literal)
		case "subscription":
			definition.Subscription = p.text(name.Literal)
		default:
			return nil, p.errUnexpectedToken(operationType, "query", "mutation", "subscription")
		}
		roots++
	}
}

func (p *Parser) parseScalarTypeDefinition(description ast.Description) (*ast.ScalarTypeDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	return &ast.ScalarTypeDefinition{
		Position:    keyword.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
		Directives:  directives,
	}, nil
}

func (p *Parser) parseObjectTypeDefinition(description ast.Description) (*ast.ObjectTypeDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	definition := &ast.ObjectTypeDefinition{
		Position:    keyword.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
	}
	definition.ImplementsInterfaces, err = p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	definition.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	definition.FieldsDefinition, err = p.parseOptionalFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return definition, nil
}

func (p *Parser) parseInterfaceTypeDefinition(description ast.Description) (*ast.InterfaceTypeDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	definition := &ast.InterfaceTypeDefinition{
		Position:    keyword.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
	}
	definition.ImplementsInterfaces, err = p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	definition.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	definition.FieldsDefinition, err = p.parseOptionalFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return definition, nil
}

func (p *Parser) parseUnionTypeDefinition(description ast.Description) (*ast.UnionTypeDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	definition := &ast.UnionTypeDefinition{
		Position:    keyword.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
	}
	definition.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	definition.UnionMemberTypes, err = p.parseOptionalUnionMembers()
	if err != nil {
		return nil, err
	}
	return definition, nil
}

func (p *Parser) parseEnumTypeDefinition(description ast.Description) (*ast.EnumTypeDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	definition := &ast.EnumTypeDefinition{
		Position:    keyword.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
	}
	definition.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	definition.EnumValuesDefinition, err = p.parseOptionalEnumValues()
	if err != nil {
		return nil, err
	}
	return definition, nil
}

func (p *Parser) parseInputObjectTypeDefinition(description ast.Description) (*ast.InputObjectTypeDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	definition := &ast.InputObjectTypeDefinition{
		Position:    keyword.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
	}
	definition.Directives, err = p.parseDirectives()
	if err != nil {
		return nil, err
	}
	definition.InputFieldsDefinition, err = p.parseOptionalInputFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return definition, nil
}

func (p *Parser) parseDirectiveDefinition(description ast.Description) (*ast.DirectiveDefinition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	if _, err = p.mustReadPunct("@"); err != nil {
		return nil, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	definition := &ast.DirectiveDefinition{
		Position:    keyword.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if isPunct(tok, "(") {
		p.read()
		definition.ArgumentsDefinition, err = p.parseInputValueDefinitions(")")
		if err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
	}
	if isName(tok, "repeatable") {
		p.read()
		definition.Repeatable = true
	}
	if _, err = p.mustReadKeyword("on"); err != nil {
		return nil, err
	}

	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if isPunct(tok, "|") {
		p.read()
	}
	for {
		locationName, err := p.mustReadName()
		if err != nil {
			return nil, err
		}
		location, ok := ast.ParseDirectiveLocation(locationName.Literal)
		if !ok {
			return nil, p.errUnexpectedToken(locationName, "DirectiveLocation")
		}
		definition.Locations = append(definition.Locations, location)

		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if !isPunct(tok, "|") {
			return definition, nil
		}
		p.read()
	}
}

func (p *Parser) parseTypeExtension() (ast.Definition, error) {
	keyword, err := p.read()
	if err != nil {
		return nil, err
	}
	kind, err := p.read()
	if err != nil {
		return nil, err
	}
	if kind.Kind != token.Name {
		return nil, p.errUnexpectedToken(kind, "scalar", "type", "interface", "union", "enum", "input")
	}
	name, err := p.mustReadName()
	if err != nil {
		return nil, err
	}

	switch string(kind.Literal) {
	case "scalar":
		directives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		return &ast.ScalarTypeExtension{
			Position:   keyword.TextPosition,
			Name:       p.text(name.Literal),
			Directives: directives,
		}, nil
	case "type":
		extension := &ast.ObjectTypeExtension{
			Position: keyword.TextPosition,
			Name:     p.text(name.Literal),
		}
		extension.ImplementsInterfaces, err = p.parseImplementsInterfaces()
		if err != nil {
			return nil, err
		}
		extension.Directives, err = p.parseDirectives()
		if err != nil {
			return nil, err
		}
		extension.FieldsDefinition, err = p.parseOptionalFieldsDefinition()
		if err != nil {
			return nil, err
		}
		return extension, nil
	case "interface":
		extension := &ast.InterfaceTypeExtension{
			Position: keyword.TextPosition,
			Name:     p.text(name.Literal),
		}
		extension.ImplementsInterfaces, err = p.parseImplementsInterfaces()
		if err != nil {
			return nil, err
		}
		extension.Directives, err = p.parseDirectives()
		if err != nil {
			return nil, err
		}
		extension.FieldsDefinition, err = p.parseOptionalFieldsDefinition()
		if err != nil {
			return nil, err
		}
		return extension, nil
	case "union":
		extension := &ast.UnionTypeExtension{
			Position: keyword.TextPosition,
			Name:     p.text(name.Literal),
		}
		extension.Directives, err = p.parseDirectives()
		if err != nil {
			return nil, err
		}
		extension.UnionMemberTypes, err = p.parseOptionalUnionMembers()
		if err != nil {
			return nil, err
		}
		return extension, nil
	case "enum":
		extension := &ast.EnumTypeExtension{
			Position: keyword.TextPosition,
			Name:     p.text(name.Literal),
		}
		extension.Directives, err = p.parseDirectives()
		if err != nil {
			return nil, err
		}
		extension.EnumValuesDefinition, err = p.parseOptionalEnumValues()
		if err != nil {
			return nil, err
		}
		return extension, nil
	case "input":
		extension := &ast.InputObjectTypeExtension{
			Position: keyword.TextPosition,
			Name:     p.text(name.Literal),
		}
		extension.Directives, err = p.parseDirectives()
		if err != nil {
			return nil, err
		}
		extension.InputFieldsDefinition, err = p.parseOptionalInputFieldsDefinition()
		if err != nil {
			return nil, err
		}
		return extension, nil
	default:
		return nil, p.errUnexpectedToken(kind, "scalar", "type", "interface", "union", "enum", "input")
	}
}

// parseImplementsInterfaces reads `implements A, B` as a plain name list.
// Commas between the names are already ignored by the lexer.
func (p *Parser) parseImplementsInterfaces() ([]ast.ByteSlice, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !isName(tok, "implements") {
		return nil, nil
	}
	p.read()

	first, err := p.mustReadName()
	if err != nil {
		return nil, err
	}
	interfaces := []ast.ByteSlice{p.text(first.Literal)}
	for {
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.Name {
			return interfaces, nil
		}
		tok, _ = p.read()
		interfaces = append(interfaces, p.text(tok.Literal))
	}
}

func (p *Parser) parseOptionalFieldsDefinition() ([]ast.FieldDefinition, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !isPunct(tok, "{") {
		return nil, nil
	}
	p.read()

	var fields []ast.FieldDefinition
	for {
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if isPunct(tok, "}") {
			tok, _ = p.read()
			if len(fields) == 0 {
				return nil, p.errUnexpectedToken(tok, "Name")
			}
			return fields, nil
		}
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
}

func (p *Parser) parseFieldDefinition() (ast.FieldDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return ast.FieldDefinition{}, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return ast.FieldDefinition{}, err
	}
	field := ast.FieldDefinition{
		Position:    name.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
	}

	tok, err := p.peek()
	if err != nil {
		return ast.FieldDefinition{}, err
	}
	if isPunct(tok, "(") {
		p.read()
		field.ArgumentsDefinition, err = p.parseInputValueDefinitions(")")
		if err != nil {
			return ast.FieldDefinition{}, err
		}
	}
	if _, err = p.mustReadPunct(":"); err != nil {
		return ast.FieldDefinition{}, err
	}
	field.Type, err = p.parseType()
	if err != nil {
		return ast.FieldDefinition{}, err
	}
	field.Directives, err = p.parseDirectives()
	if err != nil {
		return ast.FieldDefinition{}, err
	}
	return field, nil
}

func (p *Parser) parseOptionalInputFieldsDefinition() ([]ast.InputValueDefinition, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !isPunct(tok, "{") {
		return nil, nil
	}
	p.read()
	return p.parseInputValueDefinitions("}")
}

// parseInputValueDefinitions reads input value definitions up to and
// including the closing punctuator, requiring at least one entry. The opening
// punctuator is already consumed.
func (p *Parser) parseInputValueDefinitions(closing string) ([]ast.InputValueDefinition, error) {
	var values []ast.InputValueDefinition
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if isPunct(tok, closing) {
			tok, _ = p.read()
			if len(values) == 0 {
				return nil, p.errUnexpectedToken(tok, "Name")
			}
			return values, nil
		}
		value, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}

func (p *Parser) parseInputValueDefinition() (ast.InputValueDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return ast.InputValueDefinition{}, err
	}
	name, err := p.mustReadName()
	if err != nil {
		return ast.InputValueDefinition{}, err
	}
	if _, err = p.mustReadPunct(":"); err != nil {
		return ast.InputValueDefinition{}, err
	}
	valueType, err := p.parseType()
	if err != nil {
		return ast.InputValueDefinition{}, err
	}

	value := ast.InputValueDefinition{
		Position:    name.TextPosition,
		Description: description,
		Name:        p.text(name.Literal),
		Type:        valueType,
	}

	tok, err := p.peek()
	if err != nil {
		return ast.InputValueDefinition{}, err
	}
	if isPunct(tok, "=") {
		p.read()
		defaultValue, err := p.parseValue(false)
		if err != nil {
			return ast.InputValueDefinition{}, err
		}
		value.DefaultValue = &defaultValue
	}
	value.Directives, err = p.parseDirectives()
	if err != nil {
		return ast.InputValueDefinition{}, err
	}
	return value, nil
}

func (p *Parser) parseOptionalUnionMembers() ([]ast.ByteSlice, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !isPunct(tok, "=") {
		return nil, nil
	}
	p.read()

	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if isPunct(tok, "|") {
		p.read()
	}

	var members []ast.ByteSlice
	for {
		member, err := p.mustReadName()
		if err != nil {
			return nil, err
		}
		members = append(members, p.text(member.Literal))

		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if !isPunct(tok, "|") {
			return members, nil
		}
		p.read()
	}
}

func (p *Parser) parseOptionalEnumValues() ([]ast.EnumValueDefinition, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !isPunct(tok, "{") {
		return nil, nil
	}
	p.read()

	var values []ast.EnumValueDefinition
	for {
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if isPunct(tok, "}") {
			tok, _ = p.read()
			if len(values) == 0 {
				return nil, p.errUnexpectedToken(tok, "Name")
			}
			return values, nil
		}
		description, err := p.parseDescription()
		if err != nil {
			return nil, err
		}
		name, err := p.mustReadName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		values = append(values, ast.EnumValueDefinition{
			Position:    name.TextPosition,
			Description: description,
			Name:        p.text(name.Literal),
			Directives:  directives,
		})
	}
}
