package ast

import "github.com/gqlkit/graphql-syntax/pkg/lexer/position"

// Description is an optional string or block string preceding a type system
// definition. Content holds the decoded text.
type Description struct {
	IsDefined     bool
	IsBlockString bool
	Content       string
	Position      position.Position
}

// SchemaDefinition names the root operation types. Unset roots are empty.
type SchemaDefinition struct {
	Position     position.Position
	Directives   []Directive
	Query        ByteSlice
	Mutation     ByteSlice
	Subscription ByteSlice
}

func (*SchemaDefinition) definitionNode() {}

type ScalarTypeDefinition struct {
	Position    position.Position
	Description Description
	Name        ByteSlice
	Directives  []Directive
}

func (*ScalarTypeDefinition) definitionNode() {}

type ObjectTypeDefinition struct {
	Position             position.Position
	Description          Description
	Name                 ByteSlice
	ImplementsInterfaces []ByteSlice
	Directives           []Directive
	FieldsDefinition     []FieldDefinition
}

func (*ObjectTypeDefinition) definitionNode() {}

type InterfaceTypeDefinition struct {
	Position             position.Position
	Description          Description
	Name                 ByteSlice
	ImplementsInterfaces []ByteSlice
	Directives           []Directive
	FieldsDefinition     []FieldDefinition
}

func (*InterfaceTypeDefinition) definitionNode() {}

type UnionTypeDefinition struct {
	Position         position.Position
	Description      Description
	Name             ByteSlice
	Directives       []Directive
	UnionMemberTypes []ByteSlice
}

func (*UnionTypeDefinition) definitionNode() {}

type EnumTypeDefinition struct {
	Position             position.Position
	Description          Description
	Name                 ByteSlice
	Directives           []Directive
	EnumValuesDefinition []EnumValueDefinition
}

func (*EnumTypeDefinition) definitionNode() {}

type InputObjectTypeDefinition struct {
	Position              position.Position
	Description           Description
	Name                  ByteSlice
	Directives            []Directive
	InputFieldsDefinition []InputValueDefinition
}

func (*InputObjectTypeDefinition) definitionNode() {}

type ScalarTypeExtension struct {
	Position   position.Position
	Name       ByteSlice
	Directives []Directive
}

func (*ScalarTypeExtension) definitionNode() {}

type ObjectTypeExtension struct {
	Position             position.Position
	Name                 ByteSlice
	ImplementsInterfaces []ByteSlice
	Directives           []Directive
	FieldsDefinition     []FieldDefinition
}

func (*ObjectTypeExtension) definitionNode() {}

type InterfaceTypeExtension struct {
	Position             position.Position
	Name                 ByteSlice
	ImplementsInterfaces []ByteSlice
	Directives           []Directive
	FieldsDefinition     []FieldDefinition
}

func (*InterfaceTypeExtension) definitionNode() {}

type UnionTypeExtension struct {
	Position         position.Position
	Name             ByteSlice
	Directives       []Directive
	UnionMemberTypes []ByteSlice
}

func (*UnionTypeExtension) definitionNode() {}

type EnumTypeExtension struct {
	Position             position.Position
	Name                 ByteSlice
	Directives           []Directive
	EnumValuesDefinition []EnumValueDefinition
}

func (*EnumTypeExtension) definitionNode() {}

type InputObjectTypeExtension struct {
	Position              position.Position
	Name                  ByteSlice
	Directives            []Directive
	InputFieldsDefinition []InputValueDefinition
}

func (*InputObjectTypeExtension) definitionNode() {}

type FieldDefinition struct {
	Position            position.Position
	Description         Description
	Name                ByteSlice
	ArgumentsDefinition []InputValueDefinition
	Type                Type
	Directives          []Directive
}

type InputValueDefinition struct {
	Position     position.Position
	Description  Description
	Name         ByteSlice
	Type         Type
	DefaultValue *Value
	Directives   []Directive
}

type EnumValueDefinition struct {
	Position    position.Position
	Description Description
	Name        ByteSlice
	Directives  []Directive
}

type DirectiveDefinition struct {
	Position            position.Position
	Description         Description
	Name                ByteSlice
	ArgumentsDefinition []InputValueDefinition
	Repeatable          bool
	Locations           []DirectiveLocation
}

func (*DirectiveDefinition) definitionNode() {}
