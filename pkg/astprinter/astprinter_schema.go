package astprinter

import (
	"github.com/gqlkit/graphql-syntax/pkg/ast"
	"github.com/gqlkit/graphql-syntax/pkg/quotes"
)

func (f *formatter) writeTypeSystemDefinition(definition ast.Definition) {
	switch d := definition.(type) {
	case *ast.SchemaDefinition:
		f.writeSchemaDefinition(d)
	case *ast.ScalarTypeDefinition:
		f.writeScalarTypeDefinition(d)
	case *ast.ObjectTypeDefinition:
		f.writeObjectLikeDefinition(d.Description, "type", d.Name, d.ImplementsInterfaces, d.Directives, d.FieldsDefinition, false)
	case *ast.InterfaceTypeDefinition:
		f.writeObjectLikeDefinition(d.Description, "interface", d.Name, d.ImplementsInterfaces, d.Directives, d.FieldsDefinition, false)
	case *ast.UnionTypeDefinition:
		f.writeUnionTypeDefinition(d)
	case *ast.EnumTypeDefinition:
		f.writeEnumTypeDefinition(d)
	case *ast.InputObjectTypeDefinition:
		f.writeInputObjectTypeDefinition(d)
	case *ast.DirectiveDefinition:
		f.writeDirectiveDefinition(d)
	case *ast.ScalarTypeExtension:
		f.writeScalarTypeExtension(d)
	case *ast.ObjectTypeExtension:
		f.writeObjectLikeDefinition(ast.Description{}, "type", d.Name, d.ImplementsInterfaces, d.Directives, d.FieldsDefinition, true)
	case *ast.InterfaceTypeExtension:
		f.writeObjectLikeDefinition(ast.Description{}, "interface", d.Name, d.ImplementsInterfaces, d.Directives, d.FieldsDefinition, true)
	case *ast.UnionTypeExtension:
		f.writeUnionTypeExtension(d)
	case *ast.EnumTypeExtension:
		f.writeEnumTypeExtension(d)
	case *ast.InputObjectTypeExtension:
		f.writeInputObjectTypeExtension(d)
	}
}

// writeDescription prints an optional description on its own line at the
// current indentation.
func (f *formatter) writeDescription(description ast.Description) {
	if !description.IsDefined {
		return
	}
	f.writeIndent()
	f.writeQuoted(description.Content)
	f.endline()
}

func (f *formatter) writeSchemaDefinition(schema *ast.SchemaDefinition) {
	f.margin()
	f.writeIndent()
	f.write("schema")
	f.writeDirectives(schema.Directives)
	f.write(" ")
	f.startBlock()
	if len(schema.Query) > 0 {
		f.writeIndent()
		f.write("query: ")
		f.write(schema.Query.String())
		f.endline()
	}
	if len(schema.Mutation) > 0 {
		f.writeIndent()
		f.write("mutation: ")
		f.write(schema.Mutation.String())
		f.endline()
	}
	if len(schema.Subscription) > 0 {
		f.writeIndent()
		f.write("subscription: ")
		f.write(schema.Subscription.String())
		f.endline()
	}
	f.endBlock()
}

func (f *formatter) writeScalarTypeDefinition(scalar *ast.ScalarTypeDefinition) {
	f.margin()
	f.writeDescription(scalar.Description)
	f.writeIndent()
	f.write("scalar ")
	f.write(scalar.Name.String())
	f.writeDirectives(scalar.Directives)
	f.endline()
}

func (f *formatter) writeScalarTypeExtension(scalar *ast.ScalarTypeExtension) {
	f.margin()
	f.writeIndent()
	f.write("extend scalar ")
	f.write(scalar.Name.String())
	f.writeDirectives(scalar.Directives)
	f.endline()
}

// writeObjectLikeDefinition covers object and interface types as well as
// their extensions, which share everything but the keyword and the "extend"
// prefix.
func (f *formatter) writeObjectLikeDefinition(description ast.Description, keyword string, name ast.ByteSlice, implements []ast.ByteSlice, directives []ast.Directive, fields []ast.FieldDefinition, extend bool) {
	f.margin()
	f.writeDescription(description)
	f.writeIndent()
	if extend {
		f.write("extend ")
	}
	f.write(keyword)
	f.write(" ")
	f.write(name.String())
	if len(implements) > 0 {
		f.write(" implements ")
		for i := range implements {
			if i != 0 {
				f.write(", ")
			}
			f.write(implements[i].String())
		}
	}
	f.writeDirectives(directives)
	if len(fields) == 0 {
		f.endline()
		return
	}
	f.write(" ")
	f.startBlock()
	for i := range fields {
		f.writeFieldDefinition(fields[i])
	}
	f.endBlock()
}

func (f *formatter) writeFieldDefinition(field ast.FieldDefinition) {
	f.writeDescription(field.Description)
	f.writeIndent()
	f.write(field.Name.String())
	f.writeInputValueDefinitions(field.ArgumentsDefinition)
	f.write(": ")
	f.writeType(field.Type)
	f.writeDirectives(field.Directives)
	f.endline()
}

// writeInputValueDefinitions prints argument definitions inline. A defined
// description prints as a quoted string before the argument name, which
// parses back because commas between arguments are ignorable anyway.
func (f *formatter) writeInputValueDefinitions(definitions []ast.InputValueDefinition) {
	if len(definitions) == 0 {
		return
	}
	f.startArgumentBlock('(')
	for i := range definitions {
		if i != 0 {
			f.delineateArgument()
		}
		f.startArgument()
		if definitions[i].Description.IsDefined {
			f.write(quotes.Quote(definitions[i].Description.Content))
			f.write(" ")
		}
		f.writeInputValue(definitions[i])
	}
	f.endArgumentBlock(')')
}

func (f *formatter) writeInputValue(definition ast.InputValueDefinition) {
	f.write(definition.Name.String())
	f.write(": ")
	f.writeType(definition.Type)
	if definition.DefaultValue != nil {
		f.write(" = ")
		f.writeValue(*definition.DefaultValue)
	}
	f.writeDirectives(definition.Directives)
}

func (f *formatter) writeUnionTypeDefinition(union *ast.UnionTypeDefinition) {
	f.margin()
	f.writeDescription(union.Description)
	f.writeIndent()
	f.write("union ")
	f.write(union.Name.String())
	f.writeDirectives(union.Directives)
	f.writeUnionMembers(union.UnionMemberTypes)
	f.endline()
}

func (f *formatter) writeUnionTypeExtension(union *ast.UnionTypeExtension) {
	f.margin()
	f.writeIndent()
	f.write("extend union ")
	f.write(union.Name.String())
	f.writeDirectives(union.Directives)
	f.writeUnionMembers(union.UnionMemberTypes)
	f.endline()
}

func (f *formatter) writeUnionMembers(members []ast.ByteSlice) {
	if len(members) == 0 {
		return
	}
	f.write(" = ")
	for i := range members {
		if i != 0 {
			f.write(" | ")
		}
		f.write(members[i].String())
	}
}

func (f *formatter) writeEnumTypeDefinition(enum *ast.EnumTypeDefinition) {
	f.margin()
	f.writeDescription(enum.Description)
	f.writeIndent()
	f.write("enum ")
	f.write(enum.Name.String())
	f.writeDirectives(enum.Directives)
	f.writeEnumValues(enum.EnumValuesDefinition)
}

func (f *formatter) writeEnumTypeExtension(enum *ast.EnumTypeExtension) {
	f.margin()
	f.writeIndent()
	f.write("extend enum ")
	f.write(enum.Name.String())
	f.writeDirectives(enum.Directives)
	f.writeEnumValues(enum.EnumValuesDefinition)
}

func (f *formatter) writeEnumValues(values []ast.EnumValueDefinition) {
	if len(values) == 0 {
		f.endline()
		return
	}
	f.write(" ")
	f.startBlock()
	for i := range values {
		f.writeDescription(values[i].Description)
		f.writeIndent()
		f.write(values[i].Name.String())
		f.writeDirectives(values[i].Directives)
		f.endline()
	}
	f.endBlock()
}

func (f *formatter) writeInputObjectTypeDefinition(input *ast.InputObjectTypeDefinition) {
	f.margin()
	f.writeDescription(input.Description)
	f.writeIndent()
	f.write("input ")
	f.write(input.Name.String())
	f.writeDirectives(input.Directives)
	f.writeInputFields(input.InputFieldsDefinition)
}

func (f *formatter) writeInputObjectTypeExtension(input *ast.InputObjectTypeExtension) {
	f.margin()
	f.writeIndent()
	f.write("extend input ")
	f.write(input.Name.String())
	f.writeDirectives(input.Directives)
	f.writeInputFields(input.InputFieldsDefinition)
}

func (f *formatter) writeInputFields(fields []ast.InputValueDefinition) {
	if len(fields) == 0 {
		f.endline()
		return
	}
	f.write(" ")
	f.startBlock()
	for i := range fields {
		f.writeDescription(fields[i].Description)
		f.writeIndent()
		f.writeInputValue(fields[i])
		f.endline()
	}
	f.endBlock()
}

func (f *formatter) writeDirectiveDefinition(directive *ast.DirectiveDefinition) {
	f.margin()
	f.writeDescription(directive.Description)
	f.writeIndent()
	f.write("directive @")
	f.write(directive.Name.String())
	f.writeInputValueDefinitions(directive.ArgumentsDefinition)
	if directive.Repeatable {
		f.write(" repeatable")
	}
	f.write(" on ")
	for i := range directive.Locations {
		if i != 0 {
			f.write(" | ")
		}
		f.write(directive.Locations[i].String())
	}
	f.endline()
}
