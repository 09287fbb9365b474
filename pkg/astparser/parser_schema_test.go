package astparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlkit/graphql-syntax/pkg/ast"
)

func parseSchema(t *testing.T, input string) *ast.Document {
	t.Helper()
	doc, err := ParseSchemaString(input)
	require.NoError(t, err)
	return doc
}

func TestParseSchema_SchemaDefinition(t *testing.T) {
	doc := parseSchema(t, "schema @core(feature: \"x\") { query: Q mutation: M subscription: S }")
	require.Len(t, doc.Definitions, 1)

	schema, ok := doc.Definitions[0].(*ast.SchemaDefinition)
	require.True(t, ok)
	require.Len(t, schema.Directives, 1)
	assert.Equal(t, "core", schema.Directives[0].Name.String())
	assert.Equal(t, "Q", schema.Query.String())
	assert.Equal(t, "M", schema.Mutation.String())
	assert.Equal(t, "S", schema.Subscription.String())
}

func TestParseSchema_DuplicateRootOverwrites(t *testing.T) {
	doc := parseSchema(t, "schema { query: First query: Second }")
	schema := doc.Definitions[0].(*ast.SchemaDefinition)
	assert.Equal(t, "Second", schema.Query.String())
	assert.Empty(t, schema.Mutation)
}

func TestParseSchema_Descriptions(t *testing.T) {
	doc := parseSchema(t, `
		"plain scalar"
		scalar Plain

		"""
		block
		scalar
		"""
		scalar Block

		type T {
			"field desc"
			f("arg desc" a: Int): Int
		}

		enum E {
			"value desc"
			V
		}
	`)
	require.Len(t, doc.Definitions, 4)

	plain := doc.Definitions[0].(*ast.ScalarTypeDefinition)
	require.True(t, plain.Description.IsDefined)
	assert.False(t, plain.Description.IsBlockString)
	assert.Equal(t, "plain scalar", plain.Description.Content)

	block := doc.Definitions[1].(*ast.ScalarTypeDefinition)
	require.True(t, block.Description.IsDefined)
	assert.True(t, block.Description.IsBlockString)
	assert.Equal(t, "block\nscalar", block.Description.Content)

	object := doc.Definitions[2].(*ast.ObjectTypeDefinition)
	require.Len(t, object.FieldsDefinition, 1)
	field := object.FieldsDefinition[0]
	assert.Equal(t, "field desc", field.Description.Content)
	require.Len(t, field.ArgumentsDefinition, 1)
	assert.Equal(t, "arg desc", field.ArgumentsDefinition[0].Description.Content)

	enum := doc.Definitions[3].(*ast.EnumTypeDefinition)
	require.Len(t, enum.EnumValuesDefinition, 1)
	assert.Equal(t, "value desc", enum.EnumValuesDefinition[0].Description.Content)
}

func TestParseSchema_ImplementsInterfaces(t *testing.T) {
	doc := parseSchema(t, "type T implements A, B C @d { f: Int }")
	object := doc.Definitions[0].(*ast.ObjectTypeDefinition)
	require.Len(t, object.ImplementsInterfaces, 3)
	assert.Equal(t, "A", object.ImplementsInterfaces[0].String())
	assert.Equal(t, "B", object.ImplementsInterfaces[1].String())
	assert.Equal(t, "C", object.ImplementsInterfaces[2].String())
	require.Len(t, object.Directives, 1)
	assert.Equal(t, "d", object.Directives[0].Name.String())
}

func TestParseSchema_InputObject(t *testing.T) {
	doc := parseSchema(t, "input Filter { limit: Int = 10 @d tags: [String!] }")
	input := doc.Definitions[0].(*ast.InputObjectTypeDefinition)
	require.Len(t, input.InputFieldsDefinition, 2)

	limit := input.InputFieldsDefinition[0]
	require.NotNil(t, limit.DefaultValue)
	assert.Equal(t, int64(10), limit.DefaultValue.Int.AsInt64())
	require.Len(t, limit.Directives, 1)

	tags := input.InputFieldsDefinition[1]
	assert.Nil(t, tags.DefaultValue)
	require.Equal(t, ast.TypeKindList, tags.Type.Kind)
}

func TestParseSchema_UnionMembers(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		doc := parseSchema(t, "union U = A | B")
		union := doc.Definitions[0].(*ast.UnionTypeDefinition)
		require.Len(t, union.UnionMemberTypes, 2)
		assert.Equal(t, "A", union.UnionMemberTypes[0].String())
		assert.Equal(t, "B", union.UnionMemberTypes[1].String())
	})
	t.Run("leading pipe", func(t *testing.T) {
		doc := parseSchema(t, "union U = | A | B | C")
		union := doc.Definitions[0].(*ast.UnionTypeDefinition)
		require.Len(t, union.UnionMemberTypes, 3)
		assert.Equal(t, "C", union.UnionMemberTypes[2].String())
	})
	t.Run("no members", func(t *testing.T) {
		doc := parseSchema(t, "union U @d")
		union := doc.Definitions[0].(*ast.UnionTypeDefinition)
		assert.Empty(t, union.UnionMemberTypes)
	})
}

func TestParseSchema_DirectiveDefinition(t *testing.T) {
	t.Run("arguments and repeatable", func(t *testing.T) {
		doc := parseSchema(t, "directive @tag(name: String! weight: Int = 1) repeatable on OBJECT")
		directive := doc.Definitions[0].(*ast.DirectiveDefinition)
		assert.Equal(t, "tag", directive.Name.String())
		assert.True(t, directive.Repeatable)
		require.Len(t, directive.ArgumentsDefinition, 2)
		require.NotNil(t, directive.ArgumentsDefinition[1].DefaultValue)
		require.Len(t, directive.Locations, 1)
		assert.Equal(t, ast.DirectiveLocationObject, directive.Locations[0])
	})
	t.Run("leading pipe locations", func(t *testing.T) {
		doc := parseSchema(t, "directive @d on | QUERY | MUTATION | FIELD_DEFINITION")
		directive := doc.Definitions[0].(*ast.DirectiveDefinition)
		assert.False(t, directive.Repeatable)
		assert.Equal(t, []ast.DirectiveLocation{
			ast.DirectiveLocationQuery,
			ast.DirectiveLocationMutation,
			ast.DirectiveLocationFieldDefinition,
		}, directive.Locations)
	})
}

func TestParseSchema_Extensions(t *testing.T) {
	doc := parseSchema(t, `
		extend scalar S @d
		extend type T implements I { f: Int }
		extend interface I @d { g: Int }
		extend union U = A | B
		extend enum E { V }
		extend input In { f: Int }
	`)
	require.Len(t, doc.Definitions, 6)

	scalar := doc.Definitions[0].(*ast.ScalarTypeExtension)
	assert.Equal(t, "S", scalar.Name.String())
	require.Len(t, scalar.Directives, 1)

	object := doc.Definitions[1].(*ast.ObjectTypeExtension)
	require.Len(t, object.ImplementsInterfaces, 1)
	require.Len(t, object.FieldsDefinition, 1)

	iface := doc.Definitions[2].(*ast.InterfaceTypeExtension)
	require.Len(t, iface.Directives, 1)
	require.Len(t, iface.FieldsDefinition, 1)

	union := doc.Definitions[3].(*ast.UnionTypeExtension)
	require.Len(t, union.UnionMemberTypes, 2)

	enum := doc.Definitions[4].(*ast.EnumTypeExtension)
	require.Len(t, enum.EnumValuesDefinition, 1)

	input := doc.Definitions[5].(*ast.InputObjectTypeExtension)
	require.Len(t, input.InputFieldsDefinition, 1)
}

func TestParseSchema_Errors(t *testing.T) {
	for _, tt := range []struct {
		name        string
		input       string
		wantLiteral string
		wantIn      []string
	}{
		{
			name:        "description before schema",
			input:       `"no descriptions here" schema { query: Q }`,
			wantLiteral: "schema",
			wantIn:      []string{"scalar", "type", "interface", "union", "enum", "input", "directive"},
		},
		{
			name:        "description before extend",
			input:       `"no descriptions here" extend type T @d`,
			wantLiteral: "extend",
			wantIn:      []string{"scalar", "type", "interface", "union", "enum", "input", "directive"},
		},
		{
			name:        "unknown directive location",
			input:       "directive @d on NOWHERE",
			wantLiteral: "NOWHERE",
			wantIn:      []string{"DirectiveLocation"},
		},
		{
			name:        "empty type body",
			input:       "type T {}",
			wantLiteral: "}",
			wantIn:      []string{"Name"},
		},
		{
			name:        "empty enum body",
			input:       "enum E {}",
			wantLiteral: "}",
			wantIn:      []string{"Name"},
		},
		{
			name:        "empty input body",
			input:       "input I {}",
			wantLiteral: "}",
			wantIn:      []string{"Name"},
		},
		{
			name:        "schema without roots",
			input:       "schema {}",
			wantLiteral: "}",
			wantIn:      []string{"query", "mutation", "subscription"},
		},
		{
			name:        "invalid schema root",
			input:       "schema { foo: Bar }",
			wantLiteral: "foo",
			wantIn:      []string{"query", "mutation", "subscription"},
		},
		{
			name:        "unknown extension kind",
			input:       "extend frobnicate X",
			wantLiteral: "frobnicate",
			wantIn:      []string{"scalar", "type", "interface", "union", "enum", "input"},
		},
		{
			name:        "unknown keyword",
			input:       "service X { f: Int }",
			wantLiteral: "service",
			wantIn:      []string{"schema", "scalar", "type", "interface", "union", "enum", "input", "directive", "extend"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchemaString(tt.input)
			var unexpected ErrUnexpectedToken
			require.ErrorAs(t, err, &unexpected)
			assert.Equal(t, tt.wantLiteral, unexpected.Literal)
			for _, want := range tt.wantIn {
				assert.Contains(t, unexpected.Expected, want)
			}
		})
	}
}

func TestParseSchema_EmptyInput(t *testing.T) {
	_, err := ParseSchemaString("  # nothing here\n")
	var unexpected ErrUnexpectedToken
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, []string{"schema", "scalar", "type", "interface", "union", "enum", "input", "directive", "extend"}, unexpected.Expected)
}
