package astparser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlkit/graphql-syntax/pkg/ast"
)

func parseOperation(t *testing.T, input string) *ast.OperationDefinition {
	t.Helper()
	doc, err := ParseQueryString(input)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)
	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	require.True(t, ok, "definition is not an operation")
	return op
}

func firstField(t *testing.T, set *ast.SelectionSet, i int) *ast.Field {
	t.Helper()
	require.Greater(t, len(set.Selections), i)
	field, ok := set.Selections[i].(*ast.Field)
	require.True(t, ok, "selection is not a field")
	return field
}

func TestParseQuery_Shorthand(t *testing.T) {
	op := parseOperation(t, "{ a }")
	assert.True(t, op.Shorthand)
	assert.Equal(t, ast.OperationTypeQuery, op.OperationType)
	assert.Empty(t, op.Name)
	require.Len(t, op.SelectionSet.Selections, 1)
	assert.Equal(t, "a", firstField(t, op.SelectionSet, 0).Name.String())
	assert.Equal(t, uint32(1), op.SelectionSet.Start.Column)
	assert.Equal(t, uint32(5), op.SelectionSet.End.Column)
}

func TestParseQuery_Alias(t *testing.T) {
	op := parseOperation(t, "{ alias: name }")
	field := firstField(t, op.SelectionSet, 0)
	assert.Equal(t, "alias", field.Alias.String())
	assert.Equal(t, "name", field.Name.String())
}

func TestParseQuery_KeywordLikeArguments(t *testing.T) {
	// t, f and n are field names followed by ':', not aliases, because they
	// sit in argument position.
	op := parseOperation(t, "{ a(t: true, f: false, n: null) }")
	field := firstField(t, op.SelectionSet, 0)
	require.Len(t, field.Arguments, 3)
	assert.Equal(t, ast.ValueKindBoolean, field.Arguments[0].Value.Kind)
	assert.True(t, field.Arguments[0].Value.Boolean)
	assert.Equal(t, ast.ValueKindBoolean, field.Arguments[1].Value.Kind)
	assert.False(t, field.Arguments[1].Value.Boolean)
	assert.Equal(t, ast.ValueKindNull, field.Arguments[2].Value.Kind)
}

func TestParseQuery_Values(t *testing.T) {
	op := parseOperation(t, `{ a(i: 42, ni: -42, f: 13.37, s: "str", b: """block""", e: RED, l: [1, 2], o: {x: 1, y: 2}, v: $var) }`)
	args := firstField(t, op.SelectionSet, 0).Arguments
	require.Len(t, args, 9)

	assert.Equal(t, ast.ValueKindInt, args[0].Value.Kind)
	assert.Equal(t, int64(42), args[0].Value.Int.AsInt64())
	assert.Equal(t, int64(-42), args[1].Value.Int.AsInt64())
	assert.Equal(t, ast.ValueKindFloat, args[2].Value.Kind)
	assert.Equal(t, 13.37, args[2].Value.Float)
	assert.Equal(t, ast.ValueKindString, args[3].Value.Kind)
	assert.Equal(t, "str", args[3].Value.String)
	assert.Equal(t, ast.ValueKindString, args[4].Value.Kind)
	assert.Equal(t, "block", args[4].Value.String)
	assert.Equal(t, ast.ValueKindEnum, args[5].Value.Kind)
	assert.Equal(t, "RED", args[5].Value.Enum.String())
	assert.Equal(t, ast.ValueKindList, args[6].Value.Kind)
	require.Len(t, args[6].Value.List, 2)
	assert.Equal(t, int64(1), args[6].Value.List[0].Int.AsInt64())
	assert.Equal(t, ast.ValueKindObject, args[7].Value.Kind)
	assert.Equal(t, 2, args[7].Value.Object.Len())
	assert.Equal(t, ast.ValueKindVariable, args[8].Value.Kind)
	assert.Equal(t, "var", args[8].Value.Variable.String())
}

func TestParseQuery_DuplicateObjectKeysOverwrite(t *testing.T) {
	op := parseOperation(t, "{ a(o: {x: 1, x: 2}) }")
	value := firstField(t, op.SelectionSet, 0).Arguments[0].Value
	require.Equal(t, ast.ValueKindObject, value.Kind)
	assert.Equal(t, 1, value.Object.Len())
	x, ok := value.Object.Get(ast.ByteSlice("x"))
	require.True(t, ok)
	assert.Equal(t, int64(2), x.Int.AsInt64())
}

func TestParseQuery_ObjectKeysSorted(t *testing.T) {
	op := parseOperation(t, "{ a(o: {b: 1, a: 2, c: 3}) }")
	fields := firstField(t, op.SelectionSet, 0).Arguments[0].Value.Object.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "a", fields[0].Name.String())
	assert.Equal(t, "b", fields[1].Name.String())
	assert.Equal(t, "c", fields[2].Name.String())
}

func TestParseQuery_VariableDefinitions(t *testing.T) {
	op := parseOperation(t, "query Q($id: ID!, $limit: Int = 10, $tags: [String!]) { a }")
	assert.Equal(t, "Q", op.Name.String())
	require.Len(t, op.VariableDefinitions, 3)

	id := op.VariableDefinitions[0]
	assert.Equal(t, "id", id.Name.String())
	require.Equal(t, ast.TypeKindNonNull, id.Type.Kind)
	assert.Equal(t, "ID", id.Type.OfType.Name.String())

	limit := op.VariableDefinitions[1]
	require.NotNil(t, limit.DefaultValue)
	assert.Equal(t, int64(10), limit.DefaultValue.Int.AsInt64())

	tags := op.VariableDefinitions[2]
	require.Equal(t, ast.TypeKindList, tags.Type.Kind)
	require.Equal(t, ast.TypeKindNonNull, tags.Type.OfType.Kind)
	assert.Equal(t, "String", tags.Type.OfType.OfType.Name.String())
}

func TestParseQuery_DefaultValueRejectsVariables(t *testing.T) {
	_, err := ParseQueryString("query ($a: Int = $b) { f }")
	var unexpected ErrUnexpectedToken
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "$", unexpected.Literal)
	assert.NotContains(t, unexpected.Expected, "$")
}

func TestParseQuery_Fragments(t *testing.T) {
	doc, err := ParseQueryString(`
		query { ...parts ... on B { c } ... { d } }
		fragment parts on T @dir { e }
	`)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 2)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	require.Len(t, op.SelectionSet.Selections, 3)

	spread, ok := op.SelectionSet.Selections[0].(*ast.FragmentSpread)
	require.True(t, ok)
	assert.Equal(t, "parts", spread.FragmentName.String())

	inline, ok := op.SelectionSet.Selections[1].(*ast.InlineFragment)
	require.True(t, ok)
	assert.Equal(t, "B", inline.TypeCondition.String())

	bare, ok := op.SelectionSet.Selections[2].(*ast.InlineFragment)
	require.True(t, ok)
	assert.Empty(t, bare.TypeCondition)

	frag, ok := doc.Definitions[1].(*ast.FragmentDefinition)
	require.True(t, ok)
	assert.Equal(t, "parts", frag.Name.String())
	assert.Equal(t, "T", frag.TypeCondition.String())
	require.Len(t, frag.Directives, 1)
	assert.Equal(t, "dir", frag.Directives[0].Name.String())
}

func TestParseQuery_Directives(t *testing.T) {
	op := parseOperation(t, `query Q @cached(ttl: 30) { a @skip(if: $x) }`)
	require.Len(t, op.Directives, 1)
	assert.Equal(t, "cached", op.Directives[0].Name.String())
	field := firstField(t, op.SelectionSet, 0)
	require.Len(t, field.Directives, 1)
	assert.Equal(t, "skip", field.Directives[0].Name.String())
}

func TestParseQuery_EmptySelectionSet(t *testing.T) {
	_, err := ParseQueryString("{ }")
	var unexpected ErrUnexpectedToken
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "}", unexpected.Literal)
}

func TestParseQuery_TrailingGarbage(t *testing.T) {
	_, err := ParseQueryString("query { a } where a > 1 => 10.0")
	var unexpected ErrUnexpectedToken
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "where", unexpected.Literal)
	assert.Equal(t, uint32(13), unexpected.Position.Column)
}

func TestParseQuery_EmptyInput(t *testing.T) {
	_, err := ParseQueryString("  # only a comment\n")
	var unexpected ErrUnexpectedToken
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, []string{"{", "query", "mutation", "subscription", "fragment"}, unexpected.Expected)
}

func TestParseQuery_NumberTooLarge(t *testing.T) {
	_, err := ParseQueryString("{ a(x: 10000000000000000000000000000) }")
	var tooLarge ErrNumberTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "10000000000000000000000000000", tooLarge.Literal)
	assert.Contains(t, err.Error(), "number too large")
}

func TestParseQuery_RecursionLimit(t *testing.T) {
	query := strings.Repeat("{ a", 30) + "(b: " +
		strings.Repeat("[", 25) + strings.Repeat("]", 25) +
		strings.Repeat("}", 30)

	_, err := ParseQueryString(query)
	var limitErr ErrRecursionLimitExceeded
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 50, limitErr.Limit)
	assert.Equal(t, uint32(1), limitErr.Position.Line)
	assert.Equal(t, uint32(114), limitErr.Position.Column)
}

func TestParseQuery_RecursionLimitConfigurable(t *testing.T) {
	parser := NewParser(WithRecursionLimit(3))

	_, err := parser.ParseQueryString("{ a { b } }")
	assert.NoError(t, err)

	_, err = parser.ParseQueryString("{ a { b { c } } }")
	var limitErr ErrRecursionLimitExceeded
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 3, limitErr.Limit)
}

func TestParseQuery_NestedListTypesGuarded(t *testing.T) {
	query := "query (" + "$v: " + strings.Repeat("[", 60) + "Int" + strings.Repeat("]", 60) + ") { a }"
	_, err := ParseQueryString(query)
	var limitErr ErrRecursionLimitExceeded
	require.ErrorAs(t, err, &limitErr)
}

func TestConsumeDefinition(t *testing.T) {
	t.Run("single query with remainder", func(t *testing.T) {
		definition, remainder, err := ConsumeDefinitionString("query { a } query { b }")
		require.NoError(t, err)
		_, ok := definition.(*ast.OperationDefinition)
		assert.True(t, ok)
		assert.Equal(t, "query { b }", remainder)
	})
	t.Run("full text consumed", func(t *testing.T) {
		definition, remainder, err := ConsumeDefinitionString("query { a }")
		require.NoError(t, err)
		_, ok := definition.(*ast.OperationDefinition)
		assert.True(t, ok)
		assert.Equal(t, "", remainder)
	})
	t.Run("non graphql remainder", func(t *testing.T) {
		_, remainder, err := ConsumeDefinitionString("query { a } where a > 1 => 10.0")
		require.NoError(t, err)
		assert.Equal(t, "where a > 1 => 10.0", remainder)
	})
	t.Run("fails without operation", func(t *testing.T) {
		_, _, err := ConsumeDefinitionString("where a > 1 => 10.0")
		var unexpected ErrUnexpectedToken
		require.ErrorAs(t, err, &unexpected)
		assert.Equal(t, "where", unexpected.Literal)
		assert.Equal(t, uint32(1), unexpected.Position.Line)
		assert.Equal(t, uint32(1), unexpected.Position.Column)
		assert.Equal(t, []string{"{", "query", "mutation", "subscription", "fragment"}, unexpected.Expected)
	})
}

func TestParseQuery_OwnedText(t *testing.T) {
	input := []byte("{ alias: name }")
	doc, err := NewParser(WithOwnedText()).ParseQueryBytes(input)
	require.NoError(t, err)
	assert.Nil(t, doc.Input)

	field := firstField(t, doc.Definitions[0].(*ast.OperationDefinition).SelectionSet, 0)
	copy(input, []byte("???????????????"))
	assert.Equal(t, "alias", field.Alias.String())
	assert.Equal(t, "name", field.Name.String())
}

func TestParseQuery_BorrowedTextAliasesInput(t *testing.T) {
	input := []byte("{ a }")
	doc, err := ParseQueryBytes(input)
	require.NoError(t, err)
	assert.Equal(t, input, doc.Input)

	field := firstField(t, doc.Definitions[0].(*ast.OperationDefinition).SelectionSet, 0)
	input[2] = 'z'
	assert.Equal(t, "z", field.Name.String())
}

func TestParseQuery_ScanErrorsSurface(t *testing.T) {
	_, err := ParseQueryString("{ a(x: 00) }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported integer "00"`)

	_, err = ParseQueryString(`{ a(x: "unterminated) }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string value")
}

func TestParseQuery_ErrorIsValueType(t *testing.T) {
	_, err := ParseQueryString("query")
	require.Error(t, err)
	var unexpected ErrUnexpectedToken
	assert.True(t, errors.As(err, &unexpected))
	assert.Contains(t, err.Error(), "unexpected token")
}
