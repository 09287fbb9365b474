package ast

import "github.com/gqlkit/graphql-syntax/pkg/lexer/position"

type OperationType int

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// OperationDefinition is a query, mutation or subscription. The shorthand
// form `{ ... }` parses as an unnamed query with Shorthand set, so a printer
// can reproduce it without the operation keyword.
type OperationDefinition struct {
	Position            position.Position
	OperationType       OperationType
	Shorthand           bool
	Name                ByteSlice
	VariableDefinitions []VariableDefinition
	Directives          []Directive
	SelectionSet        *SelectionSet
}

func (*OperationDefinition) definitionNode() {}

type FragmentDefinition struct {
	Position      position.Position
	Name          ByteSlice
	TypeCondition ByteSlice
	Directives    []Directive
	SelectionSet  *SelectionSet
}

func (*FragmentDefinition) definitionNode() {}

type VariableDefinition struct {
	Position     position.Position
	Name         ByteSlice
	Type         Type
	DefaultValue *Value
}

// SelectionSet spans from the opening to the closing brace. It is never
// empty; the grammar rejects `{}`.
type SelectionSet struct {
	Start      position.Position
	End        position.Position
	Selections []Selection
}

// Selection is an entry of a SelectionSet.
type Selection interface {
	selectionNode()
}

type Field struct {
	Position     position.Position
	Alias        ByteSlice
	Name         ByteSlice
	Arguments    []Argument
	Directives   []Directive
	SelectionSet *SelectionSet
}

func (*Field) selectionNode() {}

type FragmentSpread struct {
	Position     position.Position
	FragmentName ByteSlice
	Directives   []Directive
}

func (*FragmentSpread) selectionNode() {}

// InlineFragment with an empty TypeCondition has no `on Type` clause.
type InlineFragment struct {
	Position      position.Position
	TypeCondition ByteSlice
	Directives    []Directive
	SelectionSet  *SelectionSet
}

func (*InlineFragment) selectionNode() {}

type Directive struct {
	Position  position.Position
	Name      ByteSlice
	Arguments []Argument
}

type Argument struct {
	Position position.Position
	Name     ByteSlice
	Value    Value
}
