package ast

type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindNamed
	TypeKindList
	TypeKindNonNull
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindNamed:
		return "Named"
	case TypeKindList:
		return "List"
	case TypeKindNonNull:
		return "NonNull"
	default:
		return "Unknown"
	}
}

// Type is a type reference. Named types set Name, list and non null types
// wrap OfType. The grammar guarantees a non null type never wraps another
// non null type.
type Type struct {
	Kind   TypeKind
	Name   ByteSlice
	OfType *Type
}

func NamedType(name ByteSlice) Type {
	return Type{Kind: TypeKindNamed, Name: name}
}

func ListType(ofType Type) Type {
	return Type{Kind: TypeKindList, OfType: &ofType}
}

func NonNullType(ofType Type) Type {
	return Type{Kind: TypeKindNonNull, OfType: &ofType}
}
