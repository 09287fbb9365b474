package ast

import (
	"bytes"
	"sort"
	"strconv"
)

type ValueKind int

const (
	ValueKindUnknown ValueKind = iota
	ValueKindVariable
	ValueKindInt
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindList
	ValueKindObject
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindVariable:
		return "Variable"
	case ValueKindInt:
		return "Int"
	case ValueKindFloat:
		return "Float"
	case ValueKindString:
		return "String"
	case ValueKindBoolean:
		return "Boolean"
	case ValueKindNull:
		return "Null"
	case ValueKindEnum:
		return "Enum"
	case ValueKindList:
		return "List"
	case ValueKindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is an input value literal. Kind selects which of the remaining
// fields carries the value.
type Value struct {
	Kind     ValueKind
	Variable ByteSlice
	Int      Number
	Float    float64
	String   string
	Boolean  bool
	Enum     ByteSlice
	List     []Value
	Object   *ObjectValue
}

// Number boxes an integer literal. The representation is deliberately opaque
// so it can grow beyond int64 without breaking the Value API.
type Number struct {
	value int64
}

func NumberFromInt64(v int64) Number {
	return Number{value: v}
}

func (n Number) AsInt64() int64 {
	return n.value
}

func (n Number) String() string {
	return strconv.FormatInt(n.value, 10)
}

// ObjectValue holds object literal fields sorted by name with unique keys.
// Setting a field that already exists overwrites its value.
type ObjectValue struct {
	fields []ObjectField
}

type ObjectField struct {
	Name  ByteSlice
	Value Value
}

// Set upserts a field, keeping the fields sorted by name.
func (o *ObjectValue) Set(name ByteSlice, value Value) {
	i := sort.Search(len(o.fields), func(i int) bool {
		return bytes.Compare(o.fields[i].Name, name) >= 0
	})
	if i < len(o.fields) && o.fields[i].Name.Equals(name) {
		o.fields[i].Value = value
		return
	}
	o.fields = append(o.fields, ObjectField{})
	copy(o.fields[i+1:], o.fields[i:])
	o.fields[i] = ObjectField{Name: name, Value: value}
}

func (o *ObjectValue) Get(name ByteSlice) (Value, bool) {
	i := sort.Search(len(o.fields), func(i int) bool {
		return bytes.Compare(o.fields[i].Name, name) >= 0
	})
	if i < len(o.fields) && o.fields[i].Name.Equals(name) {
		return o.fields[i].Value, true
	}
	return Value{}, false
}

// Fields returns the fields in name order. The returned slice is shared with
// the ObjectValue and must not be mutated.
func (o *ObjectValue) Fields() []ObjectField {
	return o.fields
}

func (o *ObjectValue) Len() int {
	return len(o.fields)
}
