package ast

// DirectiveLocation is a place a directive may be applied, named by the
// upper snake case spelling used in directive definitions.
type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota
	DirectiveLocationQuery
	DirectiveLocationMutation
	DirectiveLocationSubscription
	DirectiveLocationField
	DirectiveLocationFragmentDefinition
	DirectiveLocationFragmentSpread
	DirectiveLocationInlineFragment
	DirectiveLocationSchema
	DirectiveLocationScalar
	DirectiveLocationObject
	DirectiveLocationFieldDefinition
	DirectiveLocationArgumentDefinition
	DirectiveLocationInterface
	DirectiveLocationUnion
	DirectiveLocationEnum
	DirectiveLocationEnumValue
	DirectiveLocationInputObject
	DirectiveLocationInputFieldDefinition
	DirectiveLocationVariableDefinition
)

var directiveLocationNames = map[DirectiveLocation]string{
	DirectiveLocationQuery:                "QUERY",
	DirectiveLocationMutation:             "MUTATION",
	DirectiveLocationSubscription:         "SUBSCRIPTION",
	DirectiveLocationField:                "FIELD",
	DirectiveLocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	DirectiveLocationFragmentSpread:       "FRAGMENT_SPREAD",
	DirectiveLocationInlineFragment:       "INLINE_FRAGMENT",
	DirectiveLocationSchema:               "SCHEMA",
	DirectiveLocationScalar:               "SCALAR",
	DirectiveLocationObject:               "OBJECT",
	DirectiveLocationFieldDefinition:      "FIELD_DEFINITION",
	DirectiveLocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	DirectiveLocationInterface:            "INTERFACE",
	DirectiveLocationUnion:                "UNION",
	DirectiveLocationEnum:                 "ENUM",
	DirectiveLocationEnumValue:            "ENUM_VALUE",
	DirectiveLocationInputObject:          "INPUT_OBJECT",
	DirectiveLocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
	DirectiveLocationVariableDefinition:   "VARIABLE_DEFINITION",
}

var directiveLocationsByName = func() map[string]DirectiveLocation {
	m := make(map[string]DirectiveLocation, len(directiveLocationNames))
	for loc, name := range directiveLocationNames {
		m[name] = loc
	}
	return m
}()

func (l DirectiveLocation) String() string {
	if name, ok := directiveLocationNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseDirectiveLocation resolves an upper snake case location name.
func ParseDirectiveLocation(name []byte) (DirectiveLocation, bool) {
	loc, ok := directiveLocationsByName[string(name)]
	return loc, ok
}
