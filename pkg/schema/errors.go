package schema

// RelationError reports a duplicate relation name or an unresolvable
// relation reference.
type RelationError struct {
	Msg string
}

func (e *RelationError) Error() string {
	return "relation reference error: " + e.Msg
}

// AttributeError reports an unknown or ambiguous attribute reference.
type AttributeError struct {
	Msg string
}

func (e *AttributeError) Error() string {
	return "attribute reference error: " + e.Msg
}

// InputError reports structurally invalid input: a set operation over
// incompatible schemas, an assignment with a mismatched attribute count,
// or an assignment without a name.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return "input error: " + e.Msg
}
