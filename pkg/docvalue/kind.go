package docvalue

// Kind is the structural classification of a value as seen by a schemaless
// document store.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	// KindForbidden marks values no document store can persist. It is a
	// classification, never an error: the sanitizer strips such values and
	// the validator reports them.
	KindForbidden
)

// String returns the lowercase kind name, used verbatim in diagnostic messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindForbidden:
		return "forbidden"
	default:
		// Unknown kinds are treated as forbidden rather than panicking.
		return "forbidden"
	}
}

// Persistable reports whether values of this kind may appear in sanitized
// output destined for the store.
func (k Kind) Persistable() bool {
	return k <= KindObject
}

// Scalar reports whether the kind is a leaf that passes through sanitization
// unchanged.
func (k Kind) Scalar() bool {
	return k <= KindString
}
