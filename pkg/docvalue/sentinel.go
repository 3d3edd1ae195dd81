package docvalue

// undefinedMarker is the explicit "missing value" marker, distinct from null.
// Document stores commonly persist null but have no notion of an undefined
// field, so the marker always classifies as Forbidden.
type undefinedMarker struct{}

// Undefined is the canonical undefined marker. Callers place it in a value
// graph to represent a field that exists in the application model but has no
// persistable value.
var Undefined undefinedMarker

// TruncatedMarker replaces subtrees cut off at the configured depth limit.
// It is an ordinary string so the sanitized graph stays persistable, but the
// value is distinctive enough to be recognized in stored data and tests.
const TruncatedMarker = "[truncated: max depth exceeded]"

// IsUndefined reports whether v is the explicit undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedMarker)
	return ok
}
