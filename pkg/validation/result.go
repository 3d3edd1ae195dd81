package validation

// Context carries the counters produced during a single walk. It is purely
// derived from the traversal and immutable once the Result is returned.
type Context struct {
	// NodesVisited counts every node the walk touched, including truncated
	// and stripped ones.
	NodesVisited int

	// UndefinedFieldsRemoved counts explicit undefined markers stripped
	// from the sanitized output.
	UndefinedFieldsRemoved int

	// InvalidFieldNamesFound counts object keys dropped for containing a
	// structurally reserved character.
	InvalidFieldNamesFound int

	// FunctionsRemoved counts callable values stripped from the output.
	FunctionsRemoved int

	// MaxDepthReached records whether any subtree was truncated at the
	// depth limit.
	MaxDepthReached bool
}

// Result is the immutable outcome of one validation run.
//
// Invariant: IsValid == (len(Errors) == 0).
type Result struct {
	IsValid bool

	// Errors and Warnings are ordered by traversal order (depth-first,
	// pre-order over sorted object keys), so they are reproducible across
	// runs for identical input.
	Errors   []string
	Warnings []string

	// SanitizedData is the cleaned copy of the input, or nil when
	// sanitization was disabled or the whole value was stripped. It never
	// contains a forbidden value, a key with a reserved character, or a
	// node beyond the depth limit.
	SanitizedData any

	Context Context

	// Operation and Path are echoed from the caller for reporting.
	Operation Operation
	Path      string
}
