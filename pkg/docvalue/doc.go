// Package docvalue defines the structural value model used by the docsafe
// validation engine: a small, closed set of kinds that a schemaless document
// store can (or cannot) persist, and a total classifier that maps any Go value
// onto that set.
//
// The model deliberately mirrors what path-addressed document stores accept:
//
//   - Null, Bool, Number, String – scalar leaves stored as-is
//   - Array – a dense, ordered sequence of values
//   - Object – a mapping from string field names to values
//   - Forbidden – everything the store cannot represent (functions, channels,
//     NaN/infinite floats, the explicit Undefined marker, structs, maps with
//     non-string keys, ...)
//
// Classification is total and never fails: an unrecognized type classifies as
// Forbidden rather than producing an error. This keeps the downstream
// sanitizer and validator free of error paths on the hot walk.
//
// NaN and non-finite floats classify as Forbidden on purpose. Document stores
// typically have no representation for them, and silently coercing them (to
// null, zero, or a string) would corrupt data without the caller noticing.
//
// # Usage
//
//	v, kind := docvalue.Resolve(raw)
//	switch kind {
//	case docvalue.KindObject:
//		fields := v.(map[string]any)
//		// ...
//	case docvalue.KindForbidden:
//		// strip, count, report
//	}
//
// The package is stateless and safe for concurrent use.
package docvalue
