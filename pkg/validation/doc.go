// Package validation implements the pre-write validation and sanitization
// engine for documents headed to a schemaless document store.
//
// Given an arbitrary, deeply nested value graph the engine decides whether it
// can be safely written, produces a sanitized copy with everything
// unpersistable stripped out, and collects a complete diagnostic set. It
// never aborts mid-walk: a single bad field must not prevent reporting every
// other problem in the same document, so all findings are accumulated as
// path-addressed strings and returned together.
//
// The walk is a single depth-first pre-order pass that fuses sanitization and
// rule validation. Object keys are visited in sorted order, which makes
// message ordering, sanitized output, and the rendered report deterministic.
//
// Behavior is controlled by Options:
//
//   - AllowUndefined / AllowNullValues toggle the policy rules
//   - MaxDepth bounds recursion; deeper subtrees are replaced with
//     docvalue.TruncatedMarker and reported as warnings
//   - Strict promotes warnings to errors after the walk completes
//   - SanitizeOnValidation controls whether a cleaned copy is produced
//
// # Usage
//
//	res := validation.ValidateDocument(doc, "users/alice", validation.OperationCreate, validation.DefaultOptions())
//	if !res.IsValid {
//		fmt.Println(validation.CreateReport(res))
//		return
//	}
//	store.Write(res.SanitizedData)
//
// The engine is pure and stateless: every call builds fresh state, holds no
// locks, performs no I/O, and may run concurrently with any number of other
// calls. The optional Options.Logger handle is the only collaborator; it is
// passed in explicitly so validation stays testable without global setup.
package validation
