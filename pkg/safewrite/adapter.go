package safewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docsafe-go/docsafe/pkg/validation"
)

// Update is a merged partial-document update payload together with the
// combined validation outcome for all of its fields.
type Update struct {
	// Data maps dotted field paths to sanitized values. Fields whose value
	// failed validation are absent.
	Data map[string]any

	// Validation aggregates the per-field results: errors and warnings in
	// sorted field-path order, counters summed.
	Validation validation.Result
}

// PrepareSafeUpdate validates and sanitizes every dotted field path of a
// partial-document update independently, then merges the survivors into a
// single payload. A field whose value fails validation is excluded from Data;
// its diagnostics stay in the combined result so the caller can decide
// whether to proceed with the rest. Sanitization is always on here: values
// that have not passed through the sanitizer never reach the payload.
func PrepareSafeUpdate(fields map[string]any, opts validation.Options) Update {
	opts.SanitizeOnValidation = true

	// Sorted field paths keep the merged payload and diagnostics
	// deterministic regardless of map iteration order.
	paths := make([]string, 0, len(fields))
	for fp := range fields {
		paths = append(paths, fp)
	}
	sort.Strings(paths)

	combined := validation.Result{
		Operation: validation.OperationUpdate,
	}
	data := make(map[string]any, len(fields))

	for _, fp := range paths {
		if !validFieldPath(fp) {
			combined.Errors = append(combined.Errors, fmt.Sprintf("%s: invalid field path", fp))
			combined.Context.InvalidFieldNamesFound++
			continue
		}

		res := validation.ValidateField(fields[fp], fp, opts)
		combined.Errors = append(combined.Errors, res.Errors...)
		combined.Warnings = append(combined.Warnings, res.Warnings...)
		mergeContext(&combined.Context, res.Context)

		if res.IsValid {
			data[fp] = res.SanitizedData
		}
	}

	combined.IsValid = len(combined.Errors) == 0
	return Update{Data: data, Validation: combined}
}

// validFieldPath reports whether fp is a well-formed dotted field path: at
// least one segment, no empty segments, and no structural separators inside a
// segment. Dots are legal here because they separate segments.
func validFieldPath(fp string) bool {
	if fp == "" {
		return false
	}
	for _, seg := range strings.Split(fp, ".") {
		if seg == "" || strings.Contains(seg, "/") {
			return false
		}
	}
	return true
}

func mergeContext(dst *validation.Context, src validation.Context) {
	dst.NodesVisited += src.NodesVisited
	dst.UndefinedFieldsRemoved += src.UndefinedFieldsRemoved
	dst.InvalidFieldNamesFound += src.InvalidFieldNamesFound
	dst.FunctionsRemoved += src.FunctionsRemoved
	dst.MaxDepthReached = dst.MaxDepthReached || src.MaxDepthReached
}
