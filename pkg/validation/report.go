package validation

import (
	"fmt"
	"strings"
)

// reportHeader is the fixed first line of every rendered report.
const reportHeader = "=== Document Write Validation Report ==="

// CreateReport renders a Result as a deterministic, human-readable multi-line
// report. It is purely formatting; no decision logic lives here.
func CreateReport(r Result) string {
	var b strings.Builder

	b.WriteString(reportHeader)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Operation: %s\n", r.Operation)
	fmt.Fprintf(&b, "Path:      %s\n", r.Path)

	status := "PASSED"
	if !r.IsValid {
		status = "FAILED"
	}
	fmt.Fprintf(&b, "Status:    %s\n", status)

	b.WriteByte('\n')
	fmt.Fprintf(&b, "Errors (%d):\n", len(r.Errors))
	for i, msg := range r.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	fmt.Fprintf(&b, "Warnings (%d):\n", len(r.Warnings))
	for i, msg := range r.Warnings {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "Nodes visited:           %d\n", r.Context.NodesVisited)
	fmt.Fprintf(&b, "Undefined fields removed: %d\n", r.Context.UndefinedFieldsRemoved)
	fmt.Fprintf(&b, "Invalid field names:     %d\n", r.Context.InvalidFieldNamesFound)
	fmt.Fprintf(&b, "Functions removed:       %d\n", r.Context.FunctionsRemoved)
	fmt.Fprintf(&b, "Max depth reached:       %t\n", r.Context.MaxDepthReached)

	return b.String()
}
