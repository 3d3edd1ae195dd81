package validation

import "log/slog"

// ValidateDocument runs the engine over a whole candidate document. docPath
// and op identify the write for reporting only; they do not influence the
// walk. The call is pure: it completes synchronously, touches no shared
// state, and may run concurrently with any number of other calls.
func ValidateDocument(data any, docPath string, op Operation, opts Options) Result {
	return run(data, "", docPath, op, opts)
}

// ValidateField runs the engine over a single value addressed by a dotted
// field path, as used in partial-document updates. Diagnostic messages are
// prefixed with fieldPath so they stay actionable after merging.
func ValidateField(value any, fieldPath string, opts Options) Result {
	return run(value, fieldPath, fieldPath, OperationUpdate, opts)
}

func run(data any, pathPrefix, docPath string, op Operation, opts Options) Result {
	w := newWalker(opts)
	clean, kept := w.walk(data, pathPrefix, 0)

	errs, warns := w.errors, w.warnings
	if opts.Strict {
		// Strict mode reclassifies warnings after the walk completes;
		// the walk itself is identical in both modes.
		errs = append(errs, warns...)
		warns = nil
	}

	res := Result{
		IsValid:   len(errs) == 0,
		Errors:    errs,
		Warnings:  warns,
		Context:   w.ctx,
		Operation: op,
		Path:      docPath,
	}
	if opts.SanitizeOnValidation && kept {
		res.SanitizedData = clean
	}

	if opts.Logger != nil {
		opts.Logger.Debug("document validated",
			slog.String("path", docPath),
			slog.String("operation", string(op)),
			slog.Bool("valid", res.IsValid),
			slog.Int("errors", len(res.Errors)),
			slog.Int("warnings", len(res.Warnings)),
			slog.Int("nodes", res.Context.NodesVisited),
		)
	}
	return res
}
