package validation

import (
	"log/slog"

	"github.com/docsafe-go/docsafe/pkg/config"
)

// Operation names the write the document is being validated for. The value is
// echoed verbatim in the rendered report.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Options controls a single validation run.
type Options struct {
	// Strict promotes warnings to errors after the walk completes. A strict
	// run that produced any warning fails, and its sanitized output should
	// not be written.
	Strict bool

	// SanitizeOnValidation controls whether a sanitized copy is produced.
	// When false, Result.SanitizedData is nil; diagnostics are collected
	// either way.
	SanitizeOnValidation bool

	// AllowUndefined keeps explicit undefined markers from failing
	// validation. Allowed markers are persisted as null, since no document
	// store can represent "undefined" as a stored value.
	AllowUndefined bool

	// AllowNullValues permits null leaves. Most document stores persist
	// null natively, so this defaults to true.
	AllowNullValues bool

	// MaxDepth bounds nesting in the sanitized output: a container at this
	// depth is replaced with docvalue.TruncatedMarker instead of being
	// descended into, and the cut is reported as a warning. This turns a
	// potential stack overflow on pathological input into a controlled,
	// reported truncation.
	MaxDepth int

	// Logger receives debug-level records for every correction the
	// sanitizer makes. Nil means silent. The handle is passed explicitly
	// rather than read from process-wide state.
	Logger *slog.Logger
}

// DefaultMaxDepth bounds recursion when Options.MaxDepth is zero or negative.
const DefaultMaxDepth = 10

// DefaultOptions returns the engine defaults: undefined values disallowed,
// nulls allowed, sanitization enabled, lenient mode.
func DefaultOptions() Options {
	return Options{
		SanitizeOnValidation: true,
		AllowNullValues:      true,
		MaxDepth:             DefaultMaxDepth,
	}
}

// maxDepth returns the effective recursion bound.
func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

type envOptions struct {
	Strict               bool `env:"DOCSAFE_VALIDATION_STRICT" envDefault:"false"`
	SanitizeOnValidation bool `env:"DOCSAFE_VALIDATION_SANITIZE" envDefault:"true"`
	AllowUndefined       bool `env:"DOCSAFE_VALIDATION_ALLOW_UNDEFINED" envDefault:"false"`
	AllowNullValues      bool `env:"DOCSAFE_VALIDATION_ALLOW_NULL" envDefault:"true"`
	MaxDepth             int  `env:"DOCSAFE_VALIDATION_MAX_DEPTH" envDefault:"10"`
}

// OptionsFromEnv derives Options from DOCSAFE_VALIDATION_* environment
// variables, falling back to the documented defaults for anything unset.
func OptionsFromEnv() (Options, error) {
	var cfg envOptions
	if err := config.Load(&cfg); err != nil {
		return Options{}, err
	}
	return Options{
		Strict:               cfg.Strict,
		SanitizeOnValidation: cfg.SanitizeOnValidation,
		AllowUndefined:       cfg.AllowUndefined,
		AllowNullValues:      cfg.AllowNullValues,
		MaxDepth:             cfg.MaxDepth,
	}, nil
}
