package validation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// policyFile mirrors the YAML shape of a validation policy. Pointer fields
// distinguish "omitted" from an explicit false/zero.
type policyFile struct {
	Strict               *bool `yaml:"strict"`
	SanitizeOnValidation *bool `yaml:"sanitize_on_validation"`
	AllowUndefined       *bool `yaml:"allow_undefined"`
	AllowNullValues      *bool `yaml:"allow_null_values"`
	MaxDepth             *int  `yaml:"max_depth"`
}

// LoadPolicyFile reads validation Options from a YAML policy file. Omitted
// fields keep the engine defaults, so a policy only has to state what it
// changes:
//
//	strict: true
//	max_depth: 6
func LoadPolicyFile(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Join(ErrPolicyFileUnreadable, err)
	}
	return ParsePolicy(raw)
}

// ParsePolicy parses YAML policy content into Options.
func ParsePolicy(raw []byte) (Options, error) {
	var pf policyFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return Options{}, errors.Join(ErrPolicyFileInvalid, err)
	}

	opts := DefaultOptions()
	if pf.Strict != nil {
		opts.Strict = *pf.Strict
	}
	if pf.SanitizeOnValidation != nil {
		opts.SanitizeOnValidation = *pf.SanitizeOnValidation
	}
	if pf.AllowUndefined != nil {
		opts.AllowUndefined = *pf.AllowUndefined
	}
	if pf.AllowNullValues != nil {
		opts.AllowNullValues = *pf.AllowNullValues
	}
	if pf.MaxDepth != nil {
		if *pf.MaxDepth <= 0 {
			return Options{}, fmt.Errorf("%w: max_depth must be positive, got %d", ErrPolicyFileInvalid, *pf.MaxDepth)
		}
		opts.MaxDepth = *pf.MaxDepth
	}
	return opts, nil
}
