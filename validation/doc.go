// Package validation provides input validation utilities for the
// dataflow kit.
//
// It supports both struct tag validation (using the validator library)
// and programmatic validation with error collection. Struct tag
// validation is used for configuration; the programmatic collector is
// used for structural pipeline checks.
//
// # Struct Tag Validation
//
//	type Options struct {
//	    JobName string `validate:"required,min=2"`
//	}
//	err := validation.Validate(opts)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Check(len(node.Outputs) > 0, "outputs", "at least one output required")
//	err := v.Error()
package validation
