// Package errors provides structured error types for the visit module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: location path, Go/WIT type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseScan, errors.KindTypeMismatch).
//		Path("shapes", "Shape").
//		GoType("*Circle").
//		Detail("method set does not implement the sum").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidDiscriminant(errors.PhaseDispatch, path, -1, 2)
//	err := errors.Duplicate(errors.PhaseGenerate, path, "Circle")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
