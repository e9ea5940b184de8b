// Package errors provides structured error types for the knownfolders
// module.
//
// Errors are categorized by Phase (where in a run the error occurred)
// and Kind (error category). Fatal conditions — bad arguments, a failed
// session open, a broken registry record — are *Error values propagated
// unchanged to the top level. A per-entry path-resolution failure is
// not fatal and never propagates: it is carried as data on the entry's
// Record instead.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindServiceFailure).
//		Detail("element not found").
//		Cause(hresult).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BannedFlag("KF_FLAG_CREATE")
//	err := errors.InvalidUTF16("folder name")
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
