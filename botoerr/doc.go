// Package botoerr defines the error taxonomy raised by every component of
// the client core: credential resolution, configuration loading, request
// validation, endpoint resolution, pagination, waiters, hook dispatch and
// streaming I/O.
//
// # Error Kinds
//
// Each failure category is a concrete type with a fixed message template and
// a fixed set of named fields supplied at construction:
//
//	err := botoerr.NewRangeError("Count", 50, 1, 10)
//	err.Error() // "Value out of range for param Count: 1 <= 50 <= 10"
//
// The message is rendered exactly once, at construction. Instances are
// immutable afterwards and safe to share across goroutines.
//
// # Structured Inspection
//
// Catching code should read fields instead of parsing message text:
//
//	var re *botoerr.RangeError
//	if errors.As(err, &re) {
//	    max, _ := re.Field("max_value")
//	    ...
//	}
//
// Field returns the exact value supplied at construction, or false for a
// name that was never supplied.
//
// # The Validation Category
//
// UnknownKeyError, RangeError and UnknownParameterError all belong to the
// validation family rooted at ValidationError. Callers that do not care
// which narrow kind occurred match the category:
//
//	if botoerr.IsValidation(err) {
//	    // any parameter validation problem
//	}
//
// Every other kind is a leaf; no further categories exist.
//
// # Message Conventions
//
// Rendered messages are the only human-readable surface and are matched
// textually by downstream tooling, so templates are fixed byte-for-byte.
// List-valued fields render bracketed with string elements single-quoted:
//
//	['Read', 'Write']
//
// # Construction Failures
//
// A template placeholder with no matching field is a fault in itself: the
// dynamic New path returns the substitution error instead of an instance,
// and the typed constructors treat a mismatch in the kind table as a
// programming error and panic. A partially rendered message is never
// produced.
package botoerr
