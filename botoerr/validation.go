package botoerr

import "errors"

// Templates for the validation family. Same matching rules as kinds.go,
// including the doubled space after the period.
const (
	validationFormat       = "Invalid value ('{value}') for param {param} of type {type_name}"
	unknownKeyFormat       = "Unknown key '{value}' for param '{param}'.  Must be one of: {choices}"
	rangeFormat            = "Value out of range for param {param}: {min_value} <= {value} <= {max_value}"
	unknownParameterFormat = "Unknown parameter '{name}' for operation {operation}.  Must be one of: {choices}"
)

// Validation is implemented by every error in the parameter-validation
// family: the category root ValidationError and each narrower kind. Callers
// that want to handle any validation failure uniformly match on it:
//
//	var v botoerr.Validation
//	if errors.As(err, &v) { ... }
//
// or use IsValidation. This is the only intermediate category in the
// taxonomy; every other kind is a leaf.
type Validation interface {
	Error
	validation()
}

// IsValidation reports whether any error in err's chain belongs to the
// validation family.
func IsValidation(err error) bool {
	var v Validation
	return errors.As(err, &v)
}

// AsValidation returns the first validation-family error in err's chain.
func AsValidation(err error) (Validation, bool) {
	var v Validation
	ok := errors.As(err, &v)
	return v, ok
}

// ValidationError is the category root: a parameter value failed validation.
// Narrower kinds embed it so they are catchable both as themselves and as
// the category; each still renders through its own complete template.
type ValidationError struct{ baseError }

func (*ValidationError) validation() {}

// NewValidationError constructs the category-root validation error.
func NewValidationError(value any, param, typeName string) *ValidationError {
	return &ValidationError{newBase("ValidationError", validationFormat, Fields{
		"value":     value,
		"param":     param,
		"type_name": typeName,
	})}
}

// UnknownKeyError reports an unknown key inside a structure parameter.
type UnknownKeyError struct{ ValidationError }

// NewUnknownKeyError constructs an UnknownKeyError listing the valid choices.
func NewUnknownKeyError(value any, param string, choices []string) *UnknownKeyError {
	return &UnknownKeyError{ValidationError{newBase("UnknownKeyError", unknownKeyFormat, Fields{
		"value":   value,
		"param":   param,
		"choices": choices,
	})}}
}

// RangeError reports a parameter value outside its valid range.
type RangeError struct{ ValidationError }

// NewRangeError constructs a RangeError with the violated bounds.
func NewRangeError(param string, value, minValue, maxValue any) *RangeError {
	return &RangeError{ValidationError{newBase("RangeError", rangeFormat, Fields{
		"param":     param,
		"value":     value,
		"min_value": minValue,
		"max_value": maxValue,
	})}}
}

// UnknownParameterError reports an unknown top-level operation parameter.
type UnknownParameterError struct{ ValidationError }

// NewUnknownParameterError constructs an UnknownParameterError listing the
// parameters the operation accepts.
func NewUnknownParameterError(name, operation string, choices []string) *UnknownParameterError {
	return &UnknownParameterError{ValidationError{newBase("UnknownParameterError", unknownParameterFormat, Fields{
		"name":      name,
		"operation": operation,
		"choices":   choices,
	})}}
}
