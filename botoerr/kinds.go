package botoerr

// Message templates for the concrete kinds. The wording, punctuation and
// spacing are load-bearing: callers and test suites match on the rendered
// text, so these stay byte-identical to the original service tooling.
const (
	dataNotFoundFormat            = "Unable to load data for: {data_path}"
	noCredentialsFormat           = "Unable to locate credentials"
	noRegionFormat                = "You must specify a region or set the {env_var} environment variable."
	unknownSignatureVersionFormat = "Unknown Signature Version: {signature_version}."
	serviceNotInRegionFormat      = "Service {service_name} not available in region {region_name}"
	profileNotFoundFormat         = "The config profile ({profile}) could not be found"
	configParseFormat             = "Unable to parse config file: {path}"
	configNotFoundFormat          = "The specified config file ({path}) could not be found."
	missingParametersFormat       = "The following required parameters are missing for {object_name}: {missing}"
	unknownServiceStyleFormat     = "The service style ({service_style}) is not understood."
	paginationFormat              = "Error during pagination: {message}"
	eventNotFoundFormat           = "The event ({event_name}) is not known"
	checksumFormat                = "Checksum {checksum_type} failed, expected checksum {expected_checksum} did not match calculated checksum {actual_checksum}."
	unseekableStreamFormat        = "Need to rewind the stream {stream_object}, but stream is not seekable."
	waiterFormat                  = "Waiter {name} failed: {reason}"
	incompleteReadFormat          = "{actual_bytes} read, but total bytes expected is {expected_bytes}."
	invalidExpressionFormat       = "Invalid expression {expression}: Only dotted lookups are supported."
	unknownCredentialFormat       = "Credential named {name} not found."
)

// DataNotFoundError reports that the data for a model path could not be loaded.
type DataNotFoundError struct{ baseError }

// NewDataNotFoundError constructs a DataNotFoundError for the given data path.
func NewDataNotFoundError(dataPath string) *DataNotFoundError {
	return &DataNotFoundError{newBase("DataNotFoundError", dataNotFoundFormat, Fields{
		"data_path": dataPath,
	})}
}

// NoCredentialsError reports that no credentials could be found.
type NoCredentialsError struct{ baseError }

// NewNoCredentialsError constructs a NoCredentialsError.
func NewNoCredentialsError() *NoCredentialsError {
	return &NoCredentialsError{newBase("NoCredentialsError", noCredentialsFormat, Fields{})}
}

// NoRegionError reports that no region was specified. The env_var field names
// the environment variable that supplies the default region.
type NoRegionError struct{ baseError }

// NewNoRegionError constructs a NoRegionError naming the region env var.
func NewNoRegionError(envVar string) *NoRegionError {
	return &NoRegionError{newBase("NoRegionError", noRegionFormat, Fields{
		"env_var": envVar,
	})}
}

// UnknownSignatureVersionError reports a request for an unregistered
// signature version.
type UnknownSignatureVersionError struct{ baseError }

// NewUnknownSignatureVersionError constructs an UnknownSignatureVersionError.
func NewUnknownSignatureVersionError(signatureVersion string) *UnknownSignatureVersionError {
	return &UnknownSignatureVersionError{newBase("UnknownSignatureVersionError", unknownSignatureVersionFormat, Fields{
		"signature_version": signatureVersion,
	})}
}

// ServiceNotInRegionError reports that a service is not available in the
// requested region.
type ServiceNotInRegionError struct{ baseError }

// NewServiceNotInRegionError constructs a ServiceNotInRegionError.
func NewServiceNotInRegionError(serviceName, regionName string) *ServiceNotInRegionError {
	return &ServiceNotInRegionError{newBase("ServiceNotInRegionError", serviceNotInRegionFormat, Fields{
		"service_name": serviceName,
		"region_name":  regionName,
	})}
}

// ProfileNotFoundError reports that a named profile is absent from the
// configuration file.
type ProfileNotFoundError struct{ baseError }

// NewProfileNotFoundError constructs a ProfileNotFoundError.
func NewProfileNotFoundError(profile string) *ProfileNotFoundError {
	return &ProfileNotFoundError{newBase("ProfileNotFoundError", profileNotFoundFormat, Fields{
		"profile": profile,
	})}
}

// ConfigParseError reports that a configuration file could not be parsed.
type ConfigParseError struct{ baseError }

// NewConfigParseError constructs a ConfigParseError for the given file path.
func NewConfigParseError(path string) *ConfigParseError {
	return &ConfigParseError{newBase("ConfigParseError", configParseFormat, Fields{
		"path": path,
	})}
}

// ConfigNotFoundError reports that a configuration file does not exist.
type ConfigNotFoundError struct{ baseError }

// NewConfigNotFoundError constructs a ConfigNotFoundError for the given path.
func NewConfigNotFoundError(path string) *ConfigNotFoundError {
	return &ConfigNotFoundError{newBase("ConfigNotFoundError", configNotFoundFormat, Fields{
		"path": path,
	})}
}

// MissingParametersError reports required parameters absent from a request.
// The object_name field names the operation or parameter owning the missing
// members; missing lists their names.
type MissingParametersError struct{ baseError }

// NewMissingParametersError constructs a MissingParametersError.
func NewMissingParametersError(objectName string, missing []string) *MissingParametersError {
	return &MissingParametersError{newBase("MissingParametersError", missingParametersFormat, Fields{
		"object_name": objectName,
		"missing":     missing,
	})}
}

// UnknownServiceStyleError reports an unrecognized style of service invocation.
type UnknownServiceStyleError struct{ baseError }

// NewUnknownServiceStyleError constructs an UnknownServiceStyleError.
func NewUnknownServiceStyleError(serviceStyle string) *UnknownServiceStyleError {
	return &UnknownServiceStyleError{newBase("UnknownServiceStyleError", unknownServiceStyleFormat, Fields{
		"service_style": serviceStyle,
	})}
}

// PaginationError reports a failure while iterating result pages.
type PaginationError struct{ baseError }

// NewPaginationError constructs a PaginationError with a descriptive message.
func NewPaginationError(message string) *PaginationError {
	return &PaginationError{newBase("PaginationError", paginationFormat, Fields{
		"message": message,
	})}
}

// EventNotFoundError reports a reference to an event name unknown to the
// hook registry.
type EventNotFoundError struct{ baseError }

// NewEventNotFoundError constructs an EventNotFoundError.
func NewEventNotFoundError(eventName string) *EventNotFoundError {
	return &EventNotFoundError{newBase("EventNotFoundError", eventNotFoundFormat, Fields{
		"event_name": eventName,
	})}
}

// ChecksumError reports a mismatch between an expected and calculated checksum.
type ChecksumError struct{ baseError }

// NewChecksumError constructs a ChecksumError naming the algorithm and both
// checksum values.
func NewChecksumError(checksumType, expectedChecksum, actualChecksum string) *ChecksumError {
	return &ChecksumError{newBase("ChecksumError", checksumFormat, Fields{
		"checksum_type":     checksumType,
		"expected_checksum": expectedChecksum,
		"actual_checksum":   actualChecksum,
	})}
}

// UnseekableStreamError reports that a stream needed rewinding but does not
// support seeking.
type UnseekableStreamError struct{ baseError }

// NewUnseekableStreamError constructs an UnseekableStreamError. The stream
// object is retained as supplied; its string form appears in the message.
func NewUnseekableStreamError(streamObject any) *UnseekableStreamError {
	return &UnseekableStreamError{newBase("UnseekableStreamError", unseekableStreamFormat, Fields{
		"stream_object": streamObject,
	})}
}

// WaiterError reports that a waiter failed to reach its desired state.
type WaiterError struct{ baseError }

// NewWaiterError constructs a WaiterError for the named waiter.
func NewWaiterError(name, reason string) *WaiterError {
	return &WaiterError{newBase("WaiterError", waiterFormat, Fields{
		"name":   name,
		"reason": reason,
	})}
}

// IncompleteReadError reports a response body shorter than its declared length.
type IncompleteReadError struct{ baseError }

// NewIncompleteReadError constructs an IncompleteReadError from byte counts.
func NewIncompleteReadError(actualBytes, expectedBytes int64) *IncompleteReadError {
	return &IncompleteReadError{newBase("IncompleteReadError", incompleteReadFormat, Fields{
		"actual_bytes":   actualBytes,
		"expected_bytes": expectedBytes,
	})}
}

// InvalidExpressionError reports an expression the evaluator cannot handle.
type InvalidExpressionError struct{ baseError }

// NewInvalidExpressionError constructs an InvalidExpressionError.
func NewInvalidExpressionError(expression string) *InvalidExpressionError {
	return &InvalidExpressionError{newBase("InvalidExpressionError", invalidExpressionFormat, Fields{
		"expression": expression,
	})}
}

// UnknownCredentialError reports an insert before or after an unregistered
// credential provider name.
type UnknownCredentialError struct{ baseError }

// NewUnknownCredentialError constructs an UnknownCredentialError.
func NewUnknownCredentialError(name string) *UnknownCredentialError {
	return &UnknownCredentialError{newBase("UnknownCredentialError", unknownCredentialFormat, Fields{
		"name": name,
	})}
}
