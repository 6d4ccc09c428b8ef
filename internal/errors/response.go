package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse represents the standardized error document printed for failed operations
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Kind:    KindOf(code).String(),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details
// fieldErrors is a map of field names to their error messages
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// FromAppError renders an AppError, keeping the wrapped cause as a detail line
func FromAppError(err *AppError, traceID string) *ErrorResponse {
	opts := []ErrorOption{}
	if len(err.Details) > 0 {
		opts = append(opts, WithDetails(err.Details...))
	} else if err.Err != nil {
		opts = append(opts, WithDetails(err.Err.Error()))
	}
	return NewErrorResponse(err.Code, traceID, opts...)
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetExitCode returns the process exit status for the error code
func GetExitCode(code ErrorCode) int {
	switch KindOf(code) {
	case KindValidation:
		return 2
	case KindNotFound:
		return 3
	case KindConflict:
		return 4
	case KindPersistenceFailed:
		return 5
	default:
		return 1
	}
}

// GetExitCode returns the process exit status for the error response
func (er *ErrorResponse) GetExitCode() int {
	return GetExitCode(ErrorCode(er.Error.Code))
}

// IsClientError returns true if the failure was caused by the caller's input
func (er *ErrorResponse) IsClientError() bool {
	switch KindOf(ErrorCode(er.Error.Code)) {
	case KindValidation, KindNotFound, KindConflict:
		return true
	}
	return false
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
