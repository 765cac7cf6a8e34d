package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application. Label is the short
// machine-usable `error` field of the wire response; Message is the
// human-readable explanation. Raw carries the underlying cause and is only
// exposed to callers outside production mode.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Label    string
	Message  string
}

// Error implements the error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// Input errors

func ErrMissingInput() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_INPUT,
		Label:    "Missing input",
		Message:  "Provide meeting notes as a text field or an uploaded file",
	}
}

func ErrEmptyInput() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_EMPTY_INPUT,
		Label:    "Empty input",
		Message:  "Meeting notes are empty after trimming whitespace",
	}
}

func ErrInputTooLarge(length, limit int) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INPUT_TOO_LARGE,
		Label:    "Input too large",
		Message:  fmt.Sprintf("Input is %d characters; the maximum is %d", length, limit),
	}
}

func ErrInvalidFileType(contentType string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_FILE_TYPE,
		Label:    "Invalid file type",
		Message:  fmt.Sprintf("Only plain text files are accepted, got %q", contentType),
	}
}

func ErrFileTooLarge(size, limit int64) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_FILE_TOO_LARGE,
		Label:    "File too large",
		Message:  fmt.Sprintf("Uploaded file is %d bytes; the maximum is %d", size, limit),
	}
}

func ErrBodyTooLarge() AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_FILE_TOO_LARGE,
		Label:    "File too large",
		Message:  "Request body exceeds the transport limit",
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Label:    "Missing input",
		Message:  "Request body could not be parsed",
	}
}

// Upstream-shape errors. Both surface as a generic processing failure at the
// boundary; the distinct codes keep the cause visible in logs.

func ErrMalformedAIResponse(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_MALFORMED_AI_RESPONSE,
		Label:    "Processing failed",
		Message:  "The AI service returned a response that could not be parsed",
	}
}

func ErrInvalidAIResponseShape(detail string) AppError {
	return AppError{
		Raw:      fmt.Errorf("invalid response shape: %s", detail),
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INVALID_AI_RESPONSE_SHAPE,
		Label:    "Processing failed",
		Message:  "The AI service returned a response with an unexpected structure",
	}
}

// Upstream-transport errors

func ErrAuthenticationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_FAILED,
		Label:    "Authentication failed",
		Message:  "Invalid or missing API key",
	}
}

func ErrRateLimitExceeded(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrorCode_RATE_LIMITED,
		Label:    "Rate limit exceeded",
		Message:  "The AI service rejected the request due to quota or rate limits",
	}
}

func ErrUpstreamTimeout(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusGatewayTimeout,
		Code:     ErrorCode_UPSTREAM_TIMEOUT,
		Label:    "Request timeout",
		Message:  "The AI service did not respond in time",
	}
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROCESSING_FAILED,
		Label:    "Processing failed",
		Message:  "Failed to process the meeting notes",
	}
}

func ErrNotFound(path string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Label:    "Not found",
		Message:  fmt.Sprintf("No route for %s", path),
	}
}

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Label:    "Processing failed",
		Message:  "Internal server error",
	}
}
