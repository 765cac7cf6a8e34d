package errors

// ErrorCode is a machine-oriented code attached to every AppError, used for
// structured logging and for tests that must not depend on message wording.
type ErrorCode int32

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_HTTP_OK

	// Input errors (client-caused, 400-class)
	ErrorCode_MISSING_INPUT
	ErrorCode_EMPTY_INPUT
	ErrorCode_INPUT_TOO_LARGE
	ErrorCode_INVALID_FILE_TYPE
	ErrorCode_FILE_TOO_LARGE
	ErrorCode_INVALID_PAYLOAD

	// Upstream-shape errors (server-side, 500-class)
	ErrorCode_MALFORMED_AI_RESPONSE
	ErrorCode_INVALID_AI_RESPONSE_SHAPE

	// Upstream-transport errors (classified heuristically)
	ErrorCode_AUTH_FAILED
	ErrorCode_RATE_LIMITED
	ErrorCode_UPSTREAM_TIMEOUT
	ErrorCode_PROCESSING_FAILED

	ErrorCode_NOT_FOUND
)

var codeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                  "INTERNAL",
	ErrorCode_HTTP_OK:                   "HTTP_OK",
	ErrorCode_MISSING_INPUT:             "MISSING_INPUT",
	ErrorCode_EMPTY_INPUT:               "EMPTY_INPUT",
	ErrorCode_INPUT_TOO_LARGE:           "INPUT_TOO_LARGE",
	ErrorCode_INVALID_FILE_TYPE:         "INVALID_FILE_TYPE",
	ErrorCode_FILE_TOO_LARGE:            "FILE_TOO_LARGE",
	ErrorCode_INVALID_PAYLOAD:           "INVALID_PAYLOAD",
	ErrorCode_MALFORMED_AI_RESPONSE:     "MALFORMED_AI_RESPONSE",
	ErrorCode_INVALID_AI_RESPONSE_SHAPE: "INVALID_AI_RESPONSE_SHAPE",
	ErrorCode_AUTH_FAILED:               "AUTH_FAILED",
	ErrorCode_RATE_LIMITED:              "RATE_LIMITED",
	ErrorCode_UPSTREAM_TIMEOUT:          "UPSTREAM_TIMEOUT",
	ErrorCode_PROCESSING_FAILED:         "PROCESSING_FAILED",
	ErrorCode_NOT_FOUND:                 "NOT_FOUND",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
