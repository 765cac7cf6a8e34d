package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassifyUpstream_APIKey(t *testing.T) {
	err := stderrors.New("groq returned status 401: invalid API key provided")
	appErr := ClassifyUpstream(err)
	if appErr.HTTPCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", appErr.HTTPCode)
	}
	if appErr.Label != "Authentication failed" {
		t.Fatalf("unexpected label %q", appErr.Label)
	}
}

func TestClassifyUpstream_Quota(t *testing.T) {
	err := stderrors.New("groq returned status 429: quota exceeded for this billing period")
	appErr := ClassifyUpstream(err)
	if appErr.HTTPCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", appErr.HTTPCode)
	}
	if appErr.Label != "Rate limit exceeded" {
		t.Fatalf("unexpected label %q", appErr.Label)
	}
}

func TestClassifyUpstream_RateLimit(t *testing.T) {
	appErr := ClassifyUpstream(stderrors.New("rate limit reached for model"))
	if appErr.Code != ErrorCode_RATE_LIMITED {
		t.Fatalf("expected RATE_LIMITED, got %s", appErr.Code)
	}
}

func TestClassifyUpstream_Timeout(t *testing.T) {
	appErr := ClassifyUpstream(stderrors.New("request failed: context deadline exceeded (Client.Timeout exceeded while awaiting headers); timeout"))
	if appErr.HTTPCode != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", appErr.HTTPCode)
	}
	if appErr.Label != "Request timeout" {
		t.Fatalf("unexpected label %q", appErr.Label)
	}
}

func TestClassifyUpstream_Generic(t *testing.T) {
	appErr := ClassifyUpstream(stderrors.New("connection refused"))
	if appErr.HTTPCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", appErr.HTTPCode)
	}
	if appErr.Label != "Processing failed" {
		t.Fatalf("unexpected label %q", appErr.Label)
	}
}

// API key must win over quota and timeout when a message contains several
// trigger substrings; the priority order is part of the observed contract.
func TestClassifyUpstream_PriorityOrder(t *testing.T) {
	appErr := ClassifyUpstream(stderrors.New("API key over quota, request timeout"))
	if appErr.Code != ErrorCode_AUTH_FAILED {
		t.Fatalf("expected AUTH_FAILED, got %s", appErr.Code)
	}

	appErr = ClassifyUpstream(stderrors.New("quota exceeded, retry after timeout"))
	if appErr.Code != ErrorCode_RATE_LIMITED {
		t.Fatalf("expected RATE_LIMITED, got %s", appErr.Code)
	}
}

func TestClassifyUpstream_PassesThroughAppError(t *testing.T) {
	shapeErr := ErrInvalidAIResponseShape("summary is not a string")
	appErr := ClassifyUpstream(fmt.Errorf("pipeline: %w", shapeErr))
	if appErr.Code != ErrorCode_INVALID_AI_RESPONSE_SHAPE {
		t.Fatalf("expected INVALID_AI_RESPONSE_SHAPE, got %s", appErr.Code)
	}
}
