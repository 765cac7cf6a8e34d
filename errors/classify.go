package errors

import (
	stderrors "errors"
	"strings"
)

// ClassifyUpstream maps an upstream AI-service error to an AppError by
// substring inspection of its message. This mirrors the error surface the
// provider actually exposes: there is no typed error channel, so the mapping
// is a best-effort heuristic and is deliberately kept in one place so it can
// be replaced without touching request handling.
//
// Priority order matters and is preserved as observed: API key beats
// quota/rate-limit beats timeout beats generic. Overlapping substrings in a
// single upstream message resolve to the first match.
func ClassifyUpstream(err error) AppError {
	if err == nil {
		return ErrProcessingFailed(nil)
	}

	var appErr AppError
	if stderrors.As(err, &appErr) {
		// Already classified further down the pipeline.
		return appErr
	}

	lower := strings.ToLower(err.Error())

	switch {
	case strings.Contains(lower, "api key"):
		return ErrAuthenticationFailed(err)
	case strings.Contains(lower, "quota") || strings.Contains(lower, "rate limit"):
		return ErrRateLimitExceeded(err)
	case strings.Contains(lower, "timeout"):
		return ErrUpstreamTimeout(err)
	default:
		return ErrProcessingFailed(err)
	}
}
