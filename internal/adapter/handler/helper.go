package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lethanhdat/meeting-extractor/errors"
	dtomeeting "github.com/lethanhdat/meeting-extractor/internal/adapter/dto/meeting"
)

// getRequestID tries to read X-Request-ID from the request, falling back to
// the ID generated by the RequestID middleware.
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleError centralizes error handling and logging. Every failure path
// produces the structured {error, message, details?} body; details only
// when verbose (non-production) and a raw cause exists.
func HandleError(logger *zap.Logger, c echo.Context, err error, verbose bool) error {
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Int("status", appErr.HTTPCode),
			zap.Error(err),
		)
	}

	body := dtomeeting.ErrorResponse{
		Error:   appErr.Label,
		Message: appErr.Message,
	}
	if verbose && appErr.Raw != nil {
		body.Details = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, body)
}

// NewHTTPErrorHandler shapes framework-level failures (unknown routes,
// body-limit rejections) into the same JSON error body the handlers use.
func NewHTTPErrorHandler(logger *zap.Logger, verbose bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr errors.AppError
		if !stdErrors.As(err, &appErr) {
			var httpErr *echo.HTTPError
			if stdErrors.As(err, &httpErr) {
				switch httpErr.Code {
				case http.StatusNotFound, http.StatusMethodNotAllowed:
					appErr = errors.ErrNotFound(c.Request().URL.Path)
				case http.StatusRequestEntityTooLarge:
					appErr = errors.ErrBodyTooLarge()
				default:
					appErr = errors.ErrInternal(err)
				}
			} else {
				appErr = errors.ErrInternal(err)
			}
		}

		if writeErr := HandleError(logger, c, appErr, verbose); writeErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
