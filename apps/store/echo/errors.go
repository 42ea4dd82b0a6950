package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

var errRecordNotFound = echo.NewHTTPError(http.StatusNotFound, "record not found")

// newStoreHTTPErrorHandler writes failures as plain text: clients surface
// the raw body as the user-facing error detail, so no JSON envelope.
// signalShutdown is called whenever a core.shutdown error is caught.
func newStoreHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = origErr.Code
			if msg, ok := origErr.Message.(string); ok {
				message = msg
			}
		default:
			logger.Error(message, err)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.String(code, message)
			}
			if err != nil {
				logger.Error("writing error response", err)
			}
		}
	}
}
