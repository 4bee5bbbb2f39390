package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"
)

// ErrorHandler returns an echo.HTTPErrorHandler that renders the 404 and
// 500 pages.  Other HTTP errors keep their status and are rendered with
// the 500 page body.  Unexpected errors are logged.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
    return func(err error, c echo.Context) {
        if c.Response().Committed {
            return
        }
        code := http.StatusInternalServerError
        var he *echo.HTTPError
        if errors.As(err, &he) {
            code = he.Code
        }
        if code >= http.StatusInternalServerError && (he == nil || he.Internal == nil) {
            logger.Error("request failed",
                zap.Error(err),
                zap.String("method", c.Request().Method),
                zap.String("path", c.Request().URL.Path),
            )
        }
        page := "errors/500"
        if code == http.StatusNotFound {
            page = "errors/404"
        }
        if c.Request().Method == http.MethodHead {
            _ = c.NoContent(code)
            return
        }
        if rerr := c.Render(code, page, nil); rerr != nil {
            logger.Error("render error page", zap.Error(rerr))
            _ = c.String(code, http.StatusText(code))
        }
    }
}
