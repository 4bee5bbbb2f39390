package middleware

import (
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// RequestLogger writes one line per request.  Server errors log at error
// level, client errors at warn and everything else at info.  It must run
// inside echo's RequestID middleware to pick up the id.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                // Let the error handler write the response so the status is final.
                c.Error(err)
            }
            res := c.Response()
            status := res.Status

            level := zapcore.InfoLevel
            switch {
            case status >= 500:
                level = zapcore.ErrorLevel
            case status >= 400:
                level = zapcore.WarnLevel
            }
            if ce := logger.Check(level, "request"); ce != nil {
                ce.Write(
                    zap.String("method", c.Request().Method),
                    zap.String("path", c.Request().URL.Path),
                    zap.String("route", c.Path()),
                    zap.Int("status", status),
                    zap.Duration("latency", time.Since(start)),
                    zap.String("remote_ip", c.RealIP()),
                    zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
                )
            }
            return nil
        }
    }
}
