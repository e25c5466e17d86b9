package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/lokamart/lokamart/internal/pkg/logger"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	StackSize int
	Logger    *logger.ZapLogger
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig() PanicRecoveryConfig {
	return PanicRecoveryConfig{
		StackSize: 4 << 10, // 4 KB
	}
}

// PanicRecoveryMiddleware creates a middleware that recovers from
// panics, logs the stack trace and returns a 500 response.
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	return PanicRecoveryMiddleware(config)
}

func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	stack := debug.Stack()
	if len(stack) > config.StackSize {
		stack = stack[:config.StackSize]
	}

	config.Logger.Error("Recovered from panic",
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.Err(err),
		logger.String("stack", string(stack)))

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}
}
