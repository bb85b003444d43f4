package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. CORS - First, so preflight requests are answered before anything else
//  2. RequestID - Generates/propagates the request ID for all subsequent logging
//  3. RequestLogger - Logs all requests with request ID
//  4. Recover - Catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, allowedOrigins []string) {
	e.Use(CORS(allowedOrigins))
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
