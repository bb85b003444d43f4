// Package http provides the HTTP handler layer for the ski stay search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all ski stay search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Auth group
	auth := api.Group("/auth")
	auth.POST("/send-otp", h.SendOTP)
	auth.POST("/verify-otp", h.VerifyOTP)
	auth.GET("/validate", h.ValidateToken)

	// Resorts group
	resorts := api.Group("/resorts")
	resorts.GET("", h.ListResorts)
	resorts.GET("/stats", h.ResortStats)

	// Homes group
	homes := api.Group("/homes")
	homes.POST("/search", h.SearchHomes)
}
