// Package http provides the HTTP handler layer for the ski stay search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ski-stay/ski-stay-search/internal/adapter/http/response"
	"github.com/ski-stay/ski-stay-search/internal/adapter/kindred"
	"github.com/ski-stay/ski-stay-search/internal/domain"
	"github.com/ski-stay/ski-stay-search/internal/usecase"
)

// bearerPrefix is the Authorization scheme accepted by token-carrying
// endpoints.
const bearerPrefix = "Bearer "

// AuthService drives the upstream OTP login flow.
// Implemented by kindred.AuthClient.
type AuthService interface {
	SendOTP(ctx context.Context, email string) (*kindred.OTPChallenge, error)
	VerifyOTP(ctx context.Context, email, otp string) (*kindred.Credentials, error)
	Validate(ctx context.Context, token string) (bool, error)
}

// Handler handles HTTP requests for all API endpoints.
type Handler struct {
	useCase usecase.HomeSearchUseCase
	auth    AuthService
	resorts *domain.ResortTable
}

// NewHandler creates a new Handler with the given dependencies.
func NewHandler(uc usecase.HomeSearchUseCase, auth AuthService, resorts *domain.ResortTable) *Handler {
	return &Handler{
		useCase: uc,
		auth:    auth,
		resorts: resorts,
	}
}

// bearerToken extracts the bearer token from the Authorization header, or
// "" when the header is missing or not a bearer credential.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}

// SearchHomes handles POST /api/v1/homes/search
//
// @Summary Search for homes near ski resorts
// @Description Search short-term rentals around every resort matching the criteria
// @Tags homes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body SearchHomesRequest true "Search criteria"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Failure 502 {object} response.ErrorDetail "Upstream rejection"
// @Router /api/v1/homes/search [post]
func (h *Handler) SearchHomes(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return response.Unauthorized(c)
	}

	var req SearchHomesRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria, token)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// SendOTP handles POST /api/v1/auth/send-otp
//
// @Summary Request a login passcode
// @Description Ask the rental platform to email a one-time passcode
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SendOTPRequest true "Email address"
// @Success 200 {object} SendOTPResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream rejection"
// @Router /api/v1/auth/send-otp [post]
func (h *Handler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	challenge, err := h.auth.SendOTP(c.Request().Context(), req.Email)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &SendOTPResponse{
		Success: true,
		Mode:    challenge.Mode,
		Length:  challenge.Length,
	})
}

// VerifyOTP handles POST /api/v1/auth/verify-otp
//
// @Summary Exchange a passcode for tokens
// @Description Exchange the emailed one-time passcode for access and refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Email and passcode"
// @Success 200 {object} VerifyOTPResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream rejection"
// @Router /api/v1/auth/verify-otp [post]
func (h *Handler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	creds, err := h.auth.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &VerifyOTPResponse{
		Success:      true,
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
	})
}

// ValidateToken handles GET /api/v1/auth/validate
//
// @Summary Validate a bearer token
// @Description Check whether the supplied bearer token is still accepted upstream
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} ValidateTokenResponse
// @Failure 401 {object} ValidateTokenResponse "Missing or rejected token"
// @Router /api/v1/auth/validate [get]
func (h *Handler) ValidateToken(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return c.JSON(nethttp.StatusUnauthorized, &ValidateTokenResponse{Valid: false, Error: "No token provided"})
	}

	valid, err := h.auth.Validate(c.Request().Context(), token)
	if err != nil || !valid {
		return c.JSON(nethttp.StatusUnauthorized, &ValidateTokenResponse{Valid: false, Error: "Invalid token"})
	}

	return response.OK(c, &ValidateTokenResponse{Valid: true})
}

// ListResorts handles GET /api/v1/resorts
//
// @Summary List the resort catalog
// @Description List all known resorts with their regions and coordinates
// @Tags resorts
// @Produce json
// @Success 200 {object} ResortListResponse
// @Router /api/v1/resorts [get]
func (h *Handler) ListResorts(c echo.Context) error {
	return response.OK(c, ToResortListResponse(h.resorts))
}

// ResortStats handles GET /api/v1/resorts/stats
//
// @Summary List resort mountain statistics
// @Description List skiable acreage, vertical drop and snowfall for every resort
// @Tags resorts
// @Produce json
// @Success 200 {object} ResortStatsResponse
// @Router /api/v1/resorts/stats [get]
func (h *Handler) ResortStats(c echo.Context) error {
	return response.OK(c, ToResortStatsResponse(h.resorts))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return response.Unauthorized(c)
	}

	if domain.IsInvalidRequest(err) || domain.IsInvalidDateRange(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Upstream rejections carry the platform's message through verbatim.
	if domain.IsUpstream(err) {
		return response.UpstreamError(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}
