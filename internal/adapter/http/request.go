// Package http provides the HTTP handler layer for the ski stay search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
)

// SearchHomesRequest represents the request body for a home search.
type SearchHomesRequest struct {
	// StartDate is the first acceptable date in YYYY-MM-DD format
	StartDate string `json:"startDate"`

	// EndDate is the last acceptable date in YYYY-MM-DD format
	EndDate string `json:"endDate"`

	// Regions restricts the search to resorts in these regions (optional)
	Regions []string `json:"regions,omitempty"`

	// Resorts restricts the search to these resorts by name (optional)
	Resorts []string `json:"resorts,omitempty"`

	// MileRange is the search radius around each resort in miles (default: 35)
	MileRange float64 `json:"mileRange,omitempty"`

	// DateType selects date matching: flexible or exact (default: flexible)
	DateType string `json:"dateType,omitempty"`

	// MinNights is the minimum stay length for flexible searches
	MinNights int `json:"minNights,omitempty"`

	// MinSkiableAcres drops resorts below this skiable acreage (optional)
	MinSkiableAcres *float64 `json:"minSkiableAcres,omitempty" example:"2000"`

	// MinVerticalDrop drops resorts below this vertical drop in feet (optional)
	MinVerticalDrop *float64 `json:"minVerticalDrop,omitempty" example:"3000"`

	// MinAnnualSnowfall drops resorts below this snowfall in inches (optional)
	MinAnnualSnowfall *float64 `json:"minAnnualSnowfall,omitempty" example:"300"`

	// NumberOfPeople is the guest count the home must accommodate
	NumberOfPeople int `json:"numberOfPeople,omitempty"`

	// PetsAllowed requests only homes open to hosting pets
	PetsAllowed bool `json:"petsAllowed,omitempty"`
}

// SendOTPRequest represents the request body for requesting a login passcode.
type SendOTPRequest struct {
	// Email is the address the passcode is sent to
	Email string `json:"email"`
}

// VerifyOTPRequest represents the request body for exchanging a passcode.
type VerifyOTPRequest struct {
	// Email is the address the passcode was sent to
	Email string `json:"email"`

	// OTP is the emailed one-time passcode
	OTP string `json:"otp"`
}

// Validation regex patterns.
var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Valid date type values.
var validDateTypes = map[string]bool{
	"flexible": true,
	"exact":    true,
	"":         true, // Empty is valid (defaults to flexible)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Domain-level validation runs again inside the use case; this pass catches
// structural problems early with field-specific messages.
func (r *SearchHomesRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateDate(errs, "startDate", r.StartDate)
	r.validateDate(errs, "endDate", r.EndDate)

	if r.MileRange < 0 {
		errs.Add("mileRange", "mileRange must be a positive number")
	}

	if !validDateTypes[strings.ToLower(r.DateType)] {
		errs.Add("dateType", "dateType must be one of: flexible, exact")
	}

	if r.MinNights < 0 {
		errs.Add("minNights", "minNights must be a non-negative number")
	}

	if r.NumberOfPeople < 0 {
		errs.Add("numberOfPeople", "numberOfPeople must be a non-negative number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchHomesRequest) validateDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, field+" is required")
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
	}
}

// Validate validates the send-OTP request.
func (r *SendOTPRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Email == "" {
		errs.Add("email", "email is required")
	} else if !emailPattern.MatchString(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the verify-OTP request.
func (r *VerifyOTPRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Email == "" {
		errs.Add("email", "email is required")
	}
	if r.OTP == "" {
		errs.Add("otp", "otp is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
