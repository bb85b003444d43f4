// Package domain contains the core business entities and rules for the ski
// stay search system. These entities are transport-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"regexp"
	"time"
)

// Default search parameter values.
const (
	// DefaultMileRadius is the search radius around each resort in miles.
	DefaultMileRadius = 35.0

	// DefaultPageSize is the upstream page size for explore queries.
	DefaultPageSize = 50
)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// SearchCriteria defines the parameters for a home search request.
// It is constructed once per request and treated as immutable afterwards.
type SearchCriteria struct {
	// StartDate is the first acceptable date in YYYY-MM-DD format.
	StartDate string `json:"startDate"`

	// EndDate is the last acceptable date in YYYY-MM-DD format.
	EndDate string `json:"endDate"`

	// Regions restricts the resort candidate set to these region names.
	// Empty means all regions.
	Regions []string `json:"regions,omitempty"`

	// Resorts restricts the resort candidate set to these resort names.
	// Empty means all resorts.
	Resorts []string `json:"resorts,omitempty"`

	// MileRadius is the search radius around each resort (default: 35).
	MileRadius float64 `json:"mileRadius"`

	// DateMode selects flexible or exact date matching (default: flexible).
	DateMode DateMode `json:"dateMode"`

	// MinNights is the minimum stay length, used only in flexible mode.
	MinNights int `json:"minNights"`

	// MinSkiableAcres drops resorts below this skiable acreage (optional).
	MinSkiableAcres *float64 `json:"minSkiableAcres,omitempty"`

	// MinVerticalDrop drops resorts below this vertical drop in feet (optional).
	MinVerticalDrop *float64 `json:"minVerticalDrop,omitempty"`

	// MinAnnualSnowfall drops resorts below this annual snowfall in inches (optional).
	MinAnnualSnowfall *float64 `json:"minAnnualSnowfall,omitempty"`

	// GuestCount is the number of guests the home must accommodate.
	GuestCount int `json:"guestCount"`

	// PetsAllowed requests only homes open to hosting pets.
	PetsAllowed bool `json:"petsAllowed"`
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (c *SearchCriteria) Validate() error {
	if c.StartDate == "" {
		return WrapInvalidRequest("startDate is required")
	}
	if !dateRegex.MatchString(c.StartDate) {
		return WrapInvalidRequest("startDate must be in YYYY-MM-DD format, got %q", c.StartDate)
	}
	start, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return WrapInvalidRequest("startDate is not a valid date: %s", c.StartDate)
	}

	if c.EndDate == "" {
		return WrapInvalidRequest("endDate is required")
	}
	if !dateRegex.MatchString(c.EndDate) {
		return WrapInvalidRequest("endDate must be in YYYY-MM-DD format, got %q", c.EndDate)
	}
	end, err := time.Parse("2006-01-02", c.EndDate)
	if err != nil {
		return WrapInvalidRequest("endDate is not a valid date: %s", c.EndDate)
	}

	if start.After(end) {
		return WrapInvalidRequest("startDate must not be after endDate")
	}

	if c.MileRadius < 0 {
		return WrapInvalidRequest("mileRadius must be positive, got %v", c.MileRadius)
	}

	if c.DateMode != "" && !c.DateMode.IsValid() {
		return WrapInvalidRequest("dateMode must be one of: flexible, exact; got %q", c.DateMode)
	}

	if c.MinNights < 0 {
		return WrapInvalidRequest("minNights must not be negative")
	}

	if c.GuestCount < 0 {
		return WrapInvalidRequest("guestCount must not be negative")
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (c *SearchCriteria) SetDefaults() {
	if c.MileRadius == 0 {
		c.MileRadius = DefaultMileRadius
	}
	if c.DateMode == "" {
		c.DateMode = DateModeFlexible
	}
}

// DateBounds parses the criteria's calendar dates.
// Call Validate first; unparsable dates return a wrapped ErrInvalidRequest.
func (c *SearchCriteria) DateBounds() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, WrapInvalidRequest("startDate is not a valid date: %s", c.StartDate)
	}
	end, err = time.Parse("2006-01-02", c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, WrapInvalidRequest("endDate is not a valid date: %s", c.EndDate)
	}
	return start, end, nil
}
