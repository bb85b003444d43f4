// Package http provides the HTTP handler layer for the ski stay search API.
package http

// SendOTPResponse is the response body for a successful passcode request.
type SendOTPResponse struct {
	Success bool   `json:"success"`
	Mode    string `json:"mode"`
	Length  int    `json:"length"`
}

// VerifyOTPResponse is the response body for a successful passcode exchange.
type VerifyOTPResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ValidateTokenResponse is the response body for a token validation check.
type ValidateTokenResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ResortDTO is one resort in the catalog listing.
type ResortDTO struct {
	Resort    string  `json:"resort"`
	Region    string  `json:"region"`
	State     *string `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ResortListResponse is the response body for the resort catalog listing.
type ResortListResponse struct {
	Regions []string    `json:"regions"`
	Resorts []ResortDTO `json:"resorts"`
}

// ResortStatsDTO is one resort's mountain statistics.
type ResortStatsDTO struct {
	Resort         string   `json:"resort"`
	Region         string   `json:"region"`
	State          *string  `json:"state"`
	SkiableAcres   *float64 `json:"skiable_acres"`
	VerticalDrop   *float64 `json:"vertical_drop"`
	AnnualSnowfall *float64 `json:"annual_snowfall"`
}

// ResortStatsResponse is the response body for the resort statistics listing.
type ResortStatsResponse struct {
	Resorts []ResortStatsDTO `json:"resorts"`
	Regions []string         `json:"regions"`
}
