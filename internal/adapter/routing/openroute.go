// Package routing provides driving-time lookups via the OpenRouteService
// directions API.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

// DefaultAPIURL is the OpenRouteService driving-car directions endpoint.
const DefaultAPIURL = "https://api.openrouteservice.org/v2/directions/driving-car"

const defaultTimeout = 15 * time.Second

// Config holds the OpenRouteService client settings.
type Config struct {
	// URL is the directions endpoint. Defaults to DefaultAPIURL.
	URL string

	// APIKey is the OpenRouteService key. When empty every lookup
	// returns unknown without issuing a request.
	APIKey string

	// Timeout bounds each directions request.
	Timeout time.Duration
}

// OpenRouteClient resolves driving times between coordinates. It implements
// domain.RoutingProvider.
//
// Routing is best effort: any failure (missing key, transport error,
// non-2xx status, empty route set) yields an unknown duration rather than
// an error, so a routing outage never fails a search.
type OpenRouteClient struct {
	cfg        Config
	httpClient *http.Client
	log        zerolog.Logger
}

// NewOpenRouteClient creates a routing client. Zero config values fall back
// to defaults.
func NewOpenRouteClient(cfg Config, log zerolog.Logger) *OpenRouteClient {
	if cfg.URL == "" {
		cfg.URL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &OpenRouteClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

type directionsRequest struct {
	// Coordinates are [lon, lat] pairs, origin first.
	Coordinates [][2]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			// Duration is the travel time in seconds.
			Duration float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// DrivingMinutes implements domain.RoutingProvider. It returns the driving
// time in minutes from one coordinate to another, or nil when the duration
// cannot be determined.
func (c *OpenRouteClient) DrivingMinutes(ctx context.Context, from, to domain.Coordinate) *float64 {
	if c.cfg.APIKey == "" {
		return nil
	}

	body, err := json.Marshal(directionsRequest{
		Coordinates: [][2]float64{{from.Lon, from.Lat}, {to.Lon, to.Lat}},
	})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Msg("Directions request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug().Int("status", resp.StatusCode).Msg("Directions request rejected")
		return nil
	}

	var parsed directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.log.Debug().Err(err).Msg("Directions response unreadable")
		return nil
	}
	if len(parsed.Routes) == 0 {
		return nil
	}

	minutes := parsed.Routes[0].Summary.Duration / 60
	return &minutes
}

// Ensure OpenRouteClient implements domain.RoutingProvider at compile time.
var _ domain.RoutingProvider = (*OpenRouteClient)(nil)
