package domain

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// UpstreamQuery carries everything one polygon's paginated upstream search
// needs. The bearer token is captured once when the query is built and used
// for every page, so a token refresh between requests never interrupts an
// in-flight search.
type UpstreamQuery struct {
	// Polygon is the geographic search boundary.
	Polygon GeoPolygon

	// DateRanges is the full partitioned date-range list; the upstream
	// service matches across all supplied ranges on every page.
	DateRanges []DateRange

	// DateMode selects the upstream trip type.
	DateMode DateMode

	// MinNights is the minimum stay length, flexible mode only.
	MinNights int

	// PageSize is the upstream page size.
	PageSize int

	// TotalGuests is the number of guests the home must accommodate.
	TotalGuests int

	// PetsAllowed toggles the upstream pet filter and the client-side
	// pet post-filter.
	PetsAllowed bool

	// Token is the bearer credential for every page of this query.
	Token string
}

// HomeSearcher performs paginated queries against the upstream search API
// for one polygon, returning the flat list of raw listings across all
// pages. Implementations fail fast with an UpstreamError on any transport
// or GraphQL error; there is no internal retry.
type HomeSearcher interface {
	Search(ctx context.Context, query UpstreamQuery) ([]RawListing, error)
}

// RoutingProvider estimates car travel time between two points.
// A nil result means no route is available; routing is best-effort
// enrichment and never a hard dependency, so implementations return nil
// instead of an error on any failure.
type RoutingProvider interface {
	DrivingMinutes(ctx context.Context, from, to Coordinate) *float64
}

// GraphQLExecutor posts one authenticated GraphQL operation to the rental
// platform. It fails with an UpstreamError on a non-2xx HTTP status or an
// errors field in the response envelope.
type GraphQLExecutor interface {
	Do(ctx context.Context, operationName, query string, variables map[string]interface{}, token string) (json.RawMessage, error)
}
