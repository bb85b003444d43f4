// Package mock provides test doubles for the ski stay search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

// Searcher is a configurable mock implementation of domain.HomeSearcher.
// It supports configurable delays, errors, and responses for testing
// various scenarios including upstream failures and slow pages.
type Searcher struct {
	listings  []domain.RawListing
	err       error
	delay     time.Duration
	queries   []domain.UpstreamQuery
	callCount int
	mu        sync.Mutex
}

// NewSearcher creates a new mock searcher.
// The searcher is configured using the builder pattern methods.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// WithListings configures the searcher to return the given listings for
// every query.
func (s *Searcher) WithListings(listings []domain.RawListing) *Searcher {
	s.listings = listings
	return s
}

// WithError configures the searcher to return the given error.
func (s *Searcher) WithError(err error) *Searcher {
	s.err = err
	return s
}

// WithDelay configures the searcher to wait the given duration before
// responding. This is useful for testing cancellation behavior.
func (s *Searcher) WithDelay(d time.Duration) *Searcher {
	s.delay = d
	return s
}

// Search implements domain.HomeSearcher.Search.
// It respects context cancellation, applies configured delay, records the
// query, and returns configured listings or error.
func (s *Searcher) Search(ctx context.Context, query domain.UpstreamQuery) ([]domain.RawListing, error) {
	s.mu.Lock()
	s.callCount++
	s.queries = append(s.queries, query)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}

	return s.listings, nil
}

// CallCount returns the number of times Search was called.
func (s *Searcher) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Queries returns the recorded upstream queries in call order.
func (s *Searcher) Queries() []domain.UpstreamQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.UpstreamQuery, len(s.queries))
	copy(out, s.queries)
	return out
}

// Reset clears the recorded calls.
func (s *Searcher) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
	s.queries = nil
}

// Ensure Searcher implements domain.HomeSearcher at compile time.
var _ domain.HomeSearcher = (*Searcher)(nil)

// Router is a configurable mock implementation of domain.RoutingProvider.
// It returns a fixed driving time for every lookup, or unknown when
// configured with none.
type Router struct {
	minutes   *float64
	callCount int
	mu        sync.Mutex
}

// NewRouter creates a new mock router that reports every driving time as
// unknown until configured.
func NewRouter() *Router {
	return &Router{}
}

// WithMinutes configures the router to return the given driving time.
func (r *Router) WithMinutes(minutes float64) *Router {
	r.minutes = &minutes
	return r
}

// DrivingMinutes implements domain.RoutingProvider.DrivingMinutes.
func (r *Router) DrivingMinutes(context.Context, domain.Coordinate, domain.Coordinate) *float64 {
	r.mu.Lock()
	r.callCount++
	r.mu.Unlock()

	if r.minutes == nil {
		return nil
	}
	v := *r.minutes
	return &v
}

// CallCount returns the number of driving-time lookups performed.
func (r *Router) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.callCount
}

// Ensure Router implements domain.RoutingProvider at compile time.
var _ domain.RoutingProvider = (*Router)(nil)

// SampleListings returns a slice of sample listings for testing.
// The listings have all required fields populated with realistic values
// and availability windows spanning January 2025.
func SampleListings(prefix string, count int) []domain.RawListing {
	listings := make([]domain.RawListing, count)

	for i := 0; i < count; i++ {
		id := fmt.Sprintf("%s-%d", prefix, i+1)
		lat := 39.20 + float64(i)*0.01
		lon := -106.90 - float64(i)*0.01

		listings[i] = domain.RawListing{
			HomeID:          id,
			Title:           "Mountain home " + id,
			DestinationName: "Roaring Fork Valley",
			Lat:             &lat,
			Lon:             &lon,
			MaxGuests:       4 + i%4,
			BedroomsCount:   2 + i%3,
			Bathrooms:       1.5 + float64(i%2),
			PetPreference:   "MAYBE",
			ImageURL:        "https://cdn.example.com/" + id + ".jpg",
			Availabilities: []domain.AvailabilityWindow{
				{
					ID:        "avail-" + id,
					HomeID:    id,
					StartDate: "2025-01-01",
					EndDate:   "2025-01-31",
				},
			},
		}
	}

	return listings
}
