// Package usecase contains the business logic for multi-resort home
// searches. It orchestrates the polygon construction, upstream paging,
// driving-time enrichment, deduplication and sorting pipeline.
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

// HomeSearchUseCase defines the interface for home search operations.
type HomeSearchUseCase interface {
	// Search runs one multi-resort search with the caller's bearer token
	// and returns the aggregated, sorted results.
	Search(ctx context.Context, criteria domain.SearchCriteria, token string) (*domain.SearchResponse, error)
}

// homeSearchUseCase implements HomeSearchUseCase as a sequential pipeline.
// Resorts are queried one at a time on purpose; the upstream platform is
// paced per page and fanning out across resorts would defeat that pacing.
type homeSearchUseCase struct {
	resorts  *domain.ResortTable
	searcher domain.HomeSearcher
	router   domain.RoutingProvider
	pageSize int
	log      zerolog.Logger
}

// Config contains configuration options for the use case.
type Config struct {
	// PageSize is the upstream page size (default: domain.DefaultPageSize).
	PageSize int
}

// NewHomeSearchUseCase creates a new HomeSearchUseCase over the given
// resort catalog, upstream searcher and routing provider. If config is
// nil, defaults are used.
func NewHomeSearchUseCase(resorts *domain.ResortTable, searcher domain.HomeSearcher, router domain.RoutingProvider, config *Config, log zerolog.Logger) HomeSearchUseCase {
	pageSize := domain.DefaultPageSize
	if config != nil && config.PageSize > 0 {
		pageSize = config.PageSize
	}

	return &homeSearchUseCase{
		resorts:  resorts,
		searcher: searcher,
		router:   router,
		pageSize: pageSize,
		log:      log,
	}
}

// Search implements HomeSearchUseCase.Search.
//
// Pipeline: filter the resort catalog by the criteria, query the upstream
// platform once per surviving resort, enrich every occurrence with a
// driving time, deduplicate by home ID, sort by minimum driving time, and
// keep only homes with at least one availability window overlapping the
// requested dates.
func (uc *homeSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, token string) (*domain.SearchResponse, error) {
	startTime := time.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	searchStart, searchEnd, err := criteria.DateBounds()
	if err != nil {
		return nil, err
	}

	dateRanges, err := domain.PartitionDateRanges(searchStart, searchEnd, criteria.DateMode)
	if err != nil {
		return nil, err
	}

	resorts := uc.resorts.Filter(criteria)
	if len(resorts) == 0 {
		uc.log.Info().Msg("No resorts match the filter criteria")
		return domain.NewSearchResponse(criteria, nil, domain.SearchMetadata{
			SearchTimeMs: time.Since(startTime).Milliseconds(),
		}), nil
	}

	listings, err := uc.queryResorts(ctx, resorts, dateRanges, criteria, token)
	if err != nil {
		return nil, err
	}

	homes := uc.aggregate(ctx, listings)

	results := projectResults(homes, searchStart, searchEnd)

	uc.log.Info().
		Int("resorts", len(resorts)).
		Int("listings_scanned", len(listings)).
		Int("results", len(results)).
		Dur("elapsed", time.Since(startTime)).
		Msg("Search completed")

	return domain.NewSearchResponse(criteria, results, domain.SearchMetadata{
		ResortsQueried:  len(resorts),
		ListingsScanned: len(listings),
		SearchTimeMs:    time.Since(startTime).Milliseconds(),
	}), nil
}

// queryResorts runs the upstream polygon query for each resort in catalog
// order and tags every returned listing with its origin resort. The first
// upstream failure aborts the whole search.
func (uc *homeSearchUseCase) queryResorts(ctx context.Context, resorts []domain.Resort, dateRanges []domain.DateRange, criteria domain.SearchCriteria, token string) ([]domain.RawListing, error) {
	var listings []domain.RawListing

	for _, resort := range resorts {
		resortStart := time.Now()

		query := domain.UpstreamQuery{
			Polygon:     domain.BuildPolygon(resort.Latitude, resort.Longitude, criteria.MileRadius),
			DateRanges:  dateRanges,
			DateMode:    criteria.DateMode,
			MinNights:   criteria.MinNights,
			PageSize:    uc.pageSize,
			TotalGuests: criteria.GuestCount,
			PetsAllowed: criteria.PetsAllowed,
			Token:       token,
		}

		found, err := uc.searcher.Search(ctx, query)
		if err != nil {
			return nil, err
		}

		for _, listing := range found {
			listing.Origin = resort
			listings = append(listings, listing)
		}

		uc.log.Info().
			Str("resort", resort.Name).
			Int("found", len(found)).
			Dur("elapsed", time.Since(resortStart)).
			Msg("Resort queried")
	}

	return listings, nil
}

// aggregate enriches each listing occurrence with a driving time to its
// origin resort, then deduplicates by home ID. The first occurrence of a
// home supplies its fields; every occurrence contributes a resort entry.
// The returned homes are finalized and sorted by minimum driving time.
func (uc *homeSearchUseCase) aggregate(ctx context.Context, listings []domain.RawListing) []*domain.AggregatedHome {
	byID := make(map[string]*domain.AggregatedHome)
	var homes []*domain.AggregatedHome

	for _, listing := range listings {
		if listing.HomeID == "" {
			continue
		}

		distance := domain.ResortDistance{
			Resort: listing.Origin.Name,
			State:  listing.Origin.State,
			Region: listing.Origin.Region,
		}
		if listing.HasCoordinates() {
			// Route from the home to its resort; the reverse trip can
			// differ on one-way mountain roads.
			distance.DrivingTimeMinutes = uc.router.DrivingMinutes(ctx,
				domain.Coordinate{Lat: *listing.Lat, Lon: *listing.Lon},
				listing.Origin.Coordinate())
		}

		if home, seen := byID[listing.HomeID]; seen {
			home.AddResort(distance)
			continue
		}

		home := domain.NewAggregatedHome(listing, distance)
		byID[listing.HomeID] = home
		homes = append(homes, home)
	}

	for _, home := range homes {
		home.Finalize()
	}
	domain.SortHomesByDrivingTime(homes)

	return homes
}

// projectResults filters each home's availability windows to those
// overlapping the requested dates and drops homes left with none.
func projectResults(homes []*domain.AggregatedHome, searchStart, searchEnd time.Time) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(homes))

	for _, home := range homes {
		var matching []domain.AvailabilityWindow
		for _, window := range home.Availabilities {
			if window.Overlaps(searchStart, searchEnd) {
				matching = append(matching, window)
			}
		}
		if len(matching) == 0 {
			continue
		}
		results = append(results, domain.NewSearchResult(home, matching))
	}

	return results
}

// Ensure homeSearchUseCase implements HomeSearchUseCase at compile time.
var _ HomeSearchUseCase = (*homeSearchUseCase)(nil)
