package kindred

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ski-stay/ski-stay-search/internal/domain"
	"github.com/ski-stay/ski-stay-search/internal/infrastructure/pacing"
	"github.com/ski-stay/ski-stay-search/internal/infrastructure/timeutil"
)

// Upstream trip types selected by the date mode.
const (
	tripTypeExactDates    = "EXACT_DATES"
	tripTypeMinimumNights = "MINIMUM_NIGHTS"
)

// petPreferenceNo is the explicit "no pets" value checked by the
// client-side post-filter.
const petPreferenceNo = "NO"

// Image widths requested from the platform, matching its web client.
const (
	mediaWidth  = 720
	avatarWidth = 90
)

// sortedAtFormat is the millisecond-precision UTC stamp the explore query
// expects.
const sortedAtFormat = "2006-01-02T15:04:05.000Z"

// SearchClient pages through the platform's explore query for one polygon.
// It implements domain.HomeSearcher.
//
// Pages are fetched strictly one at a time with the pacer's pause in
// between; there is no retry, and the first transport or GraphQL error
// aborts the search.
type SearchClient struct {
	exec  domain.GraphQLExecutor
	pacer pacing.Pacer
	clock timeutil.Clock
	log   zerolog.Logger
}

// NewSearchClient creates a search client over the given transport.
func NewSearchClient(exec domain.GraphQLExecutor, pacer pacing.Pacer, clock timeutil.Clock, log zerolog.Logger) *SearchClient {
	if pacer == nil {
		pacer = pacing.Default()
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &SearchClient{exec: exec, pacer: pacer, clock: clock, log: log}
}

// Search implements domain.HomeSearcher. It issues one explore query per
// page starting at page 0 and keeps going while the response signals more
// pages, returning the flat listing sequence across all pages. The sortedAt
// stamp is taken once so every page sees the same sort snapshot, and the
// query's token is used for every page.
func (c *SearchClient) Search(ctx context.Context, query domain.UpstreamQuery) ([]domain.RawListing, error) {
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	sortedAt := c.clock.Now().UTC().Format(sortedAtFormat)

	var listings []domain.RawListing
	for page := 0; ; page++ {
		if page > 0 {
			if err := c.pacer.Pause(ctx); err != nil {
				return nil, err
			}
		}

		variables := buildExploreVariables(query, page, pageSize, sortedAt)
		raw, err := c.exec.Do(ctx, opExploreList, queryExploreList, variables, query.Token)
		if err != nil {
			return nil, err
		}

		var data exploreListData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, domain.NewUpstreamError(opExploreList, fmt.Errorf("decode page %d: %w", page, err))
		}

		result := data.GetHomesWithSearchCriteria
		for _, rec := range result.HomeRecs {
			if query.PetsAllowed && rec.Home.refusesPets() {
				continue
			}
			listings = append(listings, rec.Home.toRawListing())
		}

		c.log.Debug().
			Int("page", page).
			Int("page_results", len(result.HomeRecs)).
			Bool("has_more", result.HasMore).
			Msg("Explore page fetched")

		if !result.HasMore {
			break
		}
	}

	return listings, nil
}

// buildExploreVariables assembles the explore query variables for one page.
// The full partitioned date-range list goes on every page; the upstream
// service matches across all supplied ranges itself.
func buildExploreVariables(query domain.UpstreamQuery, page, pageSize int, sortedAt string) map[string]interface{} {
	tripType := tripTypeMinimumNights
	if query.DateMode == domain.DateModeExact {
		tripType = tripTypeExactDates
	}

	dateRanges := make([][]string, 0, len(query.DateRanges))
	for _, r := range query.DateRanges {
		dateRanges = append(dateRanges, []string{r.Start, r.End})
	}

	// Pet preference filter: YES plus MAYBE (open to considering pets).
	petPreferences := []string{}
	if query.PetsAllowed {
		petPreferences = []string{"YES", "MAYBE"}
	}

	filter := map[string]interface{}{
		"tripLengthsV2":       []string{tripType},
		"dateRanges":          dateRanges,
		"includeCloseDates":   false,
		"isFavoriteHomesOnly": false,
		"onboardingSort":      false,
		"polygon":             query.Polygon,
		"matchTypes":          []string{"SWAP", "AVAILABILITY"},
		"minBedrooms":         0,
		"minBathrooms":        0,
		"minBeds":             0,
		"totalGuests":         query.TotalGuests,
		"filterInput": map[string]interface{}{
			"amenityFilters":   []interface{}{},
			"bedTypeFilters":   []interface{}{},
			"compositeFilters": []interface{}{},
			"petPreferences":   petPreferences,
		},
	}
	if query.DateMode != domain.DateModeExact {
		filter["minimumNights"] = query.MinNights
	}

	return map[string]interface{}{
		"filter": filter,
		"pagination": map[string]interface{}{
			"page":     page,
			"pageSize": pageSize,
		},
		"sortedAt":    sortedAt,
		"width":       mediaWidth,
		"avatarWidth": avatarWidth,
	}
}

// exploreListData is the typed explore response payload. The dynamic
// GraphQL JSON is mapped to these structs at the boundary so the
// aggregation core never touches untyped maps.
type exploreListData struct {
	GetHomesWithSearchCriteria exploreListPage `json:"getHomesWithSearchCriteria"`
}

type exploreListPage struct {
	Page     int       `json:"page"`
	HasMore  bool      `json:"hasMore"`
	HomeRecs []homeRec `json:"homeRecs"`
}

type homeRec struct {
	Home homePayload `json:"home"`
}

type homePayload struct {
	ID                               string                      `json:"id"`
	Title                            string                      `json:"title"`
	Destination                      *destinationPayload         `json:"destination"`
	Media                            []mediaPayload              `json:"media"`
	AvailabilitiesWithoutBookedDates []domain.AvailabilityWindow `json:"availabilitiesWithoutBookedDates"`
	MaxGuestsLimit                   int                         `json:"maxGuestsLimit"`
	PetPreference                    string                      `json:"petPreference"`
	PetHostingDetails                string                      `json:"petHostingDetails"`
	BedroomsCount                    int                         `json:"bedroomsCount"`
	Bathrooms                        float64                     `json:"bathrooms"`
	Lat                              *float64                    `json:"lat"`
	Lon                              *float64                    `json:"lon"`
}

type destinationPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

type mediaPayload struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// refusesPets reports whether either pet field is an explicit NO. The
// upstream pet filter is applied too, but its exact semantics are not
// guaranteed, so this post-filter stays.
func (h *homePayload) refusesPets() bool {
	return h.PetPreference == petPreferenceNo || h.PetHostingDetails == petPreferenceNo
}

// toRawListing maps the upstream payload to the domain listing.
func (h *homePayload) toRawListing() domain.RawListing {
	listing := domain.RawListing{
		HomeID:            h.ID,
		Title:             h.Title,
		Lat:               h.Lat,
		Lon:               h.Lon,
		Availabilities:    h.AvailabilitiesWithoutBookedDates,
		MaxGuests:         h.MaxGuestsLimit,
		PetPreference:     h.PetPreference,
		PetHostingDetails: h.PetHostingDetails,
		BedroomsCount:     h.BedroomsCount,
		Bathrooms:         h.Bathrooms,
	}
	if h.Destination != nil {
		listing.DestinationName = h.Destination.Name
	}
	if len(h.Media) > 0 {
		listing.ImageURL = h.Media[0].ThumbnailURL
	}
	return listing
}

// Ensure SearchClient implements domain.HomeSearcher at compile time.
var _ domain.HomeSearcher = (*SearchClient)(nil)
