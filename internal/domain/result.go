package domain

// DefaultListingImageURL substitutes for homes whose upstream media list
// is empty.
const DefaultListingImageURL = "https://images.unsplash.com/photo-1518780664697-55e3ad937233?w=800&q=80"

// homeURLBase is the public listing page prefix on the rental platform.
const homeURLBase = "https://livekindred.com/home/"

// SearchResult is the final output row for one home: the aggregated home
// projected to its availability windows that overlap the requested range.
type SearchResult struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Resort   string           `json:"resort"`
	Resorts  []ResortDistance `json:"resorts"`
	Distance string           `json:"distance"`

	// DriveTime is the minimum known driving time in minutes, nil when
	// unknown (rendered as null).
	DriveTime *float64 `json:"driveTime"`

	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	MaxGuests int     `json:"maxGuests"`
	ImageURL  string  `json:"imageUrl"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	// Availabilities are only the windows overlapping the requested range.
	Availabilities []AvailabilityWindow `json:"availabilities"`

	PetPreference     string `json:"petPreference"`
	PetHostingDetails string `json:"petHostingDetails"`

	// HomeURL is the public listing page on the rental platform.
	HomeURL string `json:"homeUrl"`
}

// NewSearchResult projects an aggregated home to an output row with the
// given overlapping availability windows.
func NewSearchResult(home *AggregatedHome, availabilities []AvailabilityWindow) SearchResult {
	imageURL := home.ImageURL
	if imageURL == "" {
		imageURL = DefaultListingImageURL
	}

	return SearchResult{
		ID:                home.HomeID,
		Name:              home.Title,
		Resort:            home.Origin.Name,
		Resorts:           home.Resorts,
		Distance:          FormatDrivingTime(home.MinDrivingTimeMinutes),
		DriveTime:         home.MinDrivingTimeMinutes,
		Bedrooms:          home.BedroomsCount,
		Bathrooms:         home.Bathrooms,
		MaxGuests:         home.MaxGuests,
		ImageURL:          imageURL,
		Lat:               home.Lat,
		Lng:               home.Lon,
		Availabilities:    availabilities,
		PetPreference:     home.PetPreference,
		PetHostingDetails: home.PetHostingDetails,
		HomeURL:           homeURLBase + home.HomeID,
	}
}

// SearchResponse is the aggregated response for one search request.
type SearchResponse struct {
	// SearchCriteria echoes the request parameters.
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata describes the search execution.
	Metadata SearchMetadata `json:"metadata"`

	// Results are the surviving homes, sorted by minimum driving time.
	Results []SearchResult `json:"results"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of homes returned after filtering.
	TotalResults int `json:"total_results"`

	// ResortsQueried is the number of resorts searched upstream.
	ResortsQueried int `json:"resorts_queried"`

	// ListingsScanned is the number of raw listings before deduplication.
	ListingsScanned int `json:"listings_scanned"`

	// SearchTimeMs is the total search duration in milliseconds.
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResponse creates a SearchResponse with the given criteria,
// results, and metadata.
func NewSearchResponse(criteria SearchCriteria, results []SearchResult, metadata SearchMetadata) *SearchResponse {
	if results == nil {
		results = []SearchResult{}
	}
	metadata.TotalResults = len(results)

	return &SearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Results:        results,
	}
}
