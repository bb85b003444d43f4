package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ski-stay/ski-stay-search/internal/domain"
	"github.com/ski-stay/ski-stay-search/test/mock"
)

// TestHomeSearch_MultipleResorts_Deduplicates tests that the use case
// queries every catalog resort and collapses shared listings into one home.
func TestHomeSearch_MultipleResorts_Deduplicates(t *testing.T) {
	// Arrange - the same two listings come back for every resort query
	searcher := mock.NewSearcher().WithListings(mock.SampleListings("home", 2))
	router := mock.NewRouter().WithMinutes(30)
	uc := CreateUseCase(searcher, router)

	// Act
	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), "test-token")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Results, 2)

	// The catalog has three resorts, each queried once
	assert.Equal(t, 3, searcher.CallCount())
	assert.Equal(t, 3, result.Metadata.ResortsQueried)
	assert.Equal(t, 6, result.Metadata.ListingsScanned)
	assert.Equal(t, 2, result.Metadata.TotalResults)

	// Every home carries a distance entry per resort it appeared under
	home := result.Results[0]
	assert.Len(t, home.Resorts, 3)
	require.NotNil(t, home.DriveTime)
	assert.Equal(t, 30.0, *home.DriveTime)
	assert.Equal(t, "30.0 min", home.Distance)
}

// TestHomeSearch_QueryConstruction tests that the upstream queries carry
// the partitioned date ranges and the caller's token.
func TestHomeSearch_QueryConstruction(t *testing.T) {
	// Arrange
	searcher := mock.NewSearcher().WithListings(nil)
	uc := CreateUseCase(searcher, mock.NewRouter())

	criteria := domain.SearchCriteria{
		StartDate: "2025-01-10",
		EndDate:   "2025-03-05",
		MinNights: 3,
	}

	// Act
	_, err := uc.Search(context.Background(), criteria, "query-token")

	// Assert
	require.NoError(t, err)
	queries := searcher.Queries()
	require.Len(t, queries, 3)

	for _, q := range queries {
		assert.Equal(t, "query-token", q.Token)
		assert.Equal(t, domain.DateModeFlexible, q.DateMode)
		assert.Equal(t, 3, q.MinNights)
		// Jan 10 - Mar 5 walks two calendar-month steps
		assert.Len(t, q.DateRanges, 2)
		assert.Len(t, q.Polygon, 8)
	}
}

// TestHomeSearch_ResortFilterNarrowsQueries tests that resort name filters
// reduce the set of upstream queries.
func TestHomeSearch_ResortFilterNarrowsQueries(t *testing.T) {
	// Arrange
	searcher := mock.NewSearcher().WithListings(mock.SampleListings("stowe", 1))
	uc := CreateUseCase(searcher, mock.NewRouter())

	criteria := DefaultSearchCriteria()
	criteria.Resorts = []string{"Stowe"}

	// Act
	result, err := uc.Search(context.Background(), criteria, "test-token")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, searcher.CallCount())
	assert.Equal(t, 1, result.Metadata.ResortsQueried)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Stowe", result.Results[0].Resort)
}

// TestHomeSearch_NoMatchingResorts tests that an unmatched filter returns
// an empty result without touching the upstream service.
func TestHomeSearch_NoMatchingResorts(t *testing.T) {
	// Arrange
	searcher := mock.NewSearcher().WithListings(mock.SampleListings("home", 2))
	uc := CreateUseCase(searcher, mock.NewRouter())

	criteria := DefaultSearchCriteria()
	criteria.Regions = []string{"Alps"}

	// Act
	result, err := uc.Search(context.Background(), criteria, "test-token")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Equal(t, 0, result.Metadata.ResortsQueried)
	assert.Equal(t, 0, searcher.CallCount())
}

// TestHomeSearch_AvailabilityOutsideRange tests that homes whose windows
// miss the requested range are dropped.
func TestHomeSearch_AvailabilityOutsideRange(t *testing.T) {
	// Arrange - sample listings are only available through January 2025
	searcher := mock.NewSearcher().WithListings(mock.SampleListings("home", 3))
	uc := CreateUseCase(searcher, mock.NewRouter())

	criteria := domain.SearchCriteria{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-10",
	}

	// Act
	result, err := uc.Search(context.Background(), criteria, "test-token")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Equal(t, 9, result.Metadata.ListingsScanned)
}

// TestHomeSearch_UpstreamFailureAborts tests that an upstream error stops
// the whole search.
func TestHomeSearch_UpstreamFailureAborts(t *testing.T) {
	// Arrange
	upstreamErr := domain.NewUpstreamError("explore", errors.New("polygon too large"))
	searcher := mock.NewSearcher().WithError(upstreamErr)
	uc := CreateUseCase(searcher, mock.NewRouter())

	// Act
	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), "test-token")

	// Assert
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
	assert.Nil(t, result)
	// First failing resort aborts; later resorts are never queried
	assert.Equal(t, 1, searcher.CallCount())
}

// TestHomeSearch_MissingToken tests that the use case refuses to run
// without a bearer token.
func TestHomeSearch_MissingToken(t *testing.T) {
	// Arrange
	searcher := mock.NewSearcher().WithListings(mock.SampleListings("home", 1))
	uc := CreateUseCase(searcher, mock.NewRouter())

	// Act
	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), "")

	// Assert
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))
	assert.Nil(t, result)
	assert.Equal(t, 0, searcher.CallCount())
}

// TestHomeSearch_ContextCancellation tests that a cancelled context stops
// a slow search.
func TestHomeSearch_ContextCancellation(t *testing.T) {
	// Arrange
	searcher := mock.NewSearcher().
		WithDelay(500 * time.Millisecond).
		WithListings(mock.SampleListings("home", 1))
	uc := CreateUseCase(searcher, mock.NewRouter())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Act
	result, err := uc.Search(ctx, DefaultSearchCriteria(), "test-token")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Nil(t, result)
}

// TestHomeSearch_UnknownDrivingTimesSortLast tests that homes without a
// routing result keep a null drive time and the response stays ordered.
func TestHomeSearch_UnknownDrivingTimesSortLast(t *testing.T) {
	// Arrange - router has no key configured, every lookup is unknown
	searcher := mock.NewSearcher().WithListings(mock.SampleListings("home", 2))
	router := mock.NewRouter()
	uc := CreateUseCase(searcher, router)

	// Act
	result, err := uc.Search(context.Background(), DefaultSearchCriteria(), "test-token")

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	for _, home := range result.Results {
		assert.Nil(t, home.DriveTime)
		assert.Equal(t, "N/A", home.Distance)
	}
	assert.Positive(t, router.CallCount())
}
