package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minutes is a test helper for driving-time pointers.
func minutes(v float64) *float64 {
	return &v
}

func TestAvailabilityWindowOverlaps(t *testing.T) {
	searchStart := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	searchEnd := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		window AvailabilityWindow
		want   bool
	}{
		{
			name:   "overlaps the start of the search range",
			window: AvailabilityWindow{StartDate: "2025-01-01", EndDate: "2025-01-12"},
			want:   true,
		},
		{
			name:   "entirely inside the search range",
			window: AvailabilityWindow{StartDate: "2025-01-12", EndDate: "2025-01-15"},
			want:   true,
		},
		{
			name:   "entirely after the search range",
			window: AvailabilityWindow{StartDate: "2025-01-21", EndDate: "2025-01-25"},
			want:   false,
		},
		{
			name:   "entirely before the search range",
			window: AvailabilityWindow{StartDate: "2024-12-01", EndDate: "2025-01-09"},
			want:   false,
		},
		{
			name:   "touching the end boundary is inclusive",
			window: AvailabilityWindow{StartDate: "2025-01-20", EndDate: "2025-02-05"},
			want:   true,
		},
		{
			name:   "touching the start boundary is inclusive",
			window: AvailabilityWindow{StartDate: "2025-01-02", EndDate: "2025-01-10"},
			want:   true,
		},
		{
			name:   "covers the whole search range",
			window: AvailabilityWindow{StartDate: "2024-12-01", EndDate: "2025-03-01"},
			want:   true,
		},
		{
			name:   "unparsable start never overlaps",
			window: AvailabilityWindow{StartDate: "not-a-date", EndDate: "2025-01-15"},
			want:   false,
		},
		{
			name:   "unparsable end never overlaps",
			window: AvailabilityWindow{StartDate: "2025-01-15", EndDate: ""},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Overlaps(searchStart, searchEnd))
		})
	}
}

func TestAggregatedHomeFinalize(t *testing.T) {
	tests := []struct {
		name        string
		distances   []ResortDistance
		wantOrder   []string
		wantMinTime *float64
	}{
		{
			name: "sorted ascending by driving time",
			distances: []ResortDistance{
				{Resort: "Vail", DrivingTimeMinutes: minutes(47)},
				{Resort: "Aspen", DrivingTimeMinutes: minutes(12)},
			},
			wantOrder:   []string{"Aspen", "Vail"},
			wantMinTime: minutes(12),
		},
		{
			name: "unknown driving time sorts last",
			distances: []ResortDistance{
				{Resort: "Brighton", DrivingTimeMinutes: nil},
				{Resort: "Alta", DrivingTimeMinutes: minutes(33.5)},
				{Resort: "Snowbird", DrivingTimeMinutes: minutes(29.1)},
			},
			wantOrder:   []string{"Snowbird", "Alta", "Brighton"},
			wantMinTime: minutes(29.1),
		},
		{
			name: "all unknown keeps order and yields unknown minimum",
			distances: []ResortDistance{
				{Resort: "Stowe", DrivingTimeMinutes: nil},
				{Resort: "Sugarbush", DrivingTimeMinutes: nil},
			},
			wantOrder:   []string{"Stowe", "Sugarbush"},
			wantMinTime: nil,
		},
		{
			name: "single resort",
			distances: []ResortDistance{
				{Resort: "Aspen", DrivingTimeMinutes: minutes(12)},
			},
			wantOrder:   []string{"Aspen"},
			wantMinTime: minutes(12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := NewAggregatedHome(RawListing{HomeID: "h1"}, tt.distances[0])
			for _, d := range tt.distances[1:] {
				home.AddResort(d)
			}

			home.Finalize()

			require.Len(t, home.Resorts, len(tt.distances))
			for i, want := range tt.wantOrder {
				assert.Equal(t, want, home.Resorts[i].Resort)
			}

			if tt.wantMinTime == nil {
				assert.Nil(t, home.MinDrivingTimeMinutes)
			} else {
				require.NotNil(t, home.MinDrivingTimeMinutes)
				assert.Equal(t, *tt.wantMinTime, *home.MinDrivingTimeMinutes)
			}
		})
	}
}

func TestSortHomesByDrivingTime(t *testing.T) {
	build := func(id string, minTime *float64) *AggregatedHome {
		h := NewAggregatedHome(RawListing{HomeID: id},
			ResortDistance{Resort: "r", DrivingTimeMinutes: minTime})
		h.Finalize()
		return h
	}

	homes := []*AggregatedHome{
		build("far", minutes(90)),
		build("unknown-a", nil),
		build("near", minutes(8)),
		build("unknown-b", nil),
		build("mid", minutes(40)),
	}

	SortHomesByDrivingTime(homes)

	gotIDs := make([]string, len(homes))
	for i, h := range homes {
		gotIDs[i] = h.HomeID
	}
	assert.Equal(t, []string{"near", "mid", "far", "unknown-a", "unknown-b"}, gotIDs)
}

func TestFormatDrivingTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes *float64
		want    string
	}{
		{name: "known time", minutes: minutes(12), want: "12.0 min"},
		{name: "fractional time", minutes: minutes(47.25), want: "47.2 min"},
		{name: "zero minutes", minutes: minutes(0), want: "0.0 min"},
		{name: "unknown", minutes: nil, want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDrivingTime(tt.minutes))
		})
	}
}

func TestRawListingHasCoordinates(t *testing.T) {
	lat, lon := 39.2, -106.8

	assert.True(t, (&RawListing{Lat: &lat, Lon: &lon}).HasCoordinates())
	assert.False(t, (&RawListing{Lat: &lat}).HasCoordinates())
	assert.False(t, (&RawListing{Lon: &lon}).HasCoordinates())
	assert.False(t, (&RawListing{}).HasCoordinates())
}
