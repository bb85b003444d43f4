package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planarDistanceMiles measures the distance between two points using the
// same equirectangular mile scaling the polygon builder uses, with the
// longitude factor evaluated at the center latitude.
func planarDistanceMiles(centerLat float64, a, b Coordinate) float64 {
	dy := (b.Lat - a.Lat) * milesPerDegreeLat
	dx := (b.Lon - a.Lon) * milesPerDegreeLon * math.Cos(centerLat*math.Pi/180)
	return math.Hypot(dx, dy)
}

func TestBuildPolygon(t *testing.T) {
	tests := []struct {
		name        string
		lat         float64
		lon         float64
		radiusMiles float64
	}{
		{name: "aspen at 35 miles", lat: 39.19, lon: -106.82, radiusMiles: 35},
		{name: "vail at 10 miles", lat: 39.64, lon: -106.37, radiusMiles: 10},
		{name: "equator", lat: 0, lon: 0, radiusMiles: 50},
		{name: "high northern latitude", lat: 61.1, lon: -149.7, radiusMiles: 25},
		{name: "southern hemisphere", lat: -41.3, lon: 174.8, radiusMiles: 15},
		{name: "small radius", lat: 44.5, lon: -72.8, radiusMiles: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polygon := BuildPolygon(tt.lat, tt.lon, tt.radiusMiles)

			require.Len(t, polygon, 8)

			center := Coordinate{Lat: tt.lat, Lon: tt.lon}
			for i, vertex := range polygon {
				dist := planarDistanceMiles(tt.lat, center, vertex)
				assert.InDelta(t, tt.radiusMiles, dist, tt.radiusMiles*0.001,
					"vertex %d should sit on the circle", i)
			}
		})
	}
}

func TestBuildPolygonVertexOrder(t *testing.T) {
	// Angles start at 90 degrees (due north offset in latitude) and walk
	// counterclockwise in math-angle terms.
	polygon := BuildPolygon(40, -105, 20)

	north := polygon[0]
	assert.Greater(t, north.Lat, 40.0)
	assert.InDelta(t, -105.0, north.Lon, 1e-9)

	east := polygon[2]
	assert.InDelta(t, 40.0, east.Lat, 1e-9)
	assert.Greater(t, east.Lon, -105.0)

	south := polygon[4]
	assert.Less(t, south.Lat, 40.0)
	assert.InDelta(t, -105.0, south.Lon, 1e-9)

	west := polygon[6]
	assert.InDelta(t, 40.0, west.Lat, 1e-9)
	assert.Less(t, west.Lon, -105.0)
}

func TestBuildPolygonZeroRadius(t *testing.T) {
	polygon := BuildPolygon(39.19, -106.82, 0)

	require.Len(t, polygon, 8)
	for _, vertex := range polygon {
		assert.InDelta(t, 39.19, vertex.Lat, 1e-12)
		assert.InDelta(t, -106.82, vertex.Lon, 1e-12)
	}
}

func TestBuildPolygonLongitudeScaling(t *testing.T) {
	// The same radius must span more longitude degrees at high latitude.
	atEquator := BuildPolygon(0, 0, 35)
	atSixty := BuildPolygon(60, 0, 35)

	equatorSpan := atEquator[2].Lon - atEquator[6].Lon
	sixtySpan := atSixty[2].Lon - atSixty[6].Lon

	assert.Greater(t, sixtySpan, equatorSpan)
	// cos(60°) = 0.5, so the span should roughly double.
	assert.InDelta(t, 2.0, sixtySpan/equatorSpan, 0.01)
}
