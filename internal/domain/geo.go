package domain

import "math"

// Miles covered by one degree of latitude, and by one degree of longitude
// at the equator. Longitude degrees shrink toward the poles by cos(lat).
const (
	milesPerDegreeLat = 69.0
	milesPerDegreeLon = 69.172
)

// polygonAngles are the math angles (degrees, counterclockwise from east)
// at which the octagon vertices are evaluated.
var polygonAngles = [8]float64{90, 45, 0, 315, 270, 225, 180, 135}

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoPolygon is an ordered ring of vertices sent to the upstream search API
// as the geographic search boundary.
type GeoPolygon []Coordinate

// BuildPolygon returns an 8-vertex polygon approximating a circle of
// radiusMiles around the given center. The longitude offset is scaled by
// the latitude so the octagon stays roughly circular away from the equator.
// A zero radius degenerates to eight copies of the center point.
func BuildPolygon(lat, lon, radiusMiles float64) GeoPolygon {
	milesPerLon := milesPerDegreeLon * math.Cos(lat*math.Pi/180)

	polygon := make(GeoPolygon, 0, len(polygonAngles))
	for _, angle := range polygonAngles {
		rad := angle * math.Pi / 180
		dLat := radiusMiles * math.Sin(rad) / milesPerDegreeLat
		dLon := radiusMiles * math.Cos(rad) / milesPerLon
		polygon = append(polygon, Coordinate{Lat: lat + dLat, Lon: lon + dLon})
	}
	return polygon
}
