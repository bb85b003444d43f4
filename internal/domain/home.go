package domain

import (
	"fmt"
	"sort"
	"time"
)

// AvailabilityWindow is one bookable date range of a home, as reported by
// the upstream platform in YYYY-MM-DD calendar dates.
type AvailabilityWindow struct {
	ID        string `json:"id"`
	HomeID    string `json:"homeId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Overlaps reports whether the window overlaps [searchStart, searchEnd]
// inclusively. Windows with unparsable dates never overlap.
func (w *AvailabilityWindow) Overlaps(searchStart, searchEnd time.Time) bool {
	start, err := time.Parse("2006-01-02", w.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse("2006-01-02", w.EndDate)
	if err != nil {
		return false
	}
	return !start.After(searchEnd) && !end.Before(searchStart)
}

// RawListing is one home record returned by one resort's upstream query.
// The same home may appear as multiple RawListings, one per resort whose
// polygon it fell inside; Origin identifies the resort the query ran for.
type RawListing struct {
	// HomeID is the upstream home identifier.
	HomeID string `json:"homeId"`

	// Title is the home's listing title.
	Title string `json:"title"`

	// DestinationName is the upstream destination the home belongs to.
	DestinationName string `json:"destination"`

	// Lat and Lon locate the home; nil when the upstream omits them.
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`

	// Availabilities are the home's open date windows.
	Availabilities []AvailabilityWindow `json:"availabilitiesWithoutBookedDates"`

	// MaxGuests is the guest capacity limit.
	MaxGuests int `json:"maxGuestsLimit"`

	// PetPreference is the host's pet stance (YES, MAYBE, NO or empty).
	PetPreference string `json:"petPreference"`

	// PetHostingDetails is the host's pet hosting detail flag.
	PetHostingDetails string `json:"petHostingDetails"`

	// BedroomsCount is the number of bedrooms.
	BedroomsCount int `json:"bedroomsCount"`

	// Bathrooms is the number of bathrooms (halves allowed).
	Bathrooms float64 `json:"bathrooms"`

	// ImageURL is the first media item's thumbnail, empty when none exist.
	ImageURL string `json:"imageUrl"`

	// Origin is the resort whose query returned this listing.
	// Set by the aggregator, not the upstream client.
	Origin Resort `json:"-"`
}

// HasCoordinates reports whether the listing carries a usable location.
func (l *RawListing) HasCoordinates() bool {
	return l.Lat != nil && l.Lon != nil
}

// ResortDistance links an aggregated home to one nearby resort with the
// best-effort driving time. A nil DrivingTimeMinutes means the routing
// provider could not produce a route (unknown, not an error).
type ResortDistance struct {
	Resort             string   `json:"resort"`
	State              *string  `json:"state"`
	Region             string   `json:"region"`
	DrivingTimeMinutes *float64 `json:"driving_time_minutes"`
}

// AggregatedHome is the deduplicated, cross-resort view of one rental unit,
// keyed by HomeID. Field values come from the first occurrence; every
// occurrence contributes one ResortDistance entry.
type AggregatedHome struct {
	RawListing

	// Resorts lists the resorts this home matched, ascending by driving
	// time with unknown times last. Never empty.
	Resorts []ResortDistance `json:"resorts"`

	// MinDrivingTimeMinutes is the minimum known driving time across
	// Resorts, or nil when none are known.
	MinDrivingTimeMinutes *float64 `json:"min_driving_time"`
}

// NewAggregatedHome creates the base record for a home from its first-seen
// listing and the listing's resort distance.
func NewAggregatedHome(listing RawListing, distance ResortDistance) *AggregatedHome {
	return &AggregatedHome{
		RawListing: listing,
		Resorts:    []ResortDistance{distance},
	}
}

// AddResort records another resort occurrence of the same home.
func (h *AggregatedHome) AddResort(distance ResortDistance) {
	h.Resorts = append(h.Resorts, distance)
}

// Finalize sorts the home's resorts ascending by driving time (unknown
// last) and computes the minimum known driving time. Call once after all
// occurrences have been added.
func (h *AggregatedHome) Finalize() {
	sort.SliceStable(h.Resorts, func(i, j int) bool {
		return lessDrivingTime(h.Resorts[i].DrivingTimeMinutes, h.Resorts[j].DrivingTimeMinutes)
	})

	h.MinDrivingTimeMinutes = nil
	for _, rd := range h.Resorts {
		if rd.DrivingTimeMinutes == nil {
			continue
		}
		if h.MinDrivingTimeMinutes == nil || *rd.DrivingTimeMinutes < *h.MinDrivingTimeMinutes {
			v := *rd.DrivingTimeMinutes
			h.MinDrivingTimeMinutes = &v
		}
	}
}

// lessDrivingTime orders driving times ascending with nil (unknown)
// treated as +infinity.
func lessDrivingTime(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

// SortHomesByDrivingTime orders homes ascending by minimum driving time,
// with homes whose time is unknown last. The sort is stable so ties and
// unknowns keep their first-seen order.
func SortHomesByDrivingTime(homes []*AggregatedHome) {
	sort.SliceStable(homes, func(i, j int) bool {
		return lessDrivingTime(homes[i].MinDrivingTimeMinutes, homes[j].MinDrivingTimeMinutes)
	})
}

// FormatDrivingTime renders a driving time as a human-readable distance
// string: "12.0 min", or "N/A" when unknown.
func FormatDrivingTime(minutes *float64) string {
	if minutes == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f min", *minutes)
}
