package domain

import "sort"

// Resort is one row of the immutable resort reference dataset.
// Identity is the resort name; the table is loaded once at process start
// and read-only thereafter, so it needs no synchronization.
type Resort struct {
	// Name is the resort's unique display name (e.g. "Aspen Snowmass").
	Name string `json:"resort"`

	// Region is the resort's region grouping (e.g. "Rockies").
	Region string `json:"region"`

	// State is the state or province, when known.
	State *string `json:"state"`

	// Latitude and Longitude locate the resort base area.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// SkiableAcres is the skiable terrain in acres, when known.
	SkiableAcres *float64 `json:"skiable_acres,omitempty"`

	// VerticalDrop is the lift-served vertical drop in feet, when known.
	VerticalDrop *float64 `json:"vertical_drop,omitempty"`

	// AnnualSnowfall is the average annual snowfall in inches, when known.
	AnnualSnowfall *float64 `json:"annual_snowfall,omitempty"`
}

// Coordinate returns the resort's location.
func (r *Resort) Coordinate() Coordinate {
	return Coordinate{Lat: r.Latitude, Lon: r.Longitude}
}

// ResortTable is the read-only resort reference table.
type ResortTable struct {
	resorts []Resort
	byName  map[string]int
}

// NewResortTable builds a table from the given rows, preserving their order.
// Later rows with a duplicate name are dropped.
func NewResortTable(resorts []Resort) *ResortTable {
	t := &ResortTable{
		resorts: make([]Resort, 0, len(resorts)),
		byName:  make(map[string]int, len(resorts)),
	}
	for _, r := range resorts {
		if _, exists := t.byName[r.Name]; exists {
			continue
		}
		t.byName[r.Name] = len(t.resorts)
		t.resorts = append(t.resorts, r)
	}
	return t
}

// Len returns the number of resorts in the table.
func (t *ResortTable) Len() int {
	return len(t.resorts)
}

// All returns every resort in table order.
// The returned slice is a copy; the table itself stays immutable.
func (t *ResortTable) All() []Resort {
	out := make([]Resort, len(t.resorts))
	copy(out, t.resorts)
	return out
}

// Lookup returns the resort with the given name.
func (t *ResortTable) Lookup(name string) (Resort, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return Resort{}, false
	}
	return t.resorts[idx], true
}

// Regions returns the distinct region names in the table, sorted.
func (t *ResortTable) Regions() []string {
	seen := make(map[string]struct{}, len(t.resorts))
	var regions []string
	for _, r := range t.resorts {
		if r.Region == "" {
			continue
		}
		if _, ok := seen[r.Region]; ok {
			continue
		}
		seen[r.Region] = struct{}{}
		regions = append(regions, r.Region)
	}
	sort.Strings(regions)
	return regions
}

// Filter returns the resorts matching the criteria's region membership,
// explicit resort-name membership, and minimum attribute thresholds, all
// AND-combined, in table order. Threshold filters drop resorts whose
// attribute is unknown.
func (t *ResortTable) Filter(criteria SearchCriteria) []Resort {
	regionSet := toSet(criteria.Regions)
	nameSet := toSet(criteria.Resorts)

	result := make([]Resort, 0, len(t.resorts))
	for _, r := range t.resorts {
		if len(regionSet) > 0 {
			if _, ok := regionSet[r.Region]; !ok {
				continue
			}
		}
		if len(nameSet) > 0 {
			if _, ok := nameSet[r.Name]; !ok {
				continue
			}
		}
		if !meetsThreshold(r.SkiableAcres, criteria.MinSkiableAcres) {
			continue
		}
		if !meetsThreshold(r.VerticalDrop, criteria.MinVerticalDrop) {
			continue
		}
		if !meetsThreshold(r.AnnualSnowfall, criteria.MinAnnualSnowfall) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// meetsThreshold reports whether value satisfies the optional lower bound.
// A nil or non-positive threshold accepts everything; a set threshold
// rejects unknown values.
func meetsThreshold(value, min *float64) bool {
	if min == nil || *min <= 0 {
		return true
	}
	if value == nil {
		return false
	}
	return *value >= *min
}

// toSet builds a membership set from a list of names.
func toSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
