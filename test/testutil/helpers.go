// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

// LoadTestFile loads a file from the test/testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestFile(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for threshold and driving-time tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// SampleResorts returns a small resort catalog for testing.
func SampleResorts() []domain.Resort {
	return []domain.Resort{
		{
			Name:           "Aspen Snowmass",
			Region:         "Rockies",
			State:          Ptr("CO"),
			Latitude:       39.2084,
			Longitude:      -106.9490,
			SkiableAcres:   FloatPtr(5527),
			VerticalDrop:   FloatPtr(4406),
			AnnualSnowfall: FloatPtr(300),
		},
		{
			Name:           "Vail",
			Region:         "Rockies",
			State:          Ptr("CO"),
			Latitude:       39.6061,
			Longitude:      -106.3550,
			SkiableAcres:   FloatPtr(5317),
			VerticalDrop:   FloatPtr(3450),
			AnnualSnowfall: FloatPtr(354),
		},
		{
			Name:      "Stowe",
			Region:    "Northeast",
			State:     Ptr("VT"),
			Latitude:  44.5303,
			Longitude: -72.7814,
		},
	}
}
