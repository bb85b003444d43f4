package resorts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `Resort,ResortRegion,StateOrProvince,Latitude,Longitude,SkiableAcres,VerticalDrop,AnnualSnowfall
Aspen Snowmass,Rockies,CO,39.2084,-106.9490,5527,4406,300
Vail,Rockies,CO,39.6061,-106.3550,5317,3450,354
Niseko United,Japan,,42.8048,140.6874,2191,3438,590
`

func TestLoadSampleCatalog(t *testing.T) {
	table, err := Load(strings.NewReader(sampleCatalog))

	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	aspen, ok := table.Lookup("Aspen Snowmass")
	require.True(t, ok)
	assert.Equal(t, "Rockies", aspen.Region)
	require.NotNil(t, aspen.State)
	assert.Equal(t, "CO", *aspen.State)
	assert.Equal(t, 39.2084, aspen.Latitude)
	assert.Equal(t, -106.9490, aspen.Longitude)
	require.NotNil(t, aspen.SkiableAcres)
	assert.Equal(t, 5527.0, *aspen.SkiableAcres)

	niseko, ok := table.Lookup("Niseko United")
	require.True(t, ok)
	assert.Nil(t, niseko.State, "empty state loads as unknown")
	assert.Equal(t, "Japan", niseko.Region)
}

func TestLoadLowercaseCanonicalHeaders(t *testing.T) {
	catalog := `resort,region,state,latitude,longitude,skiable_acres,vertical_drop,annual_snowfall
Stowe,Northeast,VT,44.5303,-72.7814,485,2360,314
`
	table, err := Load(strings.NewReader(catalog))

	require.NoError(t, err)
	stowe, ok := table.Lookup("Stowe")
	require.True(t, ok)
	assert.Equal(t, "Northeast", stowe.Region)
	require.NotNil(t, stowe.VerticalDrop)
	assert.Equal(t, 2360.0, *stowe.VerticalDrop)
}

func TestLoadOptionalColumnsAbsent(t *testing.T) {
	catalog := `Resort,Latitude,Longitude
Palisades Tahoe,39.1969,-120.2358
`
	table, err := Load(strings.NewReader(catalog))

	require.NoError(t, err)
	resort, ok := table.Lookup("Palisades Tahoe")
	require.True(t, ok)
	assert.Empty(t, resort.Region)
	assert.Nil(t, resort.State)
	assert.Nil(t, resort.SkiableAcres)
	assert.Nil(t, resort.VerticalDrop)
	assert.Nil(t, resort.AnnualSnowfall)
}

func TestLoadUnparsableStatIsUnknown(t *testing.T) {
	catalog := `Resort,Latitude,Longitude,SkiableAcres
Big Sky,45.2862,-111.4015,n/a
`
	table, err := Load(strings.NewReader(catalog))

	require.NoError(t, err)
	resort, ok := table.Lookup("Big Sky")
	require.True(t, ok)
	assert.Nil(t, resort.SkiableAcres)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name         string
		catalog      string
		wantContains string
	}{
		{
			name:         "missing required column",
			catalog:      "Resort,Latitude\nVail,39.6\n",
			wantContains: `missing required column "longitude"`,
		},
		{
			name:         "empty resort name",
			catalog:      "Resort,Latitude,Longitude\n,39.6,-106.3\n",
			wantContains: "empty resort name",
		},
		{
			name:         "invalid latitude",
			catalog:      "Resort,Latitude,Longitude\nVail,north,-106.3\n",
			wantContains: "invalid latitude",
		},
		{
			name:         "empty input",
			catalog:      "",
			wantContains: "read header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.catalog))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantContains)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open resort catalog")
}
