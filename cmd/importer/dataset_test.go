package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_Fires(t *testing.T) {
	ds, err := lookupDataset("fires")
	require.NoError(t, err)

	input := "fire_date,latitude,longitude\n2023-01-05,-32.5,137.77\n2023-02-11, -32.3 , 137.6\n"
	rows, err := parseCSV(strings.NewReader(input), ds)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), rows[0][0])
	assert.Equal(t, "SRID=4326;POINT(137.770000 -32.500000)", rows[0][1])
	assert.Equal(t, "SRID=4326;POINT(137.600000 -32.300000)", rows[1][1])
}

func TestParseCSV_Observations(t *testing.T) {
	ds, err := lookupDataset("observations")
	require.NoError(t, err)

	input := "wren_id,latitude,longitude,observed_on\nTGW-001,-32.5,137.77,2023-09-01\n"
	rows, err := parseCSV(strings.NewReader(input), ds)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, []interface{}{"TGW-001", -32.5, 137.77, time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)}, rows[0])
}

func TestParseCSV_Errors(t *testing.T) {
	fires, _ := lookupDataset("fires")
	obs, _ := lookupDataset("observations")

	tests := []struct {
		name    string
		ds      dataset
		input   string
		wantErr string
	}{
		{"empty file", fires, "", "failed to read header"},
		{"short row", fires, "h\n2023-01-05,-32.5\n", "line 2: invalid record length"},
		{"bad date", fires, "h\n05/01/2023,-32.5,137.7\n", "line 2: invalid date"},
		{"latitude out of range", fires, "h\n2023-01-05,-95,137.7\n", "invalid latitude"},
		{"bad longitude", obs, "h\nTGW-1,-32.5,east,2023-01-05\n", "invalid longitude"},
		{"empty id", obs, "h\n ,-32.5,137.7,2023-01-05\n", "empty wren_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCSV(strings.NewReader(tt.input), tt.ds)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLookupDataset_Unknown(t *testing.T) {
	_, err := lookupDataset("locations")
	assert.ErrorContains(t, err, "unknown table")
}

func TestDatasets_DDL(t *testing.T) {
	fires, _ := lookupDataset("fires")
	obs, _ := lookupDataset("observations")

	assert.Contains(t, fires.ddl, "USING GIST (geom)")
	// Nearby search filters sightings in memory, so no spatial index is built.
	assert.NotContains(t, obs.ddl, "CREATE INDEX")
	assert.NotContains(t, obs.ddl, "postgis")
}

func TestDatasets_RowsMatchCopyColumns(t *testing.T) {
	samples := map[string]string{
		"fires":        "h\n2023-01-05,-32.5,137.77\n",
		"observations": "h\nTGW-001,-32.5,137.77,2023-09-01\n",
	}

	for name, input := range samples {
		t.Run(name, func(t *testing.T) {
			ds, err := lookupDataset(name)
			require.NoError(t, err)

			rows, err := parseCSV(strings.NewReader(input), ds)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Len(t, rows[0], len(ds.columns))
		})
	}
}
