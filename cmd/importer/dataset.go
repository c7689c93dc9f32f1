package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// dataset describes one seedable table: its DDL, the COPY columns and how a
// CSV row maps onto them.
type dataset struct {
	table   string
	ddl     string
	columns []string
	minCols int
	row     func(record []string) ([]interface{}, error)
}

var datasets = map[string]dataset{
	"fires": {
		table: "fires",
		ddl: `
		CREATE EXTENSION IF NOT EXISTS postgis;
		CREATE TABLE IF NOT EXISTS fires (
			id BIGSERIAL PRIMARY KEY,
			fire_date DATE NOT NULL,
			geom GEOMETRY(POINT, 4326) NOT NULL
		);
		CREATE INDEX IF NOT EXISTS fires_geom_idx ON fires USING GIST (geom);
		CREATE INDEX IF NOT EXISTS fires_fire_date_idx ON fires (fire_date);
		`,
		columns: []string{"fire_date", "geom"},
		minCols: 3,
		row:     fireRow,
	},
	"observations": {
		table: "observations",
		ddl: `
		CREATE TABLE IF NOT EXISTS observations (
			id BIGSERIAL PRIMARY KEY,
			wren_id VARCHAR(64) NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			observed_on DATE NOT NULL
		);
		`,
		columns: []string{"wren_id", "latitude", "longitude", "observed_on"},
		minCols: 4,
		row:     observationRow,
	},
}

func lookupDataset(name string) (dataset, error) {
	ds, ok := datasets[name]
	if !ok {
		return dataset{}, fmt.Errorf("unknown table %q, expected fires or observations", name)
	}
	return ds, nil
}

// fires CSV: fire_date,latitude,longitude
func fireRow(record []string) ([]interface{}, error) {
	date, err := parseDay(record[0])
	if err != nil {
		return nil, err
	}
	lat, lon, err := parseCoords(record[1], record[2])
	if err != nil {
		return nil, err
	}
	// EWKT is lon lat
	geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", lon, lat)
	return []interface{}{date, geom}, nil
}

// observations CSV: wren_id,latitude,longitude,observed_on
func observationRow(record []string) ([]interface{}, error) {
	id := strings.TrimSpace(record[0])
	if id == "" {
		return nil, errors.New("empty wren_id")
	}
	lat, lon, err := parseCoords(record[1], record[2])
	if err != nil {
		return nil, err
	}
	date, err := parseDay(record[3])
	if err != nil {
		return nil, err
	}
	return []interface{}{id, lat, lon, date}, nil
}

func parseDay(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s", s)
	}
	return d, nil
}

func parseCoords(latStr, lonStr string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("invalid latitude: %s", latStr)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("invalid longitude: %s", lonStr)
	}
	return lat, lon, nil
}

// parseCSV reads a headed CSV and converts every row with ds.row.
func parseCSV(r io.Reader, ds dataset) ([][]interface{}, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]interface{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) < ds.minCols {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least %d columns", line, len(record), ds.minCols)
		}
		row, err := ds.row(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
