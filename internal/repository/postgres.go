package repository

import (
	"context"
	"fmt"

	"grasswren-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FireSearchRadiusMeters bounds the historical fire search around a point.
// An older note beside this value said 100 km; the 200 km figure is the one
// the estimates have always been computed with.
const FireSearchRadiusMeters = 200000

// MaxFireBuckets caps the number of (year, month) buckets returned.
const MaxFireBuckets = 200

// Repository implements read access to the fire and observation tables in
// PostgreSQL/PostGIS. Each query acquires its own pooled connection.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FireIncidentsNear counts fires within FireSearchRadiusMeters of the point,
// grouped by year and month, newest bucket first.
func (r *Repository) FireIncidentsNear(ctx context.Context, lon, lat float64) ([]models.FireIncidentAggregate, error) {
	sql := `
		SELECT
			COUNT(*) AS count,
			date_trunc('month', fire_date)::date AS fire_date,
			EXTRACT(MONTH FROM date_trunc('month', fire_date))::int AS month,
			MIN(ST_Distance(geom::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)) / 1000 AS distance_km
		FROM fires
		WHERE ST_DWithin(geom::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		GROUP BY date_trunc('month', fire_date)
		ORDER BY fire_date DESC
		LIMIT $4
	`

	rows, err := r.db.Query(ctx, sql, lon, lat, FireSearchRadiusMeters, MaxFireBuckets)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute fire query: %w", err)
	}
	defer rows.Close()

	aggregates := make([]models.FireIncidentAggregate, 0)
	for rows.Next() {
		var agg models.FireIncidentAggregate
		if err := rows.Scan(&agg.Count, &agg.FireDate, &agg.Month, &agg.DistanceKm); err != nil {
			return nil, fmt.Errorf("repository: failed to scan fire aggregate: %w", err)
		}
		aggregates = append(aggregates, agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating fire rows: %w", err)
	}

	return aggregates, nil
}

// ListObservations returns every recorded grasswren sighting.
func (r *Repository) ListObservations(ctx context.Context) ([]models.Observation, error) {
	sql := `
		SELECT id, wren_id, latitude, longitude, observed_on
		FROM observations
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute observation query: %w", err)
	}
	defer rows.Close()

	var observations []models.Observation
	for rows.Next() {
		var obs models.Observation
		err := rows.Scan(
			&obs.ID,
			&obs.WrenID,
			&obs.Latitude,
			&obs.Longitude,
			&obs.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan observation: %w", err)
		}
		observations = append(observations, obs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating observation rows: %w", err)
	}

	return observations, nil
}
