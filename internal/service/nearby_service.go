package service

import (
	"context"
	"fmt"

	"grasswren-api/internal/geo"
	"grasswren-api/internal/models"
)

// ObservationRepository lists grasswren sightings.
type ObservationRepository interface {
	ListObservations(ctx context.Context) ([]models.Observation, error)
}

// NearbyService finds sightings close to a postcode
type NearbyService struct {
	geocoder     LocationResolver
	observations ObservationRepository
	radiusKm     float64
}

// NewNearbyService creates a new nearby service searching within radiusKm
func NewNearbyService(geocoder LocationResolver, observations ObservationRepository, radiusKm float64) *NearbyService {
	return &NearbyService{geocoder: geocoder, observations: observations, radiusKm: radiusKm}
}

// Nearby returns the sightings within the configured radius of the postcode
func (s *NearbyService) Nearby(ctx context.Context, postcode string) (*geo.NearbyResult, error) {
	if postcode == "" {
		return nil, fmt.Errorf("service: %w: postcode cannot be empty", ErrValidation)
	}

	loc := s.geocoder.Resolve(ctx, postcode)
	if loc == nil {
		return nil, fmt.Errorf("service: postcode %q: %w", postcode, ErrLocationNotFound)
	}

	observations, err := s.observations.ListObservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: %w: %w", ErrUpstream, err)
	}

	result := geo.Nearby(*loc, observations, s.radiusKm)
	return &result, nil
}
