package repository

import (
	"context"
	"errors"

	"ecoscan/internal/domain/entity"
)

// ErrEmissionNotFound is returned when no fact matches the (region, year) pair.
var ErrEmissionNotFound = errors.New("emission not found")

// EmissionRepository defines the operations for regional CO2 emission facts.
type EmissionRepository interface {
	// FindByRegionAndYear retrieves the fact for an exact (region, year) match.
	FindByRegionAndYear(ctx context.Context, region string, year int) (*entity.RegionalCO2Emission, error)

	// DeleteByRegion removes every fact for the region. Used by the bulk load
	// so that reloading a region replaces its rows instead of duplicating them.
	DeleteByRegion(ctx context.Context, region string) error

	// CreateBatch inserts a set of facts.
	CreateBatch(ctx context.Context, emissions []*entity.RegionalCO2Emission) error
}
