package usecase

import (
	"context"

	"ecoscan/internal/domain/entity"
)

// LookupEmissionInput identifies one (region, year) fact.
type LookupEmissionInput struct {
	Region string
	Year   int
}

// LookupEmissionOutput returns the matched fact.
type LookupEmissionOutput struct {
	Emission *entity.RegionalCO2Emission
}

// LoadRegionOutput reports how many facts were stored for the region.
type LoadRegionOutput struct {
	Inserted int
}

// EmissionUsecase defines the interface for regional CO2 emission operations.
type EmissionUsecase interface {
	// Lookup returns the fact for an exact (region, year) match.
	Lookup(ctx context.Context, input LookupEmissionInput) (*LookupEmissionOutput, error)

	// LoadRegion replaces every stored fact for the facts' region in a single
	// transaction. All facts must belong to the given region.
	LoadRegion(ctx context.Context, region string, facts []*entity.RegionalCO2Emission) (*LoadRegionOutput, error)
}
