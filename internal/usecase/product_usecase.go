package usecase

import (
	"context"

	"ecoscan/internal/domain/entity"
)

// SearchProductOutput returns the resolved product. Created reports whether
// the product was fetched from the external catalog and cached during this
// call, as opposed to served from the local store.
type SearchProductOutput struct {
	Product *entity.Product
	Created bool
}

// ProductUsecase defines the interface for product resolution.
type ProductUsecase interface {
	// Search resolves a barcode to a product: local store first, external
	// catalog as fallback, with the fetched product cached for later calls.
	Search(ctx context.Context, barcode string) (*SearchProductOutput, error)
}
