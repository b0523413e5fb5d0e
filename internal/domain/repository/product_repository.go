package repository

import (
	"context"
	"errors"

	"ecoscan/internal/domain/entity"
)

// ErrProductNotFound is returned when no product row matches the barcode.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateBarcode is returned when an insert loses the race on the barcode
// unique constraint. Callers treat it as "someone else already created the row"
// and re-fetch instead of failing the request.
var ErrDuplicateBarcode = errors.New("barcode already exists")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByBarcode retrieves a single product by its barcode.
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)

	// Create persists a new product entity and fills in the generated ID.
	Create(ctx context.Context, product *entity.Product) error
}
