package service

import "context"

// CatalogProduct is the flat shape the external catalog is mapped into.
// Missing provider fields arrive pre-filled with the documented defaults.
type CatalogProduct struct {
	Barcode    string
	Name       string
	Nutriscore string
	Ecoscore   string
	Category   string
}

// ProductCatalog is the port to the external product database.
// Fetch performs a single bounded-timeout lookup by barcode.
// An unknown item, a connectivity failure, or an unparseable response all
// collapse to (nil, nil) with a logged diagnostic, so callers handle exactly
// one "absent" case. A non-nil error is reserved for programming mistakes
// such as an empty barcode.
type ProductCatalog interface {
	Fetch(ctx context.Context, barcode string) (*CatalogProduct, error)
}
