package entity

import "time"

// Product is a consumer product cached from the external catalog.
// The barcode is the canonical identity key: every lookup from outside the
// persistence layer addresses products by barcode, never by the numeric ID.
// A product row is immutable once created; there is no update path.
type Product struct {
	ID         int64     // Auto-assigned numeric identifier.
	Barcode    string    // EAN-style code, unique, at most 13 characters.
	Name       string    // Display name, required.
	Nutriscore string    // A..E, or "n/a" when the catalog has no grade.
	Ecoscore   string    // A+..E, or "n/a" when the catalog has no grade.
	Category   string    // First comma segment of the catalog category string, trimmed.
	CreatedAt  time.Time // Timestamp of when this product was cached locally.
}
