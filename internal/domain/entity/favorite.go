package entity

import "time"

// Favorite links a user to a product they marked as favorite.
// A given (user, product) pair exists at most once; adding it again is an
// idempotent no-op from the caller's perspective.
type Favorite struct {
	UserID    int64     // References the owning user.
	ProductID int64     // References the favorited product.
	CreatedAt time.Time // Insertion time; favorite listings follow this order.
}
