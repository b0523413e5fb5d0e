package repository

import (
	"context"
	"errors"

	"ecoscan/internal/domain/entity"
)

// ErrFavoriteNotFound is returned when no association row links the user and product.
var ErrFavoriteNotFound = errors.New("favorite not found")

// ErrDuplicateFavorite is returned when the (user, product) association already exists.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// FavoriteRepository manages the user-product association rows explicitly,
// rather than through an in-memory collection flushed later.
type FavoriteRepository interface {
	// Exists reports whether the (user, product) association is present.
	Exists(ctx context.Context, userID, productID int64) (bool, error)

	// Create inserts the (user, product) association.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the (user, product) association.
	// Returns ErrFavoriteNotFound when no row was linked.
	Delete(ctx context.Context, userID, productID int64) error

	// ListProductsByUser returns the user's favorited products in association
	// insertion order. The result may be empty.
	ListProductsByUser(ctx context.Context, userID int64) ([]*entity.Product, error)
}
