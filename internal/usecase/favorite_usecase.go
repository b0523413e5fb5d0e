package usecase

import (
	"context"

	"ecoscan/internal/domain/entity"
)

// AddFavoriteInput identifies the user and the product to link.
type AddFavoriteInput struct {
	UserID  int64
	Barcode string
}

// AddFavoriteOutput returns the linked product. AlreadyFavorite reports that
// the pair existed before this call; adding twice is not an error.
type AddFavoriteOutput struct {
	Product         *entity.Product
	AlreadyFavorite bool
}

// RemoveFavoriteInput identifies the user and the product to unlink.
type RemoveFavoriteInput struct {
	UserID  int64
	Barcode string
}

// ListFavoritesOutput returns the user's favorited products in the order the
// favorites were added. Products may be empty.
type ListFavoritesOutput struct {
	Products []*entity.Product
}

// FavoriteUsecase defines the interface for managing a user's favorites.
type FavoriteUsecase interface {
	Add(ctx context.Context, input AddFavoriteInput) (*AddFavoriteOutput, error)
	Remove(ctx context.Context, input RemoveFavoriteInput) error
	List(ctx context.Context, userID int64) (*ListFavoritesOutput, error)
}
