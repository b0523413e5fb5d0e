package postgres

import (
	"context"

	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/domain/repository"
	"ecoscan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Exists reports whether the (user, product) association is present.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, productID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite existence")
	}

	return count > 0, nil
}

// Create inserts the (user, product) association.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		UserID:    favorite.UserID,
		ProductID: favorite.ProductID,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFavoriteUpdateFailed.WrapMessage("user or product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the (user, product) association.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, productID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// ListProductsByUser returns the user's favorited products in the order the
// favorites were added.
func (repo *favoriteRepository) ListProductsByUser(ctx context.Context, userID int64) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Joins("JOIN user_favorites ON user_favorites.product_id = products.id").
		Where("user_favorites.user_id = ?", userID).
		Order("user_favorites.created_at").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}
