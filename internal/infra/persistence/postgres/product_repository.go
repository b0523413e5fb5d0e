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

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByBarcode retrieves a single product by its barcode.
func (repo *productRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "barcode = ?", barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by barcode")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product entity.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Another request cached the same barcode first. The caller
			// re-fetches the winning row instead of failing.
			return repository.ErrDuplicateBarcode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductPersistFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:         data.ID,
		Barcode:    data.Barcode,
		Name:       data.Name,
		Nutriscore: data.Nutriscore,
		Ecoscore:   data.Ecoscore,
		Category:   data.Category,
		CreatedAt:  data.CreatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:         data.ID,
		Barcode:    data.Barcode,
		Name:       data.Name,
		Nutriscore: data.Nutriscore,
		Ecoscore:   data.Ecoscore,
		Category:   data.Category,
	}
}
