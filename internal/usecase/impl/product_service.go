package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecoscan/internal/delivery/context"
	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/domain/repository"
	"ecoscan/internal/domain/service"
	"ecoscan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	catalog     service.ProductCatalog
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Catalog     service.ProductCatalog
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		catalog:     params.Catalog,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search resolves a barcode to a product. The local store is consulted first;
// a miss falls through to the external catalog, and the fetched product is
// cached so the next lookup stays local.
func (srv *productService) Search(ctx context.Context, barcode string) (*usecase.SearchProductOutput, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("barcode must not be empty")
	}

	product, err := srv.productRepo.FindByBarcode(ctx, barcode)
	if err == nil {
		return &usecase.SearchProductOutput{Product: product}, nil
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrap(err, "failed to look up product")
	}

	fetched, err := srv.catalog.Fetch(ctx, barcode)
	if err != nil {
		srv.log(ctx).Error("Catalog fetch failed", slog.String("barcode", barcode), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query product catalog")
	}
	if fetched == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	newProduct := &entity.Product{
		Barcode:    fetched.Barcode,
		Name:       fetched.Name,
		Nutriscore: fetched.Nutriscore,
		Ecoscore:   fetched.Ecoscore,
		Category:   fetched.Category,
	}

	if err := srv.productRepo.Create(ctx, newProduct); err != nil {
		if errors.Is(err, repository.ErrDuplicateBarcode) {
			// A concurrent request cached the same barcode between our miss
			// and our insert. Serve the winner's row.
			winner, refetchErr := srv.productRepo.FindByBarcode(ctx, barcode)
			if refetchErr != nil {
				return nil, errors.Wrap(refetchErr, "failed to re-fetch product after insert race")
			}

			return &usecase.SearchProductOutput{Product: winner}, nil
		}

		srv.log(ctx).Error("Failed to cache product", slog.String("barcode", barcode), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Cached product from catalog", slog.String("barcode", barcode), slog.Int64("productID", newProduct.ID))

	return &usecase.SearchProductOutput{Product: newProduct, Created: true}, nil
}
