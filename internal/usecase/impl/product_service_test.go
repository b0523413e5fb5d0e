package impl

import (
	"context"
	"log/slog"
	"testing"

	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/domain/repository"
	"ecoscan/internal/domain/service"
	mockRepo "ecoscan/internal/mocks/repository"
	mockSvc "ecoscan/internal/mocks/service"
	"ecoscan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductServiceForTest(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository, *mockSvc.MockProductCatalog) {
	t.Helper()

	productRepo := new(mockRepo.MockProductRepository)
	catalog := new(mockSvc.MockProductCatalog)

	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Catalog:     catalog,
		Logger:      slog.New(slog.DiscardHandler),
	})

	return svc, productRepo, catalog
}

func TestProductService_Search_LocalHit(t *testing.T) {
	svc, productRepo, catalog := newProductServiceForTest(t)
	ctx := context.Background()

	product := existingProduct(1, "8412345678905")
	productRepo.On("FindByBarcode", ctx, "8412345678905").Return(product, nil)

	output, err := svc.Search(ctx, "8412345678905")
	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, product, output.Product)
	catalog.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestProductService_Search_RemoteFetchAndCache(t *testing.T) {
	svc, productRepo, catalog := newProductServiceForTest(t)
	ctx := context.Background()

	productRepo.On("FindByBarcode", ctx, "8412345678905").Return(nil, repository.ErrProductNotFound)
	catalog.On("Fetch", ctx, "8412345678905").Return(&service.CatalogProduct{
		Barcode:    "8412345678905",
		Name:       "Pan Integral",
		Nutriscore: "a",
		Ecoscore:   "b",
		Category:   "Breads",
	}, nil)
	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = 42
		}).
		Return(nil)

	output, err := svc.Search(ctx, "8412345678905")
	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, int64(42), output.Product.ID)
	assert.Equal(t, "Pan Integral", output.Product.Name)
	productRepo.AssertExpectations(t)
}

func TestProductService_Search_EmptyBarcode(t *testing.T) {
	svc, productRepo, _ := newProductServiceForTest(t)

	for _, barcode := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), barcode)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
	productRepo.AssertNotCalled(t, "FindByBarcode", mock.Anything, mock.Anything)
}

func TestProductService_Search_UnknownEverywhere(t *testing.T) {
	svc, productRepo, catalog := newProductServiceForTest(t)
	ctx := context.Background()

	productRepo.On("FindByBarcode", ctx, "0000000000000").Return(nil, repository.ErrProductNotFound)
	catalog.On("Fetch", ctx, "0000000000000").Return(nil, nil)

	_, err := svc.Search(ctx, "0000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Two requests race on the same uncached barcode: the loser's insert hits the
// unique index and the loser serves the winner's row instead of failing.
func TestProductService_Search_LostInsertRace(t *testing.T) {
	svc, productRepo, catalog := newProductServiceForTest(t)
	ctx := context.Background()

	winner := existingProduct(9, "8412345678905")
	productRepo.On("FindByBarcode", ctx, "8412345678905").Return(nil, repository.ErrProductNotFound).Once()
	catalog.On("Fetch", ctx, "8412345678905").Return(&service.CatalogProduct{
		Barcode: "8412345678905",
		Name:    "Pan Integral",
	}, nil)
	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(repository.ErrDuplicateBarcode)
	productRepo.On("FindByBarcode", ctx, "8412345678905").Return(winner, nil).Once()

	output, err := svc.Search(ctx, "8412345678905")
	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, winner, output.Product)
}

func TestProductService_Search_PersistFailure(t *testing.T) {
	svc, productRepo, catalog := newProductServiceForTest(t)
	ctx := context.Background()

	productRepo.On("FindByBarcode", ctx, "8412345678905").Return(nil, repository.ErrProductNotFound)
	catalog.On("Fetch", ctx, "8412345678905").Return(&service.CatalogProduct{Barcode: "8412345678905", Name: "Pan"}, nil)
	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create product"))

	_, err := svc.Search(ctx, "8412345678905")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}
